package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"posts-api/models"
)

func RespondJSON(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
		}
	}
}

// RespondError writes the generic {status, message} error envelope.
func RespondError(w http.ResponseWriter, r *http.Request, message string, status int) {
	RespondJSON(w, r, &models.GenericResponse{
		Status:  models.StatusError,
		Message: message,
	}, status)
}
