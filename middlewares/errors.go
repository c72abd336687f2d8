package middlewares

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"posts-api/models"
)

var (
	// ErrInvalidBody marks a request body that could not be decoded or validated.
	ErrInvalidBody = errors.New("invalid body")
	// ErrInvalidQuery marks unusable query parameters.
	ErrInvalidQuery = errors.New("invalid query")
)

const (
	msgNotFound         = "Route does not exist on server"
	msgInvalidBody      = "Invalid Body"
	msgInvalidQuery     = "Invalid query parameters"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "Internal Server error"
)

// StatusFor maps err to the HTTP status and client message it is reported with.
func StatusFor(err error) (int, string) {
	var e *models.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case models.KindDuplicateKey:
			return http.StatusConflict, "Duplicate key error"
		case models.KindQuery:
			return http.StatusInternalServerError, "Error during mongodb query"
		case models.KindSerialization:
			return http.StatusInternalServerError, "Error serializing BSON"
		case models.KindDataAccess:
			return http.StatusBadRequest, "validation error"
		case models.KindInvalidID:
			return http.StatusBadRequest, e.Message
		default:
			return http.StatusInternalServerError, "mongodb error"
		}
	}

	switch {
	case errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, msgInvalidBody
	case errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest, msgInvalidQuery
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// HandleError logs err and writes its error envelope. Every failed request
// funnels through here.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := StatusFor(err)

	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	RespondError(w, r, message, status)
}

func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, msgNotFound, http.StatusNotFound)
	})
}

func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, msgMethodNotAllowed, http.StatusMethodNotAllowed)
	})
}
