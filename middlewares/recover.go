package middlewares

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Recoverer turns a panicking handler into a 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				zerolog.Ctx(r.Context()).Error().
					Err(errors.Errorf("panic: %v", v)).
					Str("path", r.URL.Path).
					Msg("recovered from panic")
				RespondError(w, r, msgInternal, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
