package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts-api/models"
)

func TestStatusFor(t *testing.T) {
	cause := errors.New("driver failure")

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"database", models.DatabaseError(cause, "connect"), http.StatusInternalServerError, "mongodb error"},
		{"duplicate", models.DuplicateKeyError(cause), http.StatusConflict, "Duplicate key error"},
		{"query", models.QueryError(cause, "find"), http.StatusInternalServerError, "Error during mongodb query"},
		{"serialization", models.SerializationError(cause), http.StatusInternalServerError, "Error serializing BSON"},
		{"data access", models.DataAccessError(cause), http.StatusBadRequest, "validation error"},
		{"invalid id", models.InvalidIDError("12ab"), http.StatusBadRequest, "Invalid ID: 12ab"},
		{"wrapped kind", errors.Wrap(models.DuplicateKeyError(cause), "create"), http.StatusConflict, "Duplicate key error"},
		{"invalid body", errors.Wrap(ErrInvalidBody, "unexpected EOF"), http.StatusBadRequest, "Invalid Body"},
		{"invalid query", errors.Wrap(ErrInvalidQuery, "page"), http.StatusBadRequest, "Invalid query parameters"},
		{"other", cause, http.StatusInternalServerError, "Internal Server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestHandleError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/posts", nil)

	HandleError(w, r, models.DuplicateKeyError(errors.New("E11000")))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body models.GenericResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, models.StatusError, body.Status)
	assert.Equal(t, "Duplicate key error", body.Message)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal Server error"}`, w.Body.String())
}
