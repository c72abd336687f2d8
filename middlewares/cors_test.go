package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestLoadCorsConfig(t *testing.T) {
	t.Setenv("CORS_ORIGIN", "")
	assert.Equal(t, []string{"http://localhost:3000"}, LoadCorsConfig().AllowedOrigins)

	t.Setenv("CORS_ORIGIN", "https://blog.example.com")
	cfg := LoadCorsConfig()
	assert.Equal(t, []string{"https://blog.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, cfg.AllowedMethods)
	assert.True(t, cfg.AllowCredentials)
}

func TestCorsAllowedOrigin(t *testing.T) {
	t.Setenv("CORS_ORIGIN", "")
	h := CorsMiddleware(LoadCorsConfig())(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestCorsForeignOrigin(t *testing.T) {
	t.Setenv("CORS_ORIGIN", "")
	h := CorsMiddleware(LoadCorsConfig())(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsPreflight(t *testing.T) {
	t.Setenv("CORS_ORIGIN", "")
	h := CorsMiddleware(LoadCorsConfig())(okHandler)

	r := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "content-type", w.Header().Get("Access-Control-Allow-Headers"))

	r = httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	r.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
