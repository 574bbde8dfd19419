package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/donation-service/internal/platform/config"
)

func newCORSHandler(origins ...string) http.Handler {
	return middleware.CORS(config.CORSConfig{AllowedOrigins: origins, MaxAge: 300})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	handler := newCORSHandler("https://app.example.org")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/donations", http.NoBody)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "https://app.example.org")
	}
}

func TestCORS_ExposesRequestID(t *testing.T) {
	t.Parallel()

	handler := newCORSHandler("*")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations", http.NoBody)
	req.Header.Set("Origin", "https://anywhere.example")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
	if got := rec.Header().Get("Access-Control-Expose-Headers"); got == "" {
		t.Error("Access-Control-Expose-Headers is empty, want request id headers")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	handler := newCORSHandler("https://app.example.org")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations", http.NoBody)
	req.Header.Set("Origin", "https://evil.example")
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}
