package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/donation-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/donation-service/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
	if resp.Checks != nil {
		t.Errorf("checks = %v, want none for liveness", resp.Checks)
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"donation-webhook": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["donation-webhook"] != "ok" {
		t.Errorf("donation-webhook check = %v, want %q", checks["donation-webhook"], "ok")
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"donation-webhook": errors.New("connection refused"),
		"catalog":          nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["donation-webhook"] != "connection refused" {
		t.Errorf("donation-webhook check = %v, want %q", checks["donation-webhook"], "connection refused")
	}
	if checks["catalog"] != "ok" {
		t.Errorf("catalog check = %v, want %q", checks["catalog"], "ok")
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestReadiness_OpenBreakerNotReady(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"donation-webhook": errors.New("donation-webhook: circuit breaker open"),
		"catalog":          nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != "not_ready" {
		t.Errorf("status = %q, want %q", resp.Status, "not_ready")
	}
	if resp.Checks["catalog"] != "ok" {
		t.Errorf("catalog check = %q, want %q", resp.Checks["catalog"], "ok")
	}
}
