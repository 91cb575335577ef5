package auth

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, newTestService(repo))
	r := chi.NewRouter()
	r.Route("/auth", handler.MountRoutes)
	return r
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(newMockRepo())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"assertion":"good-assertion"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID          string `json:"id"`
			Email       string `json:"email"`
			DisplayName string `json:"displayName"`
		} `json:"user"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected token in response")
	}
	if body.User.Email != "alice@example.com" {
		t.Fatalf("expected user email, got %q", body.User.Email)
	}
	if body.User.DisplayName != "Alice" {
		t.Fatalf("expected display name, got %q", body.User.DisplayName)
	}
}

func TestLoginEndpointRejectedAssertion(t *testing.T) {
	router := newTestRouter(newMockRepo())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"assertion":"bad-assertion"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}

func TestLoginEndpointMissingAssertion(t *testing.T) {
	router := newTestRouter(newMockRepo())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.Code)
	}
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(newMockRepo())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.Code)
	}
}
