package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tasklane/tasklane/internal/shared"
)

func probeHandler(t *testing.T, captured **shared.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = shared.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSessionValidToken(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	result, err := svc.Login(context.Background(), "good-assertion")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	var captured *shared.Identity
	mw := Middleware{Service: svc}
	handler := mw.RequireSession(probeHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	if captured == nil {
		t.Fatalf("expected identity in context")
	}
	if captured.ID != result.User.ID {
		t.Fatalf("expected identity %s, got %s", result.User.ID, captured.ID)
	}
}

func TestRequireSessionMissingHeader(t *testing.T) {
	mw := Middleware{Service: newTestService(newMockRepo())}
	var captured *shared.Identity
	handler := mw.RequireSession(probeHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
	if captured != nil {
		t.Fatalf("handler should not run without a session")
	}
}

func TestRequireSessionGarbageToken(t *testing.T) {
	mw := Middleware{Service: newTestService(newMockRepo())}
	var captured *shared.Identity
	handler := mw.RequireSession(probeHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}

func TestRequireSessionDeactivatedUser(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	result, err := svc.Login(context.Background(), "good-assertion")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	repo.byEmail["alice@example.com"].IsActive = false

	mw := Middleware{Service: svc}
	var captured *shared.Identity
	handler := mw.RequireSession(probeHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}
