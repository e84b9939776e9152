package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	documentservice "festboard/contexts/festival/document-service"
	leaderboardservice "festboard/contexts/festival/leaderboard-service"
	moderationservice "festboard/contexts/festival/moderation-service"
	posterservice "festboard/contexts/festival/poster-service"
)

func newTestServer(t *testing.T, adminToken string) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	document := documentservice.NewInMemoryModule(documentservice.Dependencies{
		StorageKey: "artsFestData",
		Logger:     logger,
	})
	moderation := moderationservice.NewModule(moderationservice.Dependencies{
		Docs:   document.Service,
		Logger: logger,
	})
	leaderboard := leaderboardservice.NewModule(leaderboardservice.Dependencies{
		Docs:   document.Service,
		Logger: logger,
	})
	poster := posterservice.NewModule(posterservice.Dependencies{
		Docs:   document.Service,
		Logger: logger,
	})

	return New(document, moderation, leaderboard, poster, adminToken, logger, ":0")
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	server := newTestServer(t, "secret-token")

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/admin/document"},
		{http.MethodPut, "/v1/admin/document"},
		{http.MethodPost, "/v1/admin/categories"},
		{http.MethodDelete, "/v1/admin/categories/c1"},
		{http.MethodPost, "/v1/admin/teams"},
		{http.MethodPost, "/v1/admin/competitions"},
		{http.MethodPost, "/v1/admin/competitions/k1/publish-toggle"},
		{http.MethodPut, "/v1/admin/competitions/k1/results"},
	}
	for _, req := range requests {
		r := httptest.NewRequest(req.method, req.path, strings.NewReader("{}"))
		w := httptest.NewRecorder()
		server.mux.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", req.method, req.path, w.Code)
		}
	}
}

func TestAdminRoutesRejectWrongToken(t *testing.T) {
	server := newTestServer(t, "secret-token")

	r := httptest.NewRequest(http.MethodPost, "/v1/admin/categories", strings.NewReader(`{"name":"Arts"}`))
	r.Header.Set("X-Admin-Token", "wrong")
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", w.Code)
	}
}

func TestAdminRoutesLockedWhenTokenUnset(t *testing.T) {
	server := newTestServer(t, "")

	r := httptest.NewRequest(http.MethodPost, "/v1/admin/categories", strings.NewReader(`{"name":"Arts"}`))
	r.Header.Set("X-Admin-Token", "")
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unset token, got %d", w.Code)
	}
}

func TestAdminRouteAcceptsValidToken(t *testing.T) {
	server := newTestServer(t, "secret-token")

	r := httptest.NewRequest(http.MethodPost, "/v1/admin/categories", strings.NewReader(`{"name":"Arts"}`))
	r.Header.Set("X-Admin-Token", "secret-token")
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 with valid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPublicRoutesRequireNoToken(t *testing.T) {
	server := newTestServer(t, "secret-token")

	for _, path := range []string{
		"/v1/festival/categories",
		"/v1/festival/leaderboards",
	} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		server.mux.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d: %s", path, w.Code, w.Body.String())
		}
	}
}
