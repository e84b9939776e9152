package httpserver

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	documentservice "festboard/contexts/festival/document-service"
	documenterrors "festboard/contexts/festival/document-service/domain/errors"
	documenthttp "festboard/contexts/festival/document-service/transport/http"
	leaderboardservice "festboard/contexts/festival/leaderboard-service"
	moderationservice "festboard/contexts/festival/moderation-service"
	posterservice "festboard/contexts/festival/poster-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "festboard/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	adminToken  string
	document    documentservice.Module
	moderation  moderationservice.Module
	leaderboard leaderboardservice.Module
	poster      posterservice.Module
}

func New(
	document documentservice.Module,
	moderation moderationservice.Module,
	leaderboard leaderboardservice.Module,
	poster posterservice.Module,
	adminToken string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		adminToken:  adminToken,
		document:    document,
		moderation:  moderation,
		leaderboard: leaderboard,
		poster:      poster,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /v1/admin/document", s.requireAdmin(s.handleGetDocument))
	s.mux.HandleFunc("PUT /v1/admin/document", s.requireAdmin(s.handleReplaceDocument))
	s.mux.HandleFunc("GET /v1/festival/watch", s.handleWatchDocument)

	s.mux.HandleFunc("POST /v1/admin/categories", s.requireAdmin(s.handleCreateCategory))
	s.mux.HandleFunc("DELETE /v1/admin/categories/{category_id}", s.requireAdmin(s.handleDeleteCategory))
	s.mux.HandleFunc("POST /v1/admin/teams", s.requireAdmin(s.handleCreateTeam))
	s.mux.HandleFunc("PUT /v1/admin/teams/{team_id}", s.requireAdmin(s.handleRenameTeam))
	s.mux.HandleFunc("DELETE /v1/admin/teams/{team_id}", s.requireAdmin(s.handleDeleteTeam))
	s.mux.HandleFunc("POST /v1/admin/competitions", s.requireAdmin(s.handleCreateCompetition))
	s.mux.HandleFunc("PUT /v1/admin/competitions/{competition_id}", s.requireAdmin(s.handleRenameCompetition))
	s.mux.HandleFunc("DELETE /v1/admin/competitions/{competition_id}", s.requireAdmin(s.handleDeleteCompetition))
	s.mux.HandleFunc("POST /v1/admin/competitions/{competition_id}/publish-toggle", s.requireAdmin(s.handleTogglePublish))
	s.mux.HandleFunc("PUT /v1/admin/competitions/{competition_id}/results", s.requireAdmin(s.handleSaveResults))

	s.mux.HandleFunc("GET /v1/festival/categories", s.handleListCategories)
	s.mux.HandleFunc("GET /v1/festival/categories/{category_id}/competitions", s.handleListCompetitions)
	s.mux.HandleFunc("GET /v1/festival/competitions/{competition_id}/results", s.handleCompetitionResults)
	s.mux.HandleFunc("GET /v1/festival/leaderboards", s.handleLeaderboards)

	s.mux.HandleFunc("POST /v1/posters/winner", s.handleWinnerPoster)
	s.mux.HandleFunc("POST /v1/posters/competitions/{competition_id}", s.handleCompetitionPoster)
}

// requireAdmin gates mutating routes behind the shared admin token. The
// comparison is constant time; an unset token locks the routes entirely.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if s.adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			writeDocumentError(w, http.StatusUnauthorized, "unauthorized", "valid X-Admin-Token header is required")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	resp, err := s.document.Handler.GetDocumentHandler(r.Context())
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	var req documenthttp.ReplaceDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDocumentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.document.Handler.ReplaceDocumentHandler(r.Context(), req)
	if err != nil {
		writeDocumentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDocumentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, documenterrors.ErrInvalidRequest):
		writeDocumentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, documenterrors.ErrRevisionConflict):
		writeDocumentError(w, http.StatusConflict, "revision_conflict", err.Error())
	case errors.Is(err, documenterrors.ErrStorageUnavailable):
		writeDocumentError(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
	default:
		writeDocumentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDocumentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, documenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
