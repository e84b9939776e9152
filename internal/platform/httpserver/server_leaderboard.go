package httpserver

import (
	"errors"
	"net/http"

	leaderboarderrors "festboard/contexts/festival/leaderboard-service/domain/errors"
	leaderboardhttp "festboard/contexts/festival/leaderboard-service/transport/http"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.ListCategoriesHandler(r.Context())
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCompetitions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.ListCompetitionsHandler(r.Context(), r.PathValue("category_id"))
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompetitionResults(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.CompetitionResultsHandler(r.Context(), r.PathValue("competition_id"))
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLeaderboards(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.LeaderboardsHandler(r.Context())
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeLeaderboardDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, leaderboarderrors.ErrCategoryNotFound),
		errors.Is(err, leaderboarderrors.ErrCompetitionNotFound):
		writeLeaderboardError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, leaderboarderrors.ErrCompetitionNotPublic):
		writeLeaderboardError(w, http.StatusForbidden, "not_published", err.Error())
	default:
		writeLeaderboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLeaderboardError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, leaderboardhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
