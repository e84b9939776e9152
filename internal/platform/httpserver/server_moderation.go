package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	moderationerrors "festboard/contexts/festival/moderation-service/domain/errors"
	moderationhttp "festboard/contexts/festival/moderation-service/transport/http"
)

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req moderationhttp.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.CreateCategoryHandler(r.Context(), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.moderation.Handler.DeleteCategoryHandler(r.Context(), r.PathValue("category_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req moderationhttp.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.CreateTeamHandler(r.Context(), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRenameTeam(w http.ResponseWriter, r *http.Request) {
	var req moderationhttp.RenameTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.RenameTeamHandler(r.Context(), r.PathValue("team_id"), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	resp, err := s.moderation.Handler.DeleteTeamHandler(r.Context(), r.PathValue("team_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCompetition(w http.ResponseWriter, r *http.Request) {
	var req moderationhttp.CreateCompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.CreateCompetitionHandler(r.Context(), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRenameCompetition(w http.ResponseWriter, r *http.Request) {
	var req moderationhttp.RenameCompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.RenameCompetitionHandler(r.Context(), r.PathValue("competition_id"), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCompetition(w http.ResponseWriter, r *http.Request) {
	resp, err := s.moderation.Handler.DeleteCompetitionHandler(r.Context(), r.PathValue("competition_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTogglePublish(w http.ResponseWriter, r *http.Request) {
	resp, err := s.moderation.Handler.TogglePublishHandler(r.Context(), r.PathValue("competition_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSaveResults(w http.ResponseWriter, r *http.Request) {
	var req moderationhttp.SaveResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeModerationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.SaveResultsHandler(r.Context(), r.PathValue("competition_id"), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeModerationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, moderationerrors.ErrInvalidRequest),
		errors.Is(err, moderationerrors.ErrInvalidPlace):
		writeModerationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, moderationerrors.ErrDuplicatePlace):
		writeModerationError(w, http.StatusConflict, "duplicate_place", err.Error())
	case errors.Is(err, moderationerrors.ErrCategoryNotFound),
		errors.Is(err, moderationerrors.ErrTeamNotFound),
		errors.Is(err, moderationerrors.ErrCompetitionNotFound):
		writeModerationError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeModerationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeModerationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, moderationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
