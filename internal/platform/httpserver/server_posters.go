package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"festboard/contexts/festival/poster-service/application"
	postererrors "festboard/contexts/festival/poster-service/domain/errors"
	posterhttp "festboard/contexts/festival/poster-service/transport/http"
)

// Uploaded portraits come from phone cameras; 10 MiB covers them with
// room to spare.
const maxPortraitBytes = 10 << 20

func (s *Server) handleWinnerPoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPortraitBytes); err != nil {
		writePosterError(w, http.StatusBadRequest, "invalid_multipart", "request body must be a multipart form")
		return
	}

	req := posterhttp.WinnerPosterRequest{
		Name:        r.FormValue("name"),
		Place:       r.FormValue("place"),
		Team:        r.FormValue("team"),
		Competition: r.FormValue("competition_name"),
	}

	var portrait []byte
	if file, _, err := r.FormFile("portrait"); err == nil {
		defer file.Close()
		portrait, err = io.ReadAll(io.LimitReader(file, maxPortraitBytes))
		if err != nil {
			writePosterError(w, http.StatusBadRequest, "portrait_unreadable", "portrait upload could not be read")
			return
		}
	}

	poster, err := s.poster.Handler.WinnerPosterHandler(r.Context(), req, portrait)
	if err != nil {
		writePosterDomainError(w, err)
		return
	}
	writePoster(w, poster)
}

func (s *Server) handleCompetitionPoster(w http.ResponseWriter, r *http.Request) {
	seed := int64(-1)
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			writePosterError(w, http.StatusBadRequest, "invalid_seed", "seed must be a non-negative integer")
			return
		}
		seed = parsed
	}

	poster, err := s.poster.Handler.CompetitionPosterHandler(r.Context(), r.PathValue("competition_id"), seed)
	if err != nil {
		writePosterDomainError(w, err)
		return
	}
	writePoster(w, poster)
}

func writePoster(w http.ResponseWriter, poster application.Poster) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", poster.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(poster.PNG)
}

func writePosterDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postererrors.ErrInvalidRequest):
		writePosterError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, postererrors.ErrPortraitUndecodable):
		writePosterError(w, http.StatusUnprocessableEntity, "portrait_undecodable", err.Error())
	case errors.Is(err, postererrors.ErrCompetitionNotFound):
		writePosterError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, postererrors.ErrRenderFailed):
		writePosterError(w, http.StatusInternalServerError, "render_failed", err.Error())
	default:
		writePosterError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePosterError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, posterhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
