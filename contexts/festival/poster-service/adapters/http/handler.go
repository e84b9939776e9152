package httpadapter

import (
	"context"
	"log/slog"

	"festboard/contexts/festival/poster-service/application"
	httptransport "festboard/contexts/festival/poster-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// WinnerPosterHandler renders a congratulations poster. portrait holds
// the raw uploaded image bytes, or nil when the caller wants the default
// silhouette.
func (h Handler) WinnerPosterHandler(
	ctx context.Context,
	req httptransport.WinnerPosterRequest,
	portrait []byte,
) (application.Poster, error) {
	return h.Service.WinnerPoster(ctx, application.WinnerPosterRequest{
		Name:        req.Name,
		Place:       req.Place,
		Team:        req.Team,
		Competition: req.Competition,
	}, portrait)
}

// CompetitionPosterHandler renders a winners poster for one competition.
// seed selects the theme; negative means "pick from the clock".
func (h Handler) CompetitionPosterHandler(ctx context.Context, competitionID string, seed int64) (application.Poster, error) {
	return h.Service.CompetitionPoster(ctx, competitionID, seed)
}
