package httpadapter

import (
	"context"
	"log/slog"

	"festboard/contexts/festival/leaderboard-service/application"
	"festboard/contexts/festival/leaderboard-service/ports"
	httptransport "festboard/contexts/festival/leaderboard-service/transport/http"
)

type Handler struct {
	Service *application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCategoriesHandler(ctx context.Context) (httptransport.CategoriesResponse, error) {
	categories, err := h.Service.Categories(ctx)
	if err != nil {
		return httptransport.CategoriesResponse{}, err
	}

	resp := httptransport.CategoriesResponse{
		Status: "success",
		Data:   make([]httptransport.CategoryDTO, 0, len(categories)),
	}
	for _, category := range categories {
		resp.Data = append(resp.Data, httptransport.CategoryDTO{
			ID:   category.ID,
			Name: category.Name,
		})
	}
	return resp, nil
}

func (h Handler) ListCompetitionsHandler(ctx context.Context, categoryID string) (httptransport.CompetitionsResponse, error) {
	competitions, err := h.Service.Competitions(ctx, categoryID)
	if err != nil {
		return httptransport.CompetitionsResponse{}, err
	}

	resp := httptransport.CompetitionsResponse{
		Status: "success",
		Data:   make([]httptransport.CompetitionDTO, 0, len(competitions)),
	}
	for _, competition := range competitions {
		resp.Data = append(resp.Data, httptransport.CompetitionDTO{
			ID:         competition.ID,
			CategoryID: competition.CategoryID,
			Name:       competition.Name,
		})
	}
	return resp, nil
}

func (h Handler) CompetitionResultsHandler(ctx context.Context, competitionID string) (httptransport.CompetitionResultsResponse, error) {
	competition, results, err := h.Service.Results(ctx, competitionID)
	if err != nil {
		return httptransport.CompetitionResultsResponse{}, err
	}

	resp := httptransport.CompetitionResultsResponse{Status: "success"}
	resp.Data.CompetitionID = competition.ID
	resp.Data.CompetitionName = competition.Name
	resp.Data.Results = make([]httptransport.ResultRowDTO, 0, len(results))
	for _, result := range results {
		resp.Data.Results = append(resp.Data.Results, httptransport.ResultRowDTO{
			Place: result.Place,
			Name:  result.Name,
			Class: result.Class,
			Team:  result.Team,
		})
	}
	return resp, nil
}

func (h Handler) LeaderboardsHandler(ctx context.Context) (httptransport.LeaderboardsResponse, error) {
	boards, err := h.Service.Leaderboards(ctx)
	if err != nil {
		return httptransport.LeaderboardsResponse{}, err
	}

	resp := httptransport.LeaderboardsResponse{Status: "success"}
	resp.Data.Overall = toStandingDTOs(boards.Overall)
	resp.Data.ByCategory = make(map[string][]httptransport.StandingDTO, len(boards.ByCategory))
	for name, bucket := range boards.ByCategory {
		resp.Data.ByCategory[name] = toStandingDTOs(bucket)
	}
	return resp, nil
}

func toStandingDTOs(standings []ports.Standing) []httptransport.StandingDTO {
	dtos := make([]httptransport.StandingDTO, 0, len(standings))
	for i, standing := range standings {
		dtos = append(dtos, httptransport.StandingDTO{
			Rank:  i + 1,
			Team:  standing.Team,
			Score: standing.Score,
		})
	}
	return dtos
}
