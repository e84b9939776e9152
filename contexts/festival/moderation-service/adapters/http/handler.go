package httpadapter

import (
	"context"
	"log/slog"

	"festboard/contexts/festival/moderation-service/application"
	"festboard/contexts/festival/moderation-service/ports"
	httptransport "festboard/contexts/festival/moderation-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateCategoryHandler(
	ctx context.Context,
	req httptransport.CreateCategoryRequest,
) (httptransport.CategoryResponse, error) {
	category, err := h.Service.AddCategory(ctx, req.Name)
	if err != nil {
		return httptransport.CategoryResponse{}, err
	}

	resp := httptransport.CategoryResponse{Status: "success"}
	resp.Data.ID = category.ID
	resp.Data.Name = category.Name
	return resp, nil
}

func (h Handler) DeleteCategoryHandler(ctx context.Context, categoryID string) (httptransport.StatusResponse, error) {
	if err := h.Service.DeleteCategory(ctx, categoryID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) CreateTeamHandler(
	ctx context.Context,
	req httptransport.CreateTeamRequest,
) (httptransport.TeamResponse, error) {
	team, err := h.Service.AddTeam(ctx, req.Name)
	if err != nil {
		return httptransport.TeamResponse{}, err
	}
	return toTeamResponse(team), nil
}

func (h Handler) RenameTeamHandler(
	ctx context.Context,
	teamID string,
	req httptransport.RenameTeamRequest,
) (httptransport.TeamResponse, error) {
	team, err := h.Service.RenameTeam(ctx, teamID, req.Name)
	if err != nil {
		return httptransport.TeamResponse{}, err
	}
	return toTeamResponse(team), nil
}

func (h Handler) DeleteTeamHandler(ctx context.Context, teamID string) (httptransport.StatusResponse, error) {
	if err := h.Service.DeleteTeam(ctx, teamID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) CreateCompetitionHandler(
	ctx context.Context,
	req httptransport.CreateCompetitionRequest,
) (httptransport.CompetitionResponse, error) {
	competition, err := h.Service.AddCompetition(ctx, req.CategoryID, req.Name)
	if err != nil {
		return httptransport.CompetitionResponse{}, err
	}
	return toCompetitionResponse(competition), nil
}

func (h Handler) RenameCompetitionHandler(
	ctx context.Context,
	competitionID string,
	req httptransport.RenameCompetitionRequest,
) (httptransport.CompetitionResponse, error) {
	competition, err := h.Service.RenameCompetition(ctx, competitionID, req.Name)
	if err != nil {
		return httptransport.CompetitionResponse{}, err
	}
	return toCompetitionResponse(competition), nil
}

func (h Handler) DeleteCompetitionHandler(ctx context.Context, competitionID string) (httptransport.StatusResponse, error) {
	if err := h.Service.DeleteCompetition(ctx, competitionID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) TogglePublishHandler(ctx context.Context, competitionID string) (httptransport.CompetitionResponse, error) {
	competition, err := h.Service.TogglePublish(ctx, competitionID)
	if err != nil {
		return httptransport.CompetitionResponse{}, err
	}
	return toCompetitionResponse(competition), nil
}

func (h Handler) SaveResultsHandler(
	ctx context.Context,
	competitionID string,
	req httptransport.SaveResultsRequest,
) (httptransport.CompetitionResponse, error) {
	rows := make([]ports.ResultRow, 0, len(req.Results))
	for _, row := range req.Results {
		rows = append(rows, ports.ResultRow{
			Place: row.Place,
			Name:  row.Name,
			Class: row.Class,
			Team:  row.Team,
		})
	}

	competition, err := h.Service.SaveResults(ctx, competitionID, rows)
	if err != nil {
		return httptransport.CompetitionResponse{}, err
	}
	return toCompetitionResponse(competition), nil
}

func toTeamResponse(team ports.Team) httptransport.TeamResponse {
	resp := httptransport.TeamResponse{Status: "success"}
	resp.Data.ID = team.ID
	resp.Data.Name = team.Name
	return resp
}

func toCompetitionResponse(competition ports.Competition) httptransport.CompetitionResponse {
	resp := httptransport.CompetitionResponse{Status: "success"}
	resp.Data.ID = competition.ID
	resp.Data.CategoryID = competition.CategoryID
	resp.Data.Name = competition.Name
	resp.Data.IsPublished = competition.IsPublished
	resp.Data.Results = make([]httptransport.ResultRowDTO, 0, len(competition.Results))
	for _, result := range competition.Results {
		resp.Data.Results = append(resp.Data.Results, httptransport.ResultRowDTO{
			Place: result.Place,
			Name:  result.Name,
			Class: result.Class,
			Team:  result.Team,
		})
	}
	return resp
}
