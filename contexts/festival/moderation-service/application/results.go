package application

import (
	"context"
	"strings"

	festivalv1 "festboard/contracts/gen/festival/v1"
	domainerrors "festboard/contexts/festival/moderation-service/domain/errors"
	"festboard/contexts/festival/moderation-service/ports"
)

var placeOrder = []string{festivalv1.PlaceFirst, festivalv1.PlaceSecond, festivalv1.PlaceThird}

// SaveResults replaces the competition's result list wholesale. Rows with an
// empty student name mean "no entry for this place" and are dropped; at most
// one row per place survives.
func (s Service) SaveResults(ctx context.Context, competitionID string, rows []ports.ResultRow) (ports.Competition, error) {
	results, err := normalizeResults(rows)
	if err != nil {
		return ports.Competition{}, err
	}

	var saved ports.Competition
	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		for i := range doc.Competitions {
			if doc.Competitions[i].ID == competitionID {
				doc.Competitions[i].Results = results
				saved = doc.Competitions[i]
				return nil
			}
		}
		return domainerrors.ErrCompetitionNotFound
	}); err != nil {
		return ports.Competition{}, err
	}

	s.logMutation("results_saved",
		"competition_id", competitionID,
		"result_count", len(results),
	)
	return saved, nil
}

func normalizeResults(rows []ports.ResultRow) ([]ports.Result, error) {
	byPlace := make(map[string]ports.Result, len(placeOrder))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		if !isKnownPlace(row.Place) {
			return nil, domainerrors.ErrInvalidPlace
		}
		if _, taken := byPlace[row.Place]; taken {
			return nil, domainerrors.ErrDuplicatePlace
		}
		byPlace[row.Place] = ports.Result{
			Place: row.Place,
			Name:  name,
			Class: strings.TrimSpace(row.Class),
			Team:  strings.TrimSpace(row.Team),
		}
	}

	results := make([]ports.Result, 0, len(byPlace))
	for _, place := range placeOrder {
		if result, ok := byPlace[place]; ok {
			results = append(results, result)
		}
	}
	return results, nil
}

func isKnownPlace(place string) bool {
	for _, known := range placeOrder {
		if place == known {
			return true
		}
	}
	return false
}
