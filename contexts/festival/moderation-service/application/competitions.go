package application

import (
	"context"
	"strings"

	domainerrors "festboard/contexts/festival/moderation-service/domain/errors"
	"festboard/contexts/festival/moderation-service/ports"
)

func (s Service) AddCompetition(ctx context.Context, categoryID string, name string) (ports.Competition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Competition{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.Competition{}, err
	}
	competition := ports.Competition{
		ID:          id,
		CategoryID:  categoryID,
		Name:        name,
		IsPublished: false,
		Results:     []ports.Result{},
	}

	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		if !categoryExists(*doc, categoryID) {
			return domainerrors.ErrCategoryNotFound
		}
		doc.Competitions = append(doc.Competitions, competition)
		return nil
	}); err != nil {
		return ports.Competition{}, err
	}

	s.logMutation("competition_added",
		"competition_id", competition.ID,
		"category_id", categoryID,
		"name", name,
	)
	return competition, nil
}

func (s Service) RenameCompetition(ctx context.Context, competitionID string, newName string) (ports.Competition, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ports.Competition{}, domainerrors.ErrInvalidRequest
	}

	var renamed ports.Competition
	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		for i := range doc.Competitions {
			if doc.Competitions[i].ID == competitionID {
				doc.Competitions[i].Name = newName
				renamed = doc.Competitions[i]
				return nil
			}
		}
		return domainerrors.ErrCompetitionNotFound
	}); err != nil {
		return ports.Competition{}, err
	}

	s.logMutation("competition_renamed", "competition_id", competitionID, "name", newName)
	return renamed, nil
}

func (s Service) DeleteCompetition(ctx context.Context, competitionID string) error {
	_, err := s.mutate(ctx, func(doc *ports.Document) error {
		kept := doc.Competitions[:0]
		found := false
		for _, comp := range doc.Competitions {
			if comp.ID == competitionID {
				found = true
				continue
			}
			kept = append(kept, comp)
		}
		if !found {
			return domainerrors.ErrCompetitionNotFound
		}
		doc.Competitions = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.logMutation("competition_deleted", "competition_id", competitionID)
	return nil
}

// TogglePublish flips the public-visibility gate. A competition that has
// never been touched counts as unpublished, so the first toggle publishes.
func (s Service) TogglePublish(ctx context.Context, competitionID string) (ports.Competition, error) {
	var toggled ports.Competition
	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		for i := range doc.Competitions {
			if doc.Competitions[i].ID == competitionID {
				doc.Competitions[i].IsPublished = !doc.Competitions[i].IsPublished
				toggled = doc.Competitions[i]
				return nil
			}
		}
		return domainerrors.ErrCompetitionNotFound
	}); err != nil {
		return ports.Competition{}, err
	}

	s.logMutation("competition_publish_toggled",
		"competition_id", competitionID,
		"is_published", toggled.IsPublished,
	)
	return toggled, nil
}

func categoryExists(doc ports.Document, categoryID string) bool {
	for _, category := range doc.Categories {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}
