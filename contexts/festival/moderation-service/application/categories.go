package application

import (
	"context"
	"strings"

	domainerrors "festboard/contexts/festival/moderation-service/domain/errors"
	"festboard/contexts/festival/moderation-service/ports"
)

func (s Service) AddCategory(ctx context.Context, name string) (ports.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.Category{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.Category{}, err
	}
	category := ports.Category{ID: id, Name: name}

	if _, err := s.mutate(ctx, func(doc *ports.Document) error {
		doc.Categories = append(doc.Categories, category)
		return nil
	}); err != nil {
		return ports.Category{}, err
	}

	s.logMutation("category_added", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// DeleteCategory cascades: every competition referencing the category goes
// with it. Teams are untouched.
func (s Service) DeleteCategory(ctx context.Context, categoryID string) error {
	_, err := s.mutate(ctx, func(doc *ports.Document) error {
		kept := doc.Categories[:0]
		found := false
		for _, category := range doc.Categories {
			if category.ID == categoryID {
				found = true
				continue
			}
			kept = append(kept, category)
		}
		if !found {
			return domainerrors.ErrCategoryNotFound
		}
		doc.Categories = kept

		competitions := doc.Competitions[:0]
		for _, comp := range doc.Competitions {
			if comp.CategoryID == categoryID {
				continue
			}
			competitions = append(competitions, comp)
		}
		doc.Competitions = competitions
		return nil
	})
	if err != nil {
		return err
	}

	s.logMutation("category_deleted", "category_id", categoryID)
	return nil
}
