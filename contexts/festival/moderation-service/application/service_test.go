package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainerrors "festboard/contexts/festival/moderation-service/domain/errors"
	"festboard/contexts/festival/moderation-service/ports"
)

type memDocs struct {
	snapshot ports.Snapshot
}

func (m *memDocs) Load(_ context.Context) (ports.Snapshot, error) {
	return ports.Snapshot{
		Document:  m.snapshot.Document.Clone().Normalize(),
		Revision:  m.snapshot.Revision,
		UpdatedAt: m.snapshot.UpdatedAt,
	}, nil
}

func (m *memDocs) Replace(_ context.Context, doc ports.Document, _ int64) (ports.Snapshot, error) {
	m.snapshot = ports.Snapshot{
		Document:  doc.Normalize().Clone(),
		Revision:  m.snapshot.Revision + 1,
		UpdatedAt: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
	}
	return m.snapshot, nil
}

type countingIDGen struct {
	n int
}

func (g *countingIDGen) NewID(_ context.Context) (string, error) {
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

func newTestService(docs *memDocs) Service {
	return Service{
		Docs:        docs,
		IDGenerator: &countingIDGen{},
	}
}

func TestAddCategoryAssignsID(t *testing.T) {
	docs := &memDocs{}
	service := newTestService(docs)

	category, err := service.AddCategory(context.Background(), "  Junior ")
	if err != nil {
		t.Fatalf("add category failed: %v", err)
	}
	if category.ID == "" {
		t.Fatal("expected generated category id")
	}
	if category.Name != "Junior" {
		t.Fatalf("expected trimmed name, got %q", category.Name)
	}
	if len(docs.snapshot.Document.Categories) != 1 {
		t.Fatalf("expected 1 stored category, got %d", len(docs.snapshot.Document.Categories))
	}
}

func TestAddCategoryRejectsEmptyName(t *testing.T) {
	service := newTestService(&memDocs{})
	if _, err := service.AddCategory(context.Background(), "   "); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestDeleteCategoryCascadesCompetitions(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Categories: []ports.Category{{ID: "c1", Name: "Arts"}, {ID: "c2", Name: "Sports"}},
		Competitions: []ports.Competition{
			{ID: "k1", CategoryID: "c1", Name: "Quiz"},
			{ID: "k2", CategoryID: "c2", Name: "Relay"},
			{ID: "k3", CategoryID: "c1", Name: "Essay"},
		},
	}
	service := newTestService(docs)

	if err := service.DeleteCategory(context.Background(), "c1"); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	doc := docs.snapshot.Document
	if len(doc.Categories) != 1 || doc.Categories[0].ID != "c2" {
		t.Fatalf("unexpected categories after cascade: %+v", doc.Categories)
	}
	if len(doc.Competitions) != 1 || doc.Competitions[0].ID != "k2" {
		t.Fatalf("expected only k2 to survive, got %+v", doc.Competitions)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	service := newTestService(&memDocs{})
	if err := service.DeleteCategory(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected category not found, got %v", err)
	}
}

func TestAddCompetitionDefaultsUnpublished(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Categories: []ports.Category{{ID: "c1", Name: "Arts"}},
	}
	service := newTestService(docs)

	competition, err := service.AddCompetition(context.Background(), "c1", "Quiz")
	if err != nil {
		t.Fatalf("add competition failed: %v", err)
	}
	if competition.IsPublished {
		t.Fatal("new competition must start unpublished")
	}
	if competition.Results == nil || len(competition.Results) != 0 {
		t.Fatalf("new competition must start with empty results, got %+v", competition.Results)
	}
}

func TestAddCompetitionUnknownCategory(t *testing.T) {
	service := newTestService(&memDocs{})
	if _, err := service.AddCompetition(context.Background(), "ghost", "Quiz"); !errors.Is(err, domainerrors.ErrCategoryNotFound) {
		t.Fatalf("expected category not found, got %v", err)
	}
}

func TestTogglePublishFlips(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Competitions: []ports.Competition{{ID: "k1", CategoryID: "c1", Name: "Quiz"}},
	}
	service := newTestService(docs)

	first, err := service.TogglePublish(context.Background(), "k1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !first.IsPublished {
		t.Fatal("first toggle should publish")
	}

	second, err := service.TogglePublish(context.Background(), "k1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if second.IsPublished {
		t.Fatal("second toggle should unpublish")
	}
}

func TestSaveResultsDropsEmptyNamesAndOrdersByPlace(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Competitions: []ports.Competition{{ID: "k1", CategoryID: "c1", Name: "Quiz"}},
	}
	service := newTestService(docs)

	saved, err := service.SaveResults(context.Background(), "k1", []ports.ResultRow{
		{Place: "3rd", Name: "Chandra", Team: "Blue"},
		{Place: "2nd", Name: "   "},
		{Place: "1st", Name: " Asha ", Class: "10A", Team: "Red"},
	})
	if err != nil {
		t.Fatalf("save results failed: %v", err)
	}

	if len(saved.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(saved.Results))
	}
	if saved.Results[0].Place != "1st" || saved.Results[0].Name != "Asha" {
		t.Fatalf("expected 1st/Asha first, got %+v", saved.Results[0])
	}
	if saved.Results[1].Place != "3rd" || saved.Results[1].Name != "Chandra" {
		t.Fatalf("expected 3rd/Chandra second, got %+v", saved.Results[1])
	}
}

func TestSaveResultsRejectsDuplicatePlace(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Competitions: []ports.Competition{{ID: "k1", CategoryID: "c1", Name: "Quiz"}},
	}
	service := newTestService(docs)

	_, err := service.SaveResults(context.Background(), "k1", []ports.ResultRow{
		{Place: "1st", Name: "Asha"},
		{Place: "1st", Name: "Binu"},
	})
	if !errors.Is(err, domainerrors.ErrDuplicatePlace) {
		t.Fatalf("expected duplicate place error, got %v", err)
	}
}

func TestSaveResultsRejectsUnknownPlace(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Competitions: []ports.Competition{{ID: "k1", CategoryID: "c1", Name: "Quiz"}},
	}
	service := newTestService(docs)

	_, err := service.SaveResults(context.Background(), "k1", []ports.ResultRow{
		{Place: "4th", Name: "Asha"},
	})
	if !errors.Is(err, domainerrors.ErrInvalidPlace) {
		t.Fatalf("expected invalid place error, got %v", err)
	}
}

func TestRenameTeamDetachesHistoricalResults(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Teams: []ports.Team{{ID: "t1", Name: "Red"}},
		Competitions: []ports.Competition{{
			ID:         "k1",
			CategoryID: "c1",
			Name:       "Quiz",
			Results:    []ports.Result{{Place: "1st", Name: "Asha", Team: "Red"}},
		}},
	}
	service := newTestService(docs)

	renamed, err := service.RenameTeam(context.Background(), "t1", "Crimson")
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if renamed.Name != "Crimson" {
		t.Fatalf("expected new name Crimson, got %q", renamed.Name)
	}

	// Results keep the old name string: detachment is the documented behavior.
	result := docs.snapshot.Document.Competitions[0].Results[0]
	if result.Team != "Red" {
		t.Fatalf("expected result to keep old team name, got %q", result.Team)
	}
}

func TestDeleteTeamLeavesResultsUntouched(t *testing.T) {
	docs := &memDocs{}
	docs.snapshot.Document = ports.Document{
		Teams: []ports.Team{{ID: "t1", Name: "Red"}},
		Competitions: []ports.Competition{{
			ID:         "k1",
			CategoryID: "c1",
			Name:       "Quiz",
			Results:    []ports.Result{{Place: "1st", Name: "Asha", Team: "Red"}},
		}},
	}
	service := newTestService(docs)

	if err := service.DeleteTeam(context.Background(), "t1"); err != nil {
		t.Fatalf("delete team failed: %v", err)
	}
	if len(docs.snapshot.Document.Teams) != 0 {
		t.Fatal("expected team removed")
	}
	if docs.snapshot.Document.Competitions[0].Results[0].Team != "Red" {
		t.Fatal("expected result to keep the stale team name")
	}
}
