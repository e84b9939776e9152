package application

import (
	"errors"
	"reflect"
	"testing"

	domainerrors "festboard/contexts/festival/leaderboard-service/domain/errors"
	"festboard/contexts/festival/leaderboard-service/ports"
)

func baseDocument() ports.Document {
	return ports.Document{
		Categories: []ports.Category{{ID: "c-arts", Name: "Arts"}},
		Teams:      []ports.Team{{ID: "t-red", Name: "Red"}},
		Competitions: []ports.Competition{{
			ID:          "k-quiz",
			CategoryID:  "c-arts",
			Name:        "Quiz",
			IsPublished: true,
			Results:     []ports.Result{{Place: "1st", Name: "Asha", Class: "10A", Team: "Red"}},
		}},
	}
}

func TestComputeLeaderboardsFirstPlaceScoresTen(t *testing.T) {
	boards := ComputeLeaderboards(baseDocument(), false)

	if len(boards.Overall) != 1 || boards.Overall[0].Team != "Red" || boards.Overall[0].Score != 10 {
		t.Fatalf("unexpected overall board: %+v", boards.Overall)
	}
	arts, ok := boards.ByCategory["Arts"]
	if !ok {
		t.Fatal("expected Arts bucket keyed by category name")
	}
	if len(arts) != 1 || arts[0].Score != 10 {
		t.Fatalf("unexpected Arts bucket: %+v", arts)
	}
}

func TestComputeLeaderboardsIgnoresUnpublished(t *testing.T) {
	doc := baseDocument()
	doc.Competitions[0].IsPublished = false

	boards := ComputeLeaderboards(doc, false)
	if boards.Overall[0].Score != 0 {
		t.Fatalf("unpublished competition must not score, got %d", boards.Overall[0].Score)
	}
}

func TestComputeLeaderboardsPublishToggleRoundTrip(t *testing.T) {
	doc := baseDocument()
	doc.Competitions[0].IsPublished = false
	before := ComputeLeaderboards(doc, false)

	doc.Competitions[0].IsPublished = true
	doc.Competitions[0].IsPublished = false
	after := ComputeLeaderboards(doc, false)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("toggling publish on and off changed the outcome:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestComputeLeaderboardsStableTieKeepsRosterOrder(t *testing.T) {
	doc := ports.Document{
		Categories: []ports.Category{{ID: "c1", Name: "Arts"}},
		Teams: []ports.Team{
			{ID: "t-blue", Name: "Blue"},
			{ID: "t-red", Name: "Red"},
			{ID: "t-green", Name: "Green"},
		},
		Competitions: []ports.Competition{
			{
				ID: "k1", CategoryID: "c1", Name: "Quiz", IsPublished: true,
				Results: []ports.Result{
					{Place: "1st", Name: "A", Team: "Red"},
					{Place: "2nd", Name: "B", Team: "Green"},
				},
			},
			{
				ID: "k2", CategoryID: "c1", Name: "Essay", IsPublished: true,
				Results: []ports.Result{
					{Place: "1st", Name: "C", Team: "Blue"},
					{Place: "2nd", Name: "D", Team: "Green"},
				},
			},
		},
	}

	boards := ComputeLeaderboards(doc, false)

	// Green leads with 14; Blue and Red tie at 10 and keep roster order.
	want := []ports.Standing{
		{Team: "Green", Score: 14},
		{Team: "Blue", Score: 10},
		{Team: "Red", Score: 10},
	}
	if !reflect.DeepEqual(boards.Overall, want) {
		t.Fatalf("unexpected overall order: %+v", boards.Overall)
	}
}

func TestComputeLeaderboardsSkipsDeletedCategory(t *testing.T) {
	doc := baseDocument()
	doc.Categories = nil

	boards := ComputeLeaderboards(doc, false)
	if boards.Overall[0].Score != 0 {
		t.Fatalf("competition with deleted category must not score, got %d", boards.Overall[0].Score)
	}
	if len(boards.ByCategory) != 0 {
		t.Fatalf("expected no category buckets, got %+v", boards.ByCategory)
	}
}

func TestComputeLeaderboardsRenamedTeamDetaches(t *testing.T) {
	doc := baseDocument()
	doc.Teams[0].Name = "Crimson"

	boards := ComputeLeaderboards(doc, false)
	if boards.Overall[0].Team != "Crimson" || boards.Overall[0].Score != 0 {
		t.Fatalf("result with stale team name must not score, got %+v", boards.Overall[0])
	}
}

func TestComputeLeaderboardsUnknownPlaceScoresZero(t *testing.T) {
	doc := baseDocument()
	doc.Competitions[0].Results[0].Place = "4th"

	boards := ComputeLeaderboards(doc, false)
	if boards.Overall[0].Score != 0 {
		t.Fatalf("unknown place must score zero, got %d", boards.Overall[0].Score)
	}
}

func TestComputeLeaderboardsEmptyNameScoresZero(t *testing.T) {
	doc := baseDocument()
	doc.Competitions[0].Results[0].Name = "  "

	boards := ComputeLeaderboards(doc, false)
	if boards.Overall[0].Score != 0 {
		t.Fatalf("empty student name must score zero, got %d", boards.Overall[0].Score)
	}
}

func TestComputeLeaderboardsNoResultsKeepsRosterOrderAtZero(t *testing.T) {
	doc := ports.Document{
		Teams: []ports.Team{{ID: "1", Name: "Zulu"}, {ID: "2", Name: "Alpha"}},
	}

	boards := ComputeLeaderboards(doc, false)
	want := []ports.Standing{{Team: "Zulu"}, {Team: "Alpha"}}
	if !reflect.DeepEqual(boards.Overall, want) {
		t.Fatalf("zero-score board must keep roster order, got %+v", boards.Overall)
	}
}

func TestComputeLeaderboardsTeamIDMatchingFlag(t *testing.T) {
	doc := baseDocument()
	doc.Competitions[0].Results[0].Team = "t-red"

	strict := ComputeLeaderboards(doc, true)
	if strict.Overall[0].Score != 10 {
		t.Fatalf("id match enabled should resolve the team, got %+v", strict.Overall[0])
	}

	loose := ComputeLeaderboards(doc, false)
	if loose.Overall[0].Score != 0 {
		t.Fatalf("id match disabled should not resolve the team, got %+v", loose.Overall[0])
	}
}

func TestEligibleCategoriesFiltersAndSorts(t *testing.T) {
	doc := ports.Document{
		Categories: []ports.Category{
			{ID: "c-sports", Name: "Sports"},
			{ID: "c-arts", Name: "Arts"},
			{ID: "c-music", Name: "Music"},
		},
		Competitions: []ports.Competition{
			{ID: "k1", CategoryID: "c-sports", IsPublished: true},
			{ID: "k2", CategoryID: "c-arts", IsPublished: true},
			{ID: "k3", CategoryID: "c-music", IsPublished: false},
		},
	}

	eligible := EligibleCategories(doc, nil)
	if len(eligible) != 2 || eligible[0].Name != "Arts" || eligible[1].Name != "Sports" {
		t.Fatalf("unexpected eligible categories: %+v", eligible)
	}
}

func TestEligibleCompetitionsFiltersAndSorts(t *testing.T) {
	doc := ports.Document{
		Competitions: []ports.Competition{
			{ID: "k1", CategoryID: "c1", Name: "Quiz", IsPublished: true},
			{ID: "k2", CategoryID: "c1", Name: "Essay", IsPublished: true},
			{ID: "k3", CategoryID: "c1", Name: "Dance", IsPublished: false},
			{ID: "k4", CategoryID: "c2", Name: "Relay", IsPublished: true},
		},
	}

	eligible := EligibleCompetitions(doc, "c1", nil)
	if len(eligible) != 2 || eligible[0].Name != "Essay" || eligible[1].Name != "Quiz" {
		t.Fatalf("unexpected eligible competitions: %+v", eligible)
	}
}

func TestPublishedResultsOrdersAndDropsEmptyNames(t *testing.T) {
	doc := ports.Document{
		Competitions: []ports.Competition{{
			ID: "k1", CategoryID: "c1", Name: "Quiz", IsPublished: true,
			Results: []ports.Result{
				{Place: "3rd", Name: "Chandra"},
				{Place: "2nd", Name: ""},
				{Place: "1st", Name: "Asha"},
			},
		}},
	}

	_, results, err := PublishedResults(doc, "k1")
	if err != nil {
		t.Fatalf("published results failed: %v", err)
	}
	if len(results) != 2 || results[0].Name != "Asha" || results[1].Name != "Chandra" {
		t.Fatalf("unexpected result order: %+v", results)
	}
}

func TestPublishedResultsErrors(t *testing.T) {
	doc := ports.Document{
		Competitions: []ports.Competition{{ID: "k1", CategoryID: "c1", Name: "Quiz"}},
	}

	if _, _, err := PublishedResults(doc, "missing"); !errors.Is(err, domainerrors.ErrCompetitionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := PublishedResults(doc, "k1"); !errors.Is(err, domainerrors.ErrCompetitionNotPublic) {
		t.Fatalf("expected not public, got %v", err)
	}
}
