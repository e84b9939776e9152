package application

import (
	"sort"
	"strings"

	festivalv1 "festboard/contracts/gen/festival/v1"
	domainerrors "festboard/contexts/festival/leaderboard-service/domain/errors"
	"festboard/contexts/festival/leaderboard-service/ports"
)

// scorePoints is the fixed prize table. Places outside the table score
// nothing and never fail the computation.
var scorePoints = map[string]int{
	festivalv1.PlaceFirst:  10,
	festivalv1.PlaceSecond: 7,
	festivalv1.PlaceThird:  5,
}

var placeRank = map[string]int{
	festivalv1.PlaceFirst:  1,
	festivalv1.PlaceSecond: 2,
	festivalv1.PlaceThird:  3,
}

// EligibleCategories returns the categories that have at least one
// published competition, ordered alphabetically by name. A nil collator
// falls back to byte order.
func EligibleCategories(doc ports.Document, collator ports.NameCollator) []ports.Category {
	published := make(map[string]bool)
	for _, competition := range doc.Competitions {
		if competition.IsPublished {
			published[competition.CategoryID] = true
		}
	}

	eligible := make([]ports.Category, 0, len(doc.Categories))
	for _, category := range doc.Categories {
		if published[category.ID] {
			eligible = append(eligible, category)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return nameLess(collator, eligible[i].Name, eligible[j].Name)
	})
	return eligible
}

// EligibleCompetitions returns the published competitions of one category,
// ordered alphabetically by name.
func EligibleCompetitions(doc ports.Document, categoryID string, collator ports.NameCollator) []ports.Competition {
	eligible := make([]ports.Competition, 0, len(doc.Competitions))
	for _, competition := range doc.Competitions {
		if competition.IsPublished && competition.CategoryID == categoryID {
			eligible = append(eligible, competition)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return nameLess(collator, eligible[i].Name, eligible[j].Name)
	})
	return eligible
}

// PublishedResults returns the public results view of one competition:
// rows with empty student names dropped, ordered 1st, 2nd, 3rd with
// unrecognized places last.
func PublishedResults(doc ports.Document, competitionID string) (ports.Competition, []ports.Result, error) {
	var competition ports.Competition
	found := false
	for _, candidate := range doc.Competitions {
		if candidate.ID == competitionID {
			competition = candidate
			found = true
			break
		}
	}
	if !found {
		return ports.Competition{}, nil, domainerrors.ErrCompetitionNotFound
	}
	if !competition.IsPublished {
		return ports.Competition{}, nil, domainerrors.ErrCompetitionNotPublic
	}

	results := make([]ports.Result, 0, len(competition.Results))
	for _, result := range competition.Results {
		if strings.TrimSpace(result.Name) == "" {
			continue
		}
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return resultRank(results[i].Place) < resultRank(results[j].Place)
	})
	return competition, results, nil
}

// ComputeLeaderboards recomputes the full ranking set from scratch.
// Every team starts at zero on the overall board and in every category
// bucket, so teams without a single scoring result still appear.
//
// A result counts only when its competition is published, the referenced
// category still exists, and the result's team value matches a team name
// exactly. With matchTeamIDs set, a failed name match is retried against
// team IDs.
func ComputeLeaderboards(doc ports.Document, matchTeamIDs bool) ports.Leaderboards {
	overall := make([]ports.Standing, 0, len(doc.Teams))
	overallIndex := make(map[string]int, len(doc.Teams))
	for _, team := range doc.Teams {
		overallIndex[team.Name] = len(overall)
		overall = append(overall, ports.Standing{Team: team.Name})
	}

	idToName := make(map[string]string, len(doc.Teams))
	if matchTeamIDs {
		for _, team := range doc.Teams {
			idToName[team.ID] = team.Name
		}
	}

	byCategory := make(map[string][]ports.Standing, len(doc.Categories))
	categoryIndex := make(map[string]map[string]int, len(doc.Categories))
	categoryName := make(map[string]string, len(doc.Categories))
	for _, category := range doc.Categories {
		bucket := make([]ports.Standing, 0, len(doc.Teams))
		index := make(map[string]int, len(doc.Teams))
		for _, team := range doc.Teams {
			index[team.Name] = len(bucket)
			bucket = append(bucket, ports.Standing{Team: team.Name})
		}
		byCategory[category.Name] = bucket
		categoryIndex[category.Name] = index
		categoryName[category.ID] = category.Name
	}

	for _, competition := range doc.Competitions {
		if !competition.IsPublished {
			continue
		}
		catName, ok := categoryName[competition.CategoryID]
		if !ok {
			// The category was deleted out from under the competition.
			continue
		}
		for _, result := range competition.Results {
			points := scorePoints[result.Place]
			if points == 0 || result.Team == "" || strings.TrimSpace(result.Name) == "" {
				continue
			}
			teamName := result.Team
			if _, known := overallIndex[teamName]; !known {
				if resolved, viaID := idToName[teamName]; matchTeamIDs && viaID {
					teamName = resolved
				} else {
					continue
				}
			}
			overall[overallIndex[teamName]].Score += points
			byCategory[catName][categoryIndex[catName][teamName]].Score += points
		}
	}

	sortStandings(overall)
	for _, bucket := range byCategory {
		sortStandings(bucket)
	}
	return ports.Leaderboards{Overall: overall, ByCategory: byCategory}
}

// sortStandings orders by descending score. The sort is stable so tied
// teams keep their original roster order.
func sortStandings(standings []ports.Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
}

func nameLess(collator ports.NameCollator, a, b string) bool {
	if collator != nil {
		return collator.Less(a, b)
	}
	return a < b
}

func resultRank(place string) int {
	if rank, ok := placeRank[place]; ok {
		return rank
	}
	return len(placeRank) + 1
}
