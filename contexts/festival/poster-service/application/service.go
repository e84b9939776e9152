package application

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"sort"
	"strings"

	festivalv1 "festboard/contracts/gen/festival/v1"
	domainerrors "festboard/contexts/festival/poster-service/domain/errors"
	"festboard/contexts/festival/poster-service/ports"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var prizeText = map[string]string{
	festivalv1.PlaceFirst:  "First Prize",
	festivalv1.PlaceSecond: "Second Prize",
	festivalv1.PlaceThird:  "Third Prize",
}

var placeRank = map[string]int{
	festivalv1.PlaceFirst:  1,
	festivalv1.PlaceSecond: 2,
	festivalv1.PlaceThird:  3,
}

// Poster is a rendered PNG plus the filename suggested for download.
type Poster struct {
	Filename string
	PNG      []byte
}

// WinnerPosterRequest carries the celebrated result's details. The
// values come straight from a results row; nothing is looked up.
type WinnerPosterRequest struct {
	Name        string
	Place       string
	Team        string
	Competition string
}

// Service renders celebratory posters. Rendering reads the document but
// never writes it; a failed render leaves no trace.
type Service struct {
	Docs     ports.DocumentSource
	Renderer ports.PosterRenderer
	Clock    ports.Clock
	Branding ports.Branding
	Logger   *slog.Logger
}

// WinnerPoster renders the 1080x1350 congratulations poster for one
// student. portrait is an optional PNG or JPEG; when absent a default
// silhouette is drawn. A portrait that cannot be decoded is an error
// reported to the operator rather than silently replaced.
func (s Service) WinnerPoster(ctx context.Context, req WinnerPosterRequest, portrait []byte) (Poster, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Poster{}, domainerrors.ErrInvalidRequest
	}

	var portraitImg image.Image
	if len(portrait) > 0 {
		img, _, err := image.Decode(bytes.NewReader(portrait))
		if err != nil {
			return Poster{}, fmt.Errorf("%w: %v", domainerrors.ErrPortraitUndecodable, err)
		}
		portraitImg = img
	}

	prize, ok := prizeText[req.Place]
	if !ok {
		prize = req.Place
	}

	png, err := s.Renderer.RenderWinner(ports.WinnerSpec{
		Name:        name,
		Prize:       prize,
		Competition: strings.TrimSpace(req.Competition),
		Portrait:    portraitImg,
		Branding:    s.Branding,
	})
	if err != nil {
		return Poster{}, fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	s.logRender("winner_poster_rendered", "winner", name)
	return Poster{
		Filename: fmt.Sprintf("Congratulations - %s.png", name),
		PNG:      png,
	}, nil
}

// CompetitionPoster renders the 1080x1080 winners poster for one
// competition from the current document. The theme is chosen by seed;
// pass a negative seed to let the clock decide.
func (s Service) CompetitionPoster(ctx context.Context, competitionID string, seed int64) (Poster, error) {
	snapshot, err := s.Docs.Load(ctx)
	if err != nil {
		return Poster{}, err
	}
	doc := snapshot.Document

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
		return Poster{}, domainerrors.ErrCompetitionNotFound
	}

	categoryName := "Unknown"
	for _, category := range doc.Categories {
		if category.ID == competition.CategoryID {
			categoryName = category.Name
			break
		}
	}

	if seed < 0 {
		seed = s.Clock.Now().UnixNano()
	}
	theme := SelectTheme(seed)

	png, err := s.Renderer.RenderCompetition(theme, ports.CompetitionSpec{
		CategoryLine: strings.ToUpper(categoryName) + " - " + strings.ToUpper(competition.Name),
		Rows:         winnerRows(competition.Results),
		Branding:     s.Branding,
	})
	if err != nil {
		return Poster{}, fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	s.logRender("competition_poster_rendered", "competition_id", competitionID, "theme", theme.Name)
	return Poster{
		Filename: fmt.Sprintf("Winners - %s.png", competition.Name),
		PNG:      png,
	}, nil
}

// winnerRows drops empty names and orders 1st, 2nd, 3rd with unknown
// places last.
func winnerRows(results []ports.Result) []ports.WinnerRow {
	kept := make([]ports.Result, 0, len(results))
	for _, result := range results {
		if strings.TrimSpace(result.Name) == "" {
			continue
		}
		kept = append(kept, result)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return rankOf(kept[i].Place) < rankOf(kept[j].Place)
	})

	rows := make([]ports.WinnerRow, 0, len(kept))
	for _, result := range kept {
		rank := ""
		if result.Place != "" {
			rank = result.Place[:1]
		}
		rows = append(rows, ports.WinnerRow{
			Rank: rank,
			Name: strings.ToUpper(result.Name),
			Team: strings.ToUpper(result.Team),
		})
	}
	return rows
}

func rankOf(place string) int {
	if rank, ok := placeRank[place]; ok {
		return rank
	}
	return 99
}

func (s Service) logRender(event string, attrs ...any) {
	base := []any{
		"event", event,
		"module", "festival/poster-service",
		"layer", "application",
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info(event, append(base, attrs...)...)
}
