package ports

import (
	"context"
	"image"
	"image/color"
	"time"

	festivalv1 "festboard/contracts/gen/festival/v1"
)

type (
	Document    = festivalv1.Document
	Snapshot    = festivalv1.Snapshot
	Category    = festivalv1.Category
	Competition = festivalv1.Competition
	Result      = festivalv1.Result
)

// DocumentSource is the read side of the shared festival document.
type DocumentSource interface {
	Load(ctx context.Context) (Snapshot, error)
}

type Clock interface {
	Now() time.Time
}

// Theme describes one competition poster look: the gradient stops, the
// accent color and the vertical layout offsets. RankCircle falls back to
// Accent when transparent.
type Theme struct {
	Name            string
	Background      []color.NRGBA
	Accent          color.NRGBA
	RankCircle      color.NRGBA
	HeaderY         int
	FestY           int
	CategoryY       int
	WinnersY        int
	ListStartY      int
	AbstractShape   bool
	DecorativeLines bool
}

// Branding carries the fixed header and footer lines printed on every
// poster.
type Branding struct {
	FestTitle    string
	FestSubtitle string
	FooterLine1  string
	FooterLine2  string
}

// WinnerSpec is everything the renderer needs for one congratulations
// poster. Portrait may be nil; the renderer then draws a silhouette.
type WinnerSpec struct {
	Name        string
	Prize       string
	Competition string
	Portrait    image.Image
	Branding    Branding
}

// WinnerRow is one line of a competition poster's winners list.
type WinnerRow struct {
	Rank string
	Name string
	Team string
}

// CompetitionSpec is everything the renderer needs for one winners
// poster.
type CompetitionSpec struct {
	CategoryLine string
	Rows         []WinnerRow
	Branding     Branding
}

// PosterRenderer turns a spec into an encoded PNG.
type PosterRenderer interface {
	RenderWinner(spec WinnerSpec) ([]byte, error)
	RenderCompetition(theme Theme, spec CompetitionSpec) ([]byte, error)
}
