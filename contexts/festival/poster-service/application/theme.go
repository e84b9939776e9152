package application

import (
	"image/color"
	"math/rand"

	"festboard/contexts/festival/poster-service/ports"
)

// themes is the fixed palette of competition poster looks. The layout
// offsets differ per theme so the text blocks sit where the background
// leaves room.
var themes = []ports.Theme{
	{
		Name:       "dome-dark",
		Background: []color.NRGBA{{0x23, 0x25, 0x26, 0xFF}, {0x41, 0x43, 0x45, 0xFF}},
		Accent:     color.NRGBA{0xFF, 0xD7, 0x00, 0xFF},
		HeaderY:    120, FestY: 170, CategoryY: 240, WinnersY: 380, ListStartY: 520,
	},
	{
		Name:       "radiant-texture",
		Background: []color.NRGBA{{0x12, 0x12, 0x12, 0xFF}, {0x33, 0x33, 0x33, 0xFF}, {0x55, 0x55, 0x55, 0xFF}},
		Accent:     color.NRGBA{0x00, 0xF0, 0xFF, 0xFF},
		RankCircle: color.NRGBA{0x00, 0xF0, 0xFF, 0x33},
		HeaderY:    120, FestY: 170, CategoryY: 240, WinnersY: 380, ListStartY: 520,
	},
	{
		Name:          "abstract-purple",
		Background:    []color.NRGBA{{0x3A, 0x1C, 0x71, 0xFF}, {0xD7, 0x6D, 0x77, 0xFF}, {0xFF, 0xAF, 0x7B, 0xFF}},
		Accent:        color.NRGBA{0xFF, 0xEF, 0xB3, 0xFF},
		HeaderY:       100, FestY: 150, CategoryY: 210, WinnersY: 330, ListStartY: 480,
		AbstractShape: true,
	},
	{
		Name:            "modern-lines",
		Background:      []color.NRGBA{{0x0A, 0x0A, 0x0A, 0xFF}, {0x1A, 0x1A, 0x1A, 0xFF}},
		Accent:          color.NRGBA{0xA0, 0xFF, 0x90, 0xFF},
		HeaderY:         110, FestY: 160, CategoryY: 230, WinnersY: 360, ListStartY: 500,
		DecorativeLines: true,
	},
	{
		Name:       "midnight-subtle",
		Background: []color.NRGBA{{0x0C, 0x14, 0x20, 0xFF}, {0x1A, 0x29, 0x3A, 0xFF}},
		Accent:     color.NRGBA{0xFF, 0xEB, 0x00, 0xFF},
		RankCircle: color.NRGBA{0xFF, 0xEB, 0x00, 0x33},
		HeaderY:    120, FestY: 170, CategoryY: 240, WinnersY: 380, ListStartY: 520,
	},
	{
		Name:       "ember-overlay",
		Background: []color.NRGBA{{0x00, 0x00, 0x00, 0xFF}, {0x1C, 0x00, 0x00, 0xFF}},
		Accent:     color.NRGBA{0xEE, 0xA2, 0x36, 0xFF},
		RankCircle: color.NRGBA{0xEE, 0xA2, 0x36, 0x4D},
		HeaderY:    120, FestY: 170, CategoryY: 240, WinnersY: 380, ListStartY: 520,
	},
	{
		Name:       "mono-prominent",
		Background: []color.NRGBA{{0x00, 0x0D, 0x1A, 0xFF}, {0x00, 0x00, 0x00, 0xFF}},
		Accent:     color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		RankCircle: color.NRGBA{0xFF, 0xFF, 0xFF, 0x33},
		HeaderY:    120, FestY: 170, CategoryY: 240, WinnersY: 380, ListStartY: 520,
	},
}

// SelectTheme picks one of the fixed themes. The choice is fully
// determined by the seed, so the same seed always yields the same
// poster.
func SelectTheme(seed int64) ports.Theme {
	rng := rand.New(rand.NewSource(seed))
	return themes[rng.Intn(len(themes))]
}

// ThemeCount reports how many themes exist.
func ThemeCount() int { return len(themes) }
