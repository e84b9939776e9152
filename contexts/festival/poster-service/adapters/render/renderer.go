package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"festboard/contexts/festival/poster-service/ports"
)

const (
	winnerWidth  = 1080
	winnerHeight = 1350

	competitionWidth  = 1080
	competitionHeight = 1080

	portraitCenterY = 950
	portraitRadius  = 220
	ringWidth       = 15

	listItemHeight = 150
	rankCircleX    = 220
	rankRadius     = 45
	winnerColumnX  = 300
)

// Renderer rasterizes posters onto fixed-size canvases and encodes them
// as PNG.
type Renderer struct{}

var _ ports.PosterRenderer = Renderer{}

func New() Renderer { return Renderer{} }

// RenderWinner draws the 1080x1350 congratulations poster. The look is
// fixed: a soft blue gradient with the student's portrait in a white
// ring.
func (Renderer) RenderWinner(spec ports.WinnerSpec) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, winnerWidth, winnerHeight))

	fillVerticalGradient(canvas, []color.NRGBA{
		{0xAD, 0xD8, 0xE6, 0xFF},
		{0xE0, 0xFF, 0xFF, 0xFF},
		{0xAD, 0xD8, 0xE6, 0xFF},
	})
	fillRect(canvas,
		image.Rect(0, winnerHeight*7/10, winnerWidth, winnerHeight),
		color.NRGBA{0xFF, 0xFF, 0xFF, 0x66},
	)

	steelBlue := color.NRGBA{0x46, 0x82, 0xB4, 0xFF}
	midnight := color.NRGBA{0x19, 0x19, 0x70, 0xFF}
	gold := color.NRGBA{0xFF, 0xD7, 0x00, 0xFF}
	slateBlue := color.NRGBA{0x6A, 0x5A, 0xCD, 0xFF}

	drawTextCentered(canvas, "CONGRAT", winnerWidth/2, 280, 14, steelBlue)
	drawTextCentered(canvas, "ULATIONS", winnerWidth/2, 400, 14, steelBlue)
	drawTextCentered(canvas, spec.Name, winnerWidth/2, 530, 9, midnight)
	drawTextCentered(canvas, spec.Prize, winnerWidth/2, 610, 7, gold)
	drawTextCentered(canvas, spec.Competition, winnerWidth/2, 680, 6, slateBlue)

	fillCircle(canvas, winnerWidth/2, portraitCenterY, portraitRadius+ringWidth, color.White)
	if spec.Portrait != nil {
		drawCircularImage(canvas, spec.Portrait, winnerWidth/2, portraitCenterY, portraitRadius)
	} else {
		drawSilhouette(canvas, winnerWidth/2, portraitCenterY, portraitRadius)
	}

	drawTextCentered(canvas, spec.Branding.FooterLine1, winnerWidth/2, winnerHeight-80, 5, midnight)
	drawTextCentered(canvas, spec.Branding.FooterLine2, winnerWidth/2, winnerHeight-30, 5, midnight)

	return encodePNG(canvas)
}

// RenderCompetition draws the 1080x1080 winners poster in the given
// theme.
func (Renderer) RenderCompetition(theme ports.Theme, spec ports.CompetitionSpec) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, competitionWidth, competitionHeight))

	fillDiagonalGradient(canvas, theme.Background)

	if theme.AbstractShape {
		fillRect(canvas,
			image.Rect(0, competitionHeight/2, competitionWidth, competitionHeight),
			color.NRGBA{0xFF, 0xFF, 0xFF, 0x0D},
		)
	}
	if theme.DecorativeLines {
		line := theme.Accent
		line.A = 0x4D
		fillRect(canvas, image.Rect(0, 200, competitionWidth, 203), line)
		fillRect(canvas, image.Rect(0, competitionHeight-200, competitionWidth, competitionHeight-197), line)
	}

	white := color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	lightGray := color.NRGBA{0xCC, 0xCC, 0xCC, 0xFF}
	dimGray := color.NRGBA{0xDD, 0xDD, 0xDD, 0xFF}

	drawTextCentered(canvas, spec.Branding.FestTitle, competitionWidth/2, theme.HeaderY, 9, white)
	drawTextCentered(canvas, spec.Branding.FestSubtitle, competitionWidth/2, theme.FestY, 5, white)
	drawTextCentered(canvas, spec.CategoryLine, competitionWidth/2, theme.CategoryY, 4, lightGray)
	drawTextCentered(canvas, "WINNERS", competitionWidth/2, theme.WinnersY, 15, theme.Accent)

	rankColor := theme.RankCircle
	if rankColor == (color.NRGBA{}) {
		rankColor = theme.Accent
	}
	rankText := white
	if len(theme.Background) > 0 {
		rankText = theme.Background[0]
	}

	y := theme.ListStartY
	for _, row := range spec.Rows {
		fillCircle(canvas, rankCircleX, y-20, rankRadius, rankColor)
		drawTextCentered(canvas, row.Rank, rankCircleX, y-5, 6, rankText)
		drawTextLeft(canvas, row.Name, winnerColumnX, y, 7, white)
		drawTextLeft(canvas, row.Team, winnerColumnX, y+40, 4, dimGray)
		y += listItemHeight
	}

	drawTextCentered(canvas, spec.Branding.FooterLine1, competitionWidth/2, competitionHeight-80, 3, white)
	drawTextCentered(canvas, spec.Branding.FooterLine2, competitionWidth/2, competitionHeight-50, 3, white)

	return encodePNG(canvas)
}

// drawSilhouette is the fallback portrait: a flat disc with a head and
// shoulders shape.
func drawSilhouette(dst *image.RGBA, cx, cy, radius int) {
	base := color.NRGBA{0xDD, 0xDD, 0xDD, 0xFF}
	figure := color.NRGBA{0x9E, 0x9E, 0x9E, 0xFF}

	fillCircle(dst, cx, cy, radius, base)
	fillCircle(dst, cx, cy-radius/3, radius/3, figure)

	shoulders := circleMask{center: image.Pt(cx, cy+radius), radius: radius * 3 / 4}
	portrait := circleMask{center: image.Pt(cx, cy), radius: radius}
	for y := shoulders.Bounds().Min.Y; y < shoulders.Bounds().Max.Y; y++ {
		for x := shoulders.Bounds().Min.X; x < shoulders.Bounds().Max.X; x++ {
			if shoulders.At(x, y).(color.Alpha).A > 0 && portrait.At(x, y).(color.Alpha).A > 0 {
				dst.Set(x, y, figure)
			}
		}
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
