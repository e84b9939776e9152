package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// The bitmap face is 7x13 with an 11px ascent; text is rendered at that
// size and scaled up to the requested pixel height.
const (
	glyphWidth  = 7
	glyphHeight = 13
	glyphAscent = 11
)

func fillVerticalGradient(dst *image.RGBA, stops []color.NRGBA) {
	bounds := dst.Bounds()
	height := bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		c := gradientAt(stops, float64(y-bounds.Min.Y)/float64(height-1))
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

func fillDiagonalGradient(dst *image.RGBA, stops []color.NRGBA) {
	bounds := dst.Bounds()
	span := float64(bounds.Dx() + bounds.Dy() - 2)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t := float64((x-bounds.Min.X)+(y-bounds.Min.Y)) / span
			dst.Set(x, y, gradientAt(stops, t))
		}
	}
}

func gradientAt(stops []color.NRGBA, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{A: 0xFF}
	}
	if len(stops) == 1 || t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	segments := float64(len(stops) - 1)
	idx := int(t * segments)
	local := t*segments - float64(idx)
	a, b := stops[idx], stops[idx+1]
	return color.NRGBA{
		R: lerp(a.R, b.R, local),
		G: lerp(a.G, b.G, local),
		B: lerp(a.B, b.B, local),
		A: lerp(a.A, b.A, local),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// circleMask is an alpha mask selecting the pixels inside a circle.
type circleMask struct {
	center image.Point
	radius int
}

func (m circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m circleMask) Bounds() image.Rectangle {
	return image.Rect(
		m.center.X-m.radius, m.center.Y-m.radius,
		m.center.X+m.radius, m.center.Y+m.radius,
	)
}

func (m circleMask) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

func fillCircle(dst *image.RGBA, cx, cy, radius int, c color.Color) {
	mask := circleMask{center: image.Pt(cx, cy), radius: radius}
	draw.DrawMask(dst, mask.Bounds(), image.NewUniform(c), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

func fillRect(dst *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// drawCircularImage scales src to the circle's diameter and paints it
// clipped to the circle.
func drawCircularImage(dst *image.RGBA, src image.Image, cx, cy, radius int) {
	diameter := radius * 2
	scaled := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	mask := circleMask{center: image.Pt(cx, cy), radius: radius}
	draw.DrawMask(dst, mask.Bounds(), scaled, image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

// drawTextCentered paints text with its horizontal center at cx and its
// baseline at baselineY. scale is the integer up-scaling factor of the
// 7x13 bitmap face.
func drawTextCentered(dst *image.RGBA, text string, cx, baselineY, scale int, c color.Color) {
	width := glyphWidth * len(text) * scale
	drawTextLeft(dst, text, cx-width/2, baselineY, scale, c)
}

func drawTextLeft(dst *image.RGBA, text string, x, baselineY, scale int, c color.Color) {
	if text == "" || scale < 1 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0, glyphWidth*len(text), glyphHeight))
	drawer := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, glyphAscent),
	}
	drawer.DrawString(text)

	target := image.Rect(
		x, baselineY-glyphAscent*scale,
		x+small.Bounds().Dx()*scale, baselineY+(glyphHeight-glyphAscent)*scale,
	)
	xdraw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), xdraw.Over, nil)
}
