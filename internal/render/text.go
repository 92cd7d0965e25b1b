package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y.
type TextStyle struct {
	Color color.Color
	Face  *Face
}

type TextMetrics struct {
	Width   int
	Height  int
	Ascent  int
	Descent int
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	if style.Face == nil {
		return TextMetrics{}
	}
	return measure(text, style.Face)
}

func measure(text string, face *Face) TextMetrics {
	m := face.Metrics()
	scale := max(face.Scale, 1)
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	return TextMetrics{
		Width:   width * scale,
		Height:  (ascent + descent) * scale,
		Ascent:  ascent * scale,
		Descent: descent * scale,
	}
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	if style.Face == nil || text == "" {
		return TextMetrics{}
	}
	col := style.Color
	if col == nil {
		col = TextWhite
	}
	metrics := measure(text, style.Face)
	if style.Face.Scale <= 1 {
		drawer := &font.Drawer{Dst: c.img, Src: &image.Uniform{C: col}, Face: style.Face}
		drawer.Dot = fixed.P(x, y+metrics.Ascent)
		drawer.DrawString(text)
		return metrics
	}

	// Bitmap fallback: render at native size, then magnify.
	scale := style.Face.Scale
	temp := image.NewRGBA(image.Rect(0, 0, metrics.Width/scale, metrics.Height/scale))
	drawer := &font.Drawer{Dst: temp, Src: &image.Uniform{C: col}, Face: style.Face}
	drawer.Dot = fixed.P(0, metrics.Ascent/scale)
	drawer.DrawString(text)
	dst := image.Rect(x, y, x+metrics.Width, y+metrics.Height)
	xdraw.NearestNeighbor.Scale(c.img, dst, temp, temp.Bounds(), xdraw.Over, nil)
	return metrics
}

// DrawTextWithShadow draws a shadow copy offset by (offX, offY) before the
// text itself.
func DrawTextWithShadow(d Drawer, text string, x, y int, style TextStyle, shadow color.Color, offX, offY int) TextMetrics {
	d.DrawText(text, x+offX, y+offY, TextStyle{Color: shadow, Face: style.Face})
	return d.DrawText(text, x, y, style)
}
