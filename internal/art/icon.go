package art

import (
	"image"

	"github.com/ciscolive-kodi/artgen/internal/render"
	"github.com/ciscolive-kodi/artgen/internal/render/layout"
)

// Icon layout.
const (
	iconMargin       = 20
	iconCornerRadius = 30
	iconBorderWidth  = 3
	iconPlaySize     = 70

	barOffsetX = 30
	barWidth   = 6
	barSpacing = 10
	barRadius  = 3
)

var barHeights = []int{30, 45, 60, 50, 35}

// Icon is the 256x256 add-on icon.
type Icon struct{}

func (Icon) Name() string { return "icon.png" }

func (i Icon) Render() (render.Encoded, error) {
	canvas := render.NewCanvas(render.IconSize, render.IconSize, render.DarkBackground)
	i.Draw(canvas)
	data, err := render.EncodePNG(canvas.Flatten(render.DarkBackground))
	if err != nil {
		return render.Encoded{}, err
	}
	return render.Encoded{Name: i.Name(), Format: render.PNG, Width: render.IconSize, Height: render.IconSize, Data: data}, nil
}

// Draw paints the icon: a rounded frame, a play glyph with a highlight and
// a row of signal bars.
func (Icon) Draw(d render.Drawer) {
	width, height := d.Size()
	bounds := image.Rect(0, 0, width, height)
	center := layout.Center(bounds)

	// The frame and bars include their end coordinates, hence the +1.
	frame := layout.Inset(bounds, iconMargin)
	frame.Max = frame.Max.Add(image.Pt(1, 1))
	d.FillRoundedRect(frame, iconCornerRadius, render.DarkerBackground)
	d.StrokeRoundedRect(frame, iconCornerRadius, iconBorderWidth, render.CiscoTeal)

	d.FillPolygon(playTriangle(center, iconPlaySize, 0), render.CiscoBlue)
	d.FillPolygon([]image.Point{
		{center.X - iconPlaySize/2 + 8, center.Y - iconPlaySize + 15},
		{center.X - iconPlaySize/2 + 8, center.Y - iconPlaySize/3},
		{center.X + iconPlaySize/2, center.Y - iconPlaySize/2},
	}, render.AccentLight)

	barX := frame.Min.X + barOffsetX
	for idx, h := range barHeights {
		x := barX + idx*(barWidth+barSpacing)
		col := render.CiscoTeal
		if idx%2 == 1 {
			col = render.CiscoBlue
		}
		bar := image.Rect(x, center.Y-h/2, x+barWidth+1, center.Y+h/2+1)
		d.FillRoundedRect(bar, barRadius, col)
	}
}

// playTriangle returns a right-pointing triangle whose flat edge sits at
// center.X - size/2 and whose tip extends size+tipExtra right of center.
func playTriangle(center image.Point, size, tipExtra int) []image.Point {
	return []image.Point{
		{center.X - size/2, center.Y - size},
		{center.X - size/2, center.Y + size},
		{center.X + size + tipExtra, center.Y},
	}
}
