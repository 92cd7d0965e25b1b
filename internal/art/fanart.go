package art

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ciscolive-kodi/artgen/internal/render"
	"github.com/ciscolive-kodi/artgen/internal/render/layout"
)

const (
	TitleText    = "CISCO LIVE"
	SubtitleText = "ON-DEMAND"
)

// Fanart layout.
const (
	focusLift         = 50
	focusRadius       = 150
	focusAlpha        = 120
	fanartPlaySize    = 100
	fanartPlayTipLift = 20
	edgeWidth         = 2
	edgeAlpha         = 80

	textBandHeight = 250
	subtitleGap    = 85
	shadowOffset   = 3
	shadowAlpha    = 180

	qrBadgeSize   = 160
	qrBadgeMargin = 40
)

// node is a translucent circle in the background network motif.
type node struct {
	center  image.Point
	radius  int
	color   color.RGBA
	opacity float64
}

var nodes = []node{
	{image.Pt(300, 200), 180, render.CiscoBlue, 0.15},
	{image.Pt(1600, 300), 220, render.CiscoTeal, 0.12},
	{image.Pt(500, 800), 160, render.AccentLight, 0.10},
	{image.Pt(1400, 850), 200, render.CiscoBlue, 0.13},
}

// edges index into nodes.
var edges = [][2]int{{0, 1}, {1, 3}, {0, 2}}

// Fanart is the 1920x1080 background art.
type Fanart struct {
	Fonts Fonts

	// QRPayload, when set, adds a QR code badge in the bottom-right corner.
	QRPayload string
}

func (Fanart) Name() string { return "fanart.jpg" }

func (f Fanart) Render() (render.Encoded, error) {
	canvas := render.NewCanvas(render.FanartWidth, render.FanartHeight, render.DarkerBackground)
	if err := f.Draw(canvas); err != nil {
		return render.Encoded{}, err
	}
	data, err := render.EncodeJPEG(canvas.Flatten(render.DarkerBackground), render.FanartQuality)
	if err != nil {
		return render.Encoded{}, err
	}
	return render.Encoded{Name: f.Name(), Format: render.JPEG, Width: render.FanartWidth, Height: render.FanartHeight, Data: data}, nil
}

// Draw paints the fanart onto d. It only fails when the QR badge payload
// cannot be encoded.
func (f Fanart) Draw(d render.Drawer) error {
	width, height := d.Size()
	bounds := image.Rect(0, 0, width, height)

	d.VerticalGradient(render.DarkBackground, render.DarkerBackground)

	d.Layer(func(l render.Drawer) {
		for _, n := range nodes {
			l.FillCircle(n.center, n.radius, render.WithAlpha(n.color, render.Opacity(n.opacity)))
		}
	})
	d.Layer(func(l render.Drawer) {
		for _, e := range edges {
			l.DrawLine(nodes[e[0]].center, nodes[e[1]].center, edgeWidth, render.WithAlpha(render.CiscoTeal, edgeAlpha))
		}
	})

	focus := layout.Center(bounds)
	focus.Y -= focusLift
	d.Layer(func(l render.Drawer) {
		l.FillCircle(focus, focusRadius, render.WithAlpha(render.DarkBackground, focusAlpha))
	})
	d.FillPolygon(playTriangle(focus, fanartPlaySize, fanartPlayTipLift), render.CiscoTeal)

	f.drawTitle(d, bounds)

	if f.QRPayload != "" {
		qr, err := render.GenerateQRCodeImage(f.QRPayload, qrBadgeSize)
		if err != nil {
			return fmt.Errorf("qr badge: %w", err)
		}
		badge := layout.AnchorBottomRight(layout.Inset(bounds, qrBadgeMargin), qrBadgeSize, qrBadgeSize)
		d.DrawImageInRect(qr, badge)
	}
	return nil
}

func (f Fanart) drawTitle(d render.Drawer, bounds image.Rectangle) {
	_, band := layout.SplitHorizontal(bounds, bounds.Dy()-textBandHeight)
	shadow := color.NRGBA{A: shadowAlpha}

	title := render.TextStyle{Color: render.TextWhite, Face: f.Fonts.Title}
	if title.Face != nil {
		x := layout.CenterX(bounds, d.MeasureText(TitleText, title).Width)
		render.DrawTextWithShadow(d, TitleText, x, band.Min.Y, title, shadow, shadowOffset, shadowOffset)
	}

	subtitle := render.TextStyle{Color: render.CiscoTeal, Face: f.Fonts.Subtitle}
	if subtitle.Face != nil {
		x := layout.CenterX(bounds, d.MeasureText(SubtitleText, subtitle).Width)
		render.DrawTextWithShadow(d, SubtitleText, x, band.Min.Y+subtitleGap, subtitle, shadow, shadowOffset, shadowOffset)
	}
}
