package art

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/ciscolive-kodi/artgen/internal/render"
)

const (
	maxIconBytes   = 10 * 1024
	maxFanartBytes = 150 * 1024
)

func near(c color.Color, want color.RGBA, tolerance int) bool {
	r, g, b, _ := c.RGBA()
	diff := func(got uint32, want uint8) int {
		d := int(got>>8) - int(want)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(r, want.R) <= tolerance && diff(g, want.G) <= tolerance && diff(b, want.B) <= tolerance
}

func countNear(img image.Image, rect image.Rectangle, want color.RGBA, tolerance int) int {
	n := 0
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if near(img.At(x, y), want, tolerance) {
				n++
			}
		}
	}
	return n
}

func renderIcon(t *testing.T) render.Encoded {
	t.Helper()
	e, err := Icon{}.Render()
	if err != nil {
		t.Fatalf("render icon: %v", err)
	}
	return e
}

func renderFanart(t *testing.T, f Fanart) render.Encoded {
	t.Helper()
	e, err := f.Render()
	if err != nil {
		t.Fatalf("render fanart: %v", err)
	}
	return e
}

func TestIconDimensionsAndFormat(t *testing.T) {
	e := renderIcon(t)
	if e.Name != "icon.png" || e.Format != render.PNG {
		t.Errorf("artifact = %s (%s)", e.Name, e.Format)
	}
	img, err := png.Decode(bytes.NewReader(e.Data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("icon bounds = %v, want 256x256", b)
	}
	// IHDR color type 2 is truecolor without alpha.
	if e.Data[25] != 2 {
		t.Errorf("png color type = %d, want 2", e.Data[25])
	}
	if len(e.Data) >= maxIconBytes {
		t.Errorf("icon is %d bytes, want < %d", len(e.Data), maxIconBytes)
	}
}

func TestIconCenterColumnHasPlayColor(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(renderIcon(t).Data))
	if err != nil {
		t.Fatal(err)
	}
	column := image.Rect(128, 0, 129, 256)
	if countNear(img, column, render.CiscoBlue, 8) == 0 {
		t.Error("no play-button pixel in the center column")
	}
}

func TestIconLayout(t *testing.T) {
	c := render.NewCanvas(render.IconSize, render.IconSize, render.DarkBackground)
	Icon{}.Draw(c)
	img := c.Image()

	checks := []struct {
		name string
		p    image.Point
		want color.RGBA
	}{
		{"outer margin", image.Pt(5, 5), render.DarkBackground},
		{"frame border", image.Pt(128, 21), render.CiscoTeal},
		{"frame border right", image.Pt(236, 128), render.CiscoTeal},
		{"frame border bottom", image.Pt(128, 236), render.CiscoTeal},
		{"past frame", image.Pt(238, 128), render.DarkBackground},
		{"frame fill", image.Pt(200, 60), render.DarkerBackground},
		{"play body", image.Pt(128, 150), render.CiscoBlue},
		{"highlight", image.Pt(110, 90), render.AccentLight},
		{"first bar", image.Pt(53, 128), render.CiscoTeal},
		{"second bar", image.Pt(69, 128), render.CiscoBlue},
		{"first bar right column", image.Pt(56, 128), render.CiscoTeal},
		{"gap after first bar", image.Pt(60, 128), render.DarkerBackground},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.p.X, c.p.Y); got != c.want {
			t.Errorf("%s at %v = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestIconIsDeterministic(t *testing.T) {
	a, b := renderIcon(t), renderIcon(t)
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("icon bytes differ between runs")
	}
}

func TestFanartDimensionsAndFormat(t *testing.T) {
	e := renderFanart(t, Fanart{Fonts: LoadFonts(render.FontSource{})})
	if e.Name != "fanart.jpg" || e.Format != render.JPEG {
		t.Errorf("artifact = %s (%s)", e.Name, e.Format)
	}
	img, err := jpeg.Decode(bytes.NewReader(e.Data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1920 || b.Dy() != 1080 {
		t.Errorf("fanart bounds = %v, want 1920x1080", b)
	}
	if _, ok := img.(*image.YCbCr); !ok {
		t.Errorf("decoded %T, want *image.YCbCr (no alpha)", img)
	}
	if len(e.Data) >= maxFanartBytes {
		t.Errorf("fanart is %d bytes, want < %d", len(e.Data), maxFanartBytes)
	}
}

func TestFanartIsDeterministic(t *testing.T) {
	fonts := LoadFonts(render.FontSource{})
	a := renderFanart(t, Fanart{Fonts: fonts})
	b := renderFanart(t, Fanart{Fonts: LoadFonts(render.FontSource{})})
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("fanart bytes differ between runs")
	}
}

func TestFanartBottomThirdHasTitleText(t *testing.T) {
	e := renderFanart(t, Fanart{Fonts: LoadFonts(render.FontSource{})})
	img, err := jpeg.Decode(bytes.NewReader(e.Data))
	if err != nil {
		t.Fatal(err)
	}
	band := image.Rect(0, 720, 1920, 1080)
	if countNear(img, band, render.TextWhite, 25) == 0 {
		t.Error("no white title pixels in the bottom third")
	}
	top := image.Rect(0, 0, 1920, 720)
	if n := countNear(img, top, render.TextWhite, 25); n != 0 {
		t.Errorf("%d white pixels above the text band", n)
	}
}

func TestFanartLayout(t *testing.T) {
	c := render.NewCanvas(render.FanartWidth, render.FanartHeight, render.DarkerBackground)
	if err := (Fanart{Fonts: LoadFonts(render.FontSource{})}).Draw(c); err != nil {
		t.Fatal(err)
	}
	img := c.Image()

	if got := img.RGBAAt(960, 490); got != render.CiscoTeal {
		t.Errorf("play glyph = %v, want teal", got)
	}
	// Inside the dimmed focus disc but outside the triangle.
	if got := img.RGBAAt(960, 360); got == render.CiscoTeal {
		t.Error("focus disc area painted with glyph color")
	}
	if n := countNear(img, image.Rect(0, 830, 1920, 915), render.TextWhite, 0); n == 0 {
		t.Error("title not drawn in its band")
	}
	if n := countNear(img, image.Rect(0, 915, 1920, 1000), render.CiscoTeal, 0); n == 0 {
		t.Error("subtitle not drawn in its band")
	}
	// Circle node tint: blue channel raised above the plain gradient.
	bg := img.RGBAAt(1000, 200)
	node := img.RGBAAt(300, 200)
	if node.B <= bg.B {
		t.Errorf("node pixel %v not tinted relative to %v", node, bg)
	}
}

func TestFanartFallbackFontStillRendersText(t *testing.T) {
	fonts := LoadFonts(render.FontSource{Bold: []byte("bad"), Regular: []byte("bad")})
	if !fonts.Title.Fallback || !fonts.Subtitle.Fallback {
		t.Fatal("expected fallback faces")
	}
	c := render.NewCanvas(render.FanartWidth, render.FanartHeight, render.DarkerBackground)
	if err := (Fanart{Fonts: fonts}).Draw(c); err != nil {
		t.Fatal(err)
	}
	if countNear(c.Image(), image.Rect(0, 720, 1920, 1080), render.TextWhite, 0) == 0 {
		t.Error("fallback title not drawn")
	}
}

func TestFanartQRBadge(t *testing.T) {
	fonts := LoadFonts(render.FontSource{})
	badge := image.Rect(1720, 880, 1880, 1040)

	plain := render.NewCanvas(render.FanartWidth, render.FanartHeight, render.DarkerBackground)
	if err := (Fanart{Fonts: fonts}).Draw(plain); err != nil {
		t.Fatal(err)
	}
	if n := countNear(plain.Image(), badge, render.TextWhite, 0); n != 0 {
		t.Fatalf("badge area has %d white pixels without a payload", n)
	}

	withQR := render.NewCanvas(render.FanartWidth, render.FanartHeight, render.DarkerBackground)
	if err := (Fanart{Fonts: fonts, QRPayload: "https://www.ciscolive.com/on-demand"}).Draw(withQR); err != nil {
		t.Fatal(err)
	}
	if n := countNear(withQR.Image(), badge, render.TextWhite, 0); n == 0 {
		t.Error("QR badge not drawn")
	}
	if n := countNear(withQR.Image(), badge, color.RGBA{A: 0xFF}, 0); n == 0 {
		t.Error("QR badge has no dark modules")
	}
}
