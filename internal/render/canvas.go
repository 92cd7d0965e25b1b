package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// arcSegments is the number of line segments used per quarter circle.
const arcSegments = 24

// Drawer is what an artwork draws with. Coordinates are canvas pixels with
// the origin at the top-left corner.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	Fill(c color.Color)
	FillRect(rect image.Rectangle, c color.Color)
	VerticalGradient(top, bottom color.RGBA)

	FillPolygon(points []image.Point, c color.Color)
	FillCircle(center image.Point, radius int, c color.Color)
	FillRoundedRect(rect image.Rectangle, radius int, c color.Color)
	StrokeRoundedRect(rect image.Rectangle, radius, width int, c color.Color)
	DrawLine(from, to image.Point, width int, c color.Color)

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics
	DrawImageInRect(img image.Image, rect image.Rectangle)

	// Layer draws fn onto a transparent layer of the same size and
	// composites the result over the canvas.
	Layer(fn func(Drawer))
}

// Canvas is an in-memory RGBA surface. It is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas returns a width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	c := newTransparentCanvas(width, height)
	c.Fill(bg)
	return c
}

func newTransparentCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the backing image. Callers must not keep drawing through
// the Canvas while holding it elsewhere.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, rect.Intersect(c.img.Bounds()), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// VerticalGradient paints every row with a color interpolated from top at
// y=0 towards bottom at the last row.
func (c *Canvas) VerticalGradient(top, bottom color.RGBA) {
	b := c.img.Bounds()
	height := b.Dy()
	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		row := color.RGBA{
			R: lerpChannel(bottom.R, top.R, 1-ratio),
			G: lerpChannel(bottom.G, top.G, 1-ratio),
			B: lerpChannel(bottom.B, top.B, 1-ratio),
			A: 0xFF,
		}
		draw.Draw(c.img, image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1), &image.Uniform{C: row}, image.Point{}, draw.Src)
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := float64(from) + (float64(to)-float64(from))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (c *Canvas) FillPolygon(points []image.Point, col color.Color) {
	c.fillPaths(col, toVec(points))
}

func (c *Canvas) FillCircle(center image.Point, radius int, col color.Color) {
	if radius <= 0 {
		return
	}
	c.fillPaths(col, circlePath(float32(center.X), float32(center.Y), float32(radius)))
}

func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius int, col color.Color) {
	if rect.Empty() {
		return
	}
	c.fillPaths(col, roundedRectPath(rect, float32(radius)))
}

// StrokeRoundedRect draws an outline of the given width inside rect.
func (c *Canvas) StrokeRoundedRect(rect image.Rectangle, radius, width int, col color.Color) {
	if rect.Empty() || width <= 0 {
		return
	}
	outer := roundedRectPath(rect, float32(radius))
	inner := rect.Inset(width)
	if inner.Empty() {
		c.fillPaths(col, outer)
		return
	}
	c.fillPaths(col, outer, reversed(roundedRectPath(inner, float32(radius-width))))
}

// DrawLine draws a straight segment of the given width centered on from-to.
func (c *Canvas) DrawLine(from, to image.Point, width int, col color.Color) {
	if width <= 0 {
		return
	}
	x0, y0 := float32(from.X), float32(from.Y)
	x1, y1 := float32(to.X), float32(to.Y)
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	half := float32(width) / 2
	nx, ny := -dy/length*half, dx/length*half
	c.fillPaths(col, []vec{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	})
}

// DrawImageInRect scales img into rect with nearest-neighbor sampling.
func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}

func (c *Canvas) Layer(fn func(Drawer)) {
	w, h := c.Size()
	layer := newTransparentCanvas(w, h)
	fn(layer)
	c.composite(layer)
}

func (c *Canvas) composite(layer *Canvas) {
	draw.Draw(c.img, c.img.Bounds(), layer.img, layer.img.Bounds().Min, draw.Over)
}

// Flatten composites the canvas over an opaque bg and returns a fully
// opaque copy.
func (c *Canvas) Flatten(bg color.RGBA) *image.RGBA {
	bg.A = 0xFF
	out := image.NewRGBA(c.img.Bounds())
	draw.Draw(out, out.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), c.img, c.img.Bounds().Min, draw.Over)
	return out
}

type vec struct{ x, y float32 }

func toVec(points []image.Point) []vec {
	out := make([]vec, len(points))
	for i, p := range points {
		out[i] = vec{float32(p.X), float32(p.Y)}
	}
	return out
}

func reversed(path []vec) []vec {
	out := make([]vec, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}

// fillPaths rasterizes closed polygons with the non-zero winding rule and
// blends col over the canvas.
func (c *Canvas) fillPaths(col color.Color, paths ...[]vec) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	drawn := false
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		c.z.MoveTo(path[0].x, path[0].y)
		for _, p := range path[1:] {
			c.z.LineTo(p.x, p.y)
		}
		c.z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	c.z.Draw(c.img, b, &image.Uniform{C: col}, image.Point{})
}

func circlePath(cx, cy, r float32) []vec {
	path := make([]vec, 0, 4*arcSegments)
	for i := 0; i < 4*arcSegments; i++ {
		a := 2 * math.Pi * float64(i) / float64(4*arcSegments)
		path = append(path, vec{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))})
	}
	return path
}

// roundedRectPath walks the outline clockwise (screen coordinates).
func roundedRectPath(rect image.Rectangle, r float32) []vec {
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	if limit := min(x1-x0, y1-y0) / 2; r > limit {
		r = limit
	}
	if r <= 0 {
		return []vec{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}
	path := make([]vec, 0, 4*(arcSegments+1))
	path = appendArc(path, x1-r, y0+r, r, -math.Pi/2)
	path = appendArc(path, x1-r, y1-r, r, 0)
	path = appendArc(path, x0+r, y1-r, r, math.Pi/2)
	path = appendArc(path, x0+r, y0+r, r, math.Pi)
	return path
}

// appendArc appends a quarter arc starting at angle start, sweeping clockwise.
func appendArc(path []vec, cx, cy, r float32, start float64) []vec {
	for i := 0; i <= arcSegments; i++ {
		a := start + (math.Pi/2)*float64(i)/arcSegments
		path = append(path, vec{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))})
	}
	return path
}
