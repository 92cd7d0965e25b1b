// Package art defines the plugin's static artwork: the square add-on icon
// and the widescreen fanart. Each artwork is a fixed sequence of drawing
// calls over a render.Drawer followed by a single encode.
package art

import (
	"github.com/ciscolive-kodi/artgen/internal/render"
)

// Fonts holds the faces used by text-bearing artwork.
type Fonts struct {
	Title    *render.Face
	Subtitle *render.Face
}

// Title and subtitle pixel sizes on the fanart.
const (
	TitleSizePx    = 72
	SubtitleSizePx = 36
)

// LoadFonts resolves the fanart faces from src.
func LoadFonts(src render.FontSource) Fonts {
	return Fonts{
		Title:    src.Face(render.Bold, TitleSizePx),
		Subtitle: src.Face(render.Regular, SubtitleSizePx),
	}
}

// Artwork renders and encodes one asset file.
type Artwork interface {
	// Name is the output file name, e.g. "icon.png".
	Name() string
	Render() (render.Encoded, error)
}
