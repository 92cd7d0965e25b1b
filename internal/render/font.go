package render

import (
	"fmt"
	"math"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects between the title and body font.
type Weight int

const (
	Regular Weight = iota
	Bold
)

func (w Weight) String() string {
	if w == Bold {
		return "bold"
	}
	return "regular"
}

// Face is a font face plus an integer magnification used when the face is
// the bitmap fallback.
type Face struct {
	font.Face
	Name     string
	Scale    int
	Fallback bool
}

// FontSource resolves faces in order: Path, the embedded Go fonts, and
// finally basicfont.Face7x13 scaled to roughly the requested size.
type FontSource struct {
	// Path is an optional TrueType/OpenType file or collection. The first
	// face of a collection is used for both weights.
	Path string

	// Bold and Regular override the embedded Go fonts. Nil means default.
	Bold    []byte
	Regular []byte

	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// Face returns a usable face for weight at sizePx pixels. It never fails:
// every load error is logged and the next source is tried.
func (s FontSource) Face(weight Weight, sizePx float64) *Face {
	if s.Path != "" {
		face, err := loadFontFile(s.Path, sizePx)
		if err == nil {
			s.infof("loaded %s face from %s at %.0fpx", weight, s.Path, sizePx)
			return face
		}
		s.errorf("font file %s: %v", s.Path, err)
	}

	face, err := loadEmbedded(s.embedded(weight), weight, sizePx)
	if err == nil {
		return face
	}
	s.errorf("embedded %s font: %v, using basicfont", weight, err)
	return basicFace(sizePx)
}

func (s FontSource) embedded(weight Weight) []byte {
	if weight == Bold {
		if s.Bold != nil {
			return s.Bold
		}
		return gobold.TTF
	}
	if s.Regular != nil {
		return s.Regular
	}
	return goregular.TTF
}

func (s FontSource) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("font", format, args...)
	}
}

func (s FontSource) errorf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Errorf("font", format, args...)
	}
}

func loadFontFile(path string, sizePx float64) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrResourceUnavailable, err)
	}
	if coll.NumFonts() == 0 {
		return nil, fmt.Errorf("%w: empty font collection", ErrResourceUnavailable)
	}
	fnt, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	// DPI 72 makes Size a pixel size.
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("%w: face: %v", ErrResourceUnavailable, err)
	}
	return &Face{Face: face, Name: path, Scale: 1}, nil
}

func loadEmbedded(data []byte, weight Weight, sizePx float64) (*Face, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceUnavailable, err)
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
	return &Face{Face: face, Name: "go-" + weight.String(), Scale: 1}, nil
}

func basicFace(sizePx float64) *Face {
	scale := int(math.Round(sizePx / float64(basicfont.Face7x13.Height)))
	if scale < 1 {
		scale = 1
	}
	return &Face{Face: basicfont.Face7x13, Name: "basicfont-7x13", Scale: scale, Fallback: true}
}
