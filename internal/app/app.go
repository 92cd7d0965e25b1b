package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ciscolive-kodi/artgen/internal/art"
	"github.com/ciscolive-kodi/artgen/internal/output"
	"github.com/ciscolive-kodi/artgen/internal/render"
)

type App struct {
	OutputDir   string
	FontPath    string
	QRPayload   string
	Preview     bool
	Framebuffer string
	Logger      Logger

	// preview is render.Preview; tests replace it.
	preview func(device string, img []byte) error
}

func New(outputDir string) *App {
	return &App{OutputDir: outputDir, Logger: NoopLogger{}}
}

// Run renders the icon and the fanart, then writes both. Nothing is written
// unless both artworks encode successfully.
func (app *App) Run(ctx context.Context) ([]string, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	// FontSource logs every fallback step itself.
	fonts := art.LoadFonts(render.FontSource{Path: app.FontPath, Logger: app.Logger})

	artworks := []art.Artwork{
		art.Icon{},
		art.Fanart{Fonts: fonts, QRPayload: app.QRPayload},
	}
	encoded := make([]render.Encoded, 0, len(artworks))
	for _, a := range artworks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		e, err := a.Render()
		if err != nil {
			app.Logger.Errorf("render", "%s: %v", a.Name(), err)
			return nil, fmt.Errorf("render %s: %w", a.Name(), err)
		}
		app.Logger.Infof("render", "rendered %s in %s", a.Name(), time.Since(start).Round(time.Millisecond))
		encoded = append(encoded, e)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := output.NewWriter(app.OutputDir).WriteAll(encoded...)
	if err != nil {
		app.Logger.Errorf("output", "write failed, no assets changed: %v", err)
		return nil, err
	}
	for _, e := range encoded {
		app.Logger.Infof("output", "created %s (%dx%d, %d bytes)", e.Name, e.Width, e.Height, len(e.Data))
	}

	if app.Preview {
		app.showPreview(encoded)
	}
	return paths, nil
}

func (app *App) showPreview(encoded []render.Encoded) {
	for _, e := range encoded {
		if e.Format != render.JPEG {
			continue
		}
		show := app.preview
		if show == nil {
			show = previewEncoded
		}
		if err := show(app.Framebuffer, e.Data); err != nil {
			app.Logger.Errorf("preview", "%v", err)
			return
		}
		app.Logger.Infof("preview", "showing %s", e.Name)
	}
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// MultiLogger fans every entry out to all loggers.
type MultiLogger []Logger

func (m MultiLogger) Infof(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Infof(component, format, args...)
	}
}

func (m MultiLogger) Errorf(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Errorf(component, format, args...)
	}
}
