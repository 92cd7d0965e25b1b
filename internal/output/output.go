// Package output persists a set of generated assets so that either every
// file is replaced or none is.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ciscolive-kodi/artgen/internal/render"
)

const (
	tempSuffix   = ".tmp"
	backupSuffix = ".bak"
)

// Writer writes asset sets into Dir.
type Writer struct {
	Dir string

	// rename is os.Rename; tests replace it to inject failures.
	rename func(oldpath, newpath string) error
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, rename: os.Rename}
}

type staged struct {
	final  string
	temp   string
	backup string // empty when there was no previous file
}

// WriteAll writes every artifact and returns the final paths in order.
// On failure the directory is left as it was before the call.
func (w *Writer) WriteAll(artifacts ...render.Encoded) ([]string, error) {
	if w.rename == nil {
		w.rename = os.Rename
	}
	if len(artifacts) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	files := make([]staged, 0, len(artifacts))
	cleanupTemps := func() {
		for _, f := range files {
			_ = os.Remove(f.temp)
		}
	}
	for _, a := range artifacts {
		if a.Name == "" || filepath.Base(a.Name) != a.Name {
			cleanupTemps()
			return nil, fmt.Errorf("invalid artifact name %q", a.Name)
		}
		final := filepath.Join(w.Dir, a.Name)
		temp := final + tempSuffix
		if err := os.WriteFile(temp, a.Data, 0o644); err != nil {
			_ = os.Remove(temp)
			cleanupTemps()
			return nil, fmt.Errorf("write %s: %w", a.Name, err)
		}
		files = append(files, staged{final: final, temp: temp})
	}

	// Move existing files aside so a failed swap can be rolled back.
	for i := range files {
		if _, err := os.Stat(files[i].final); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			w.restore(files[:i])
			cleanupTemps()
			return nil, fmt.Errorf("stat %s: %w", files[i].final, err)
		}
		backup := files[i].final + backupSuffix
		if err := w.rename(files[i].final, backup); err != nil {
			w.restore(files[:i])
			cleanupTemps()
			return nil, fmt.Errorf("back up %s: %w", files[i].final, err)
		}
		files[i].backup = backup
	}

	for i, f := range files {
		if err := w.rename(f.temp, f.final); err != nil {
			for _, done := range files[:i] {
				_ = os.Remove(done.final)
			}
			w.restore(files)
			cleanupTemps()
			return nil, fmt.Errorf("install %s: %w", filepath.Base(f.final), err)
		}
	}

	paths := make([]string, len(files))
	for i, f := range files {
		if f.backup != "" {
			_ = os.Remove(f.backup)
		}
		paths[i] = f.final
	}
	return paths, nil
}

func (w *Writer) restore(files []staged) {
	for _, f := range files {
		if f.backup != "" {
			_ = os.Rename(f.backup, f.final)
		}
	}
}
