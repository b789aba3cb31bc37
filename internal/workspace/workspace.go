// Package workspace gives every generation request its own directory
// under the output base, so concurrent requests never overwrite each
// other's fixed-named artifacts.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID      string
	Dir     string
	baseDir string
}

func New(baseDir string) (*Workspace, error) {
	id := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	dir := filepath.Join(baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	return &Workspace{ID: id, Dir: dir, baseDir: baseDir}, nil
}

func (w *Workspace) SlidesPath() string { return filepath.Join(w.Dir, "slides.yaml") }
func (w *Workspace) VideoPath() string  { return filepath.Join(w.Dir, "lecture.mp4") }

// VoicePath and VoiceClipPath take the audio container extension so the
// file name matches what the speech provider actually emitted.
func (w *Workspace) VoicePath(ext string) string {
	return filepath.Join(w.Dir, "voiceover."+ext)
}

func (w *Workspace) VoiceClipPath(i int, ext string) string {
	return filepath.Join(w.Dir, fmt.Sprintf("voiceover_%d.%s", i, ext))
}

// SlideImagePath returns the ordinal-named bitmap path; n is 1-based to
// match the slide numbering in file names.
func (w *Workspace) SlideImagePath(n int) string {
	return filepath.Join(w.Dir, fmt.Sprintf("slide_%d.png", n))
}

// Rel converts an absolute artifact path to its base-relative form, the
// form served by the download endpoint.
func (w *Workspace) Rel(path string) string {
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// Clear wipes and recreates the whole output base. The base directory
// is the lifetime scope for artifacts; nothing is collected per file.
func Clear(baseDir string) error {
	if baseDir == "" || baseDir == "/" || strings.TrimSpace(baseDir) == "." {
		return fmt.Errorf("refusing to clear %q", baseDir)
	}
	if err := os.RemoveAll(baseDir); err != nil {
		return fmt.Errorf("clear output directory: %w", err)
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("recreate output directory: %w", err)
	}
	return nil
}
