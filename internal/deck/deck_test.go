package deck

import (
	"path/filepath"
	"strings"
	"testing"

	"lecturecast/internal/lecture"
)

func TestBuild(t *testing.T) {
	slides := []lecture.Slide{
		{Title: "First", Content: []string{"one", "two"}},
		{Title: "Second", Content: []string{"three"}},
	}

	d := Build(slides, "Corporate")

	if d.Theme.Name != "Corporate" {
		t.Errorf("Theme.Name = %q, want Corporate", d.Theme.Name)
	}
	if len(d.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(d.Slides))
	}
	if d.Slides[0].Title != "First" {
		t.Errorf("Slides[0].Title = %q", d.Slides[0].Title)
	}
	for _, bullet := range d.Slides[0].Bullets {
		if !strings.HasPrefix(bullet, "• ") {
			t.Errorf("bullet %q missing marker prefix", bullet)
		}
	}
}

func TestBuildUnknownThemeFallsBack(t *testing.T) {
	d := Build(nil, "NoSuchTheme")
	if d.Theme.Name != "Minimalist" {
		t.Errorf("Theme.Name = %q, want Minimalist", d.Theme.Name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	slides := []lecture.Slide{
		{Title: "Topic", Content: []string{"point"}},
	}
	d := Build(slides, "Chalkboard")

	path := filepath.Join(t.TempDir(), "sub", "slides.yaml")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Theme.Name != "Chalkboard" {
		t.Errorf("Theme.Name = %q, want Chalkboard", loaded.Theme.Name)
	}
	if len(loaded.Slides) != 1 || loaded.Slides[0].Title != "Topic" {
		t.Errorf("unexpected slides: %+v", loaded.Slides)
	}
	if loaded.Slides[0].Bullets[0] != "• point" {
		t.Errorf("Bullets[0] = %q, want \"• point\"", loaded.Slides[0].Bullets[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
