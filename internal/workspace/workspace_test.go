package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCreatesUniqueDirs(t *testing.T) {
	base := t.TempDir()

	a, err := New(base)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	b, err := New(base)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if a.Dir == b.Dir {
		t.Errorf("workspaces share directory %q", a.Dir)
	}
	for _, ws := range []*Workspace{a, b} {
		info, err := os.Stat(ws.Dir)
		if err != nil || !info.IsDir() {
			t.Errorf("workspace dir %q not created", ws.Dir)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	ws, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		got  string
		want string
	}{
		{ws.SlidesPath(), "slides.yaml"},
		{ws.VoicePath("mp3"), "voiceover.mp3"},
		{ws.VoicePath("wav"), "voiceover.wav"},
		{ws.VideoPath(), "lecture.mp4"},
		{ws.VoiceClipPath(0, "mp3"), "voiceover_0.mp3"},
		{ws.VoiceClipPath(2, "wav"), "voiceover_2.wav"},
		{ws.SlideImagePath(1), "slide_1.png"},
	}

	for _, tt := range tests {
		if filepath.Base(tt.got) != tt.want {
			t.Errorf("base = %q, want %q", filepath.Base(tt.got), tt.want)
		}
		if filepath.Dir(tt.got) != ws.Dir {
			t.Errorf("path %q not inside workspace dir", tt.got)
		}
	}
}

func TestRel(t *testing.T) {
	ws, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	rel := ws.Rel(ws.VideoPath())
	if strings.HasPrefix(rel, "/") {
		t.Errorf("Rel() = %q, want base-relative path", rel)
	}
	if rel != ws.ID+"/lecture.mp4" {
		t.Errorf("Rel() = %q, want %q", rel, ws.ID+"/lecture.mp4")
	}
}

func TestClear(t *testing.T) {
	base := t.TempDir()
	ws, err := New(base)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := os.WriteFile(ws.VideoPath(), []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Clear(base); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("base dir missing after Clear(): %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("base dir not empty after Clear(): %d entries", len(entries))
	}
}

func TestClearRefusesUnsafePaths(t *testing.T) {
	for _, path := range []string{"", "/", "."} {
		if err := Clear(path); err == nil {
			t.Errorf("Clear(%q) expected error", path)
		}
	}
}
