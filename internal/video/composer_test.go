package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComposeMissingAudio(t *testing.T) {
	tmp := t.TempDir()
	f := New(Options{})

	err := f.Compose(context.Background(), ComposeRequest{
		ImagePaths: []string{filepath.Join(tmp, "slide_1.png")},
		AudioPath:  filepath.Join(tmp, "absent.mp3"),
		OutputPath: filepath.Join(tmp, "out.mp4"),
	})
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("Compose() error = %v, want ErrMissingAsset", err)
	}
}

func TestComposeNoImages(t *testing.T) {
	tmp := t.TempDir()
	audioPath := filepath.Join(tmp, "voice.mp3")
	if err := os.WriteFile(audioPath, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	f := New(Options{})
	err := f.Compose(context.Background(), ComposeRequest{
		ImagePaths: []string{filepath.Join(tmp, "nope.png")},
		AudioPath:  audioPath,
		OutputPath: filepath.Join(tmp, "out.mp4"),
	})
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("Compose() error = %v, want ErrMissingAsset", err)
	}
}

func TestExistingImagesFiltersAndAlignsDurations(t *testing.T) {
	tmp := t.TempDir()
	present := filepath.Join(tmp, "slide_1.png")
	if err := os.WriteFile(present, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(tmp, "slide_2.png")

	images, durations := existingImages([]string{present, missing}, []float64{3.5, 7.0})

	if len(images) != 1 || images[0] != present {
		t.Fatalf("images = %v, want [%s]", images, present)
	}
	if len(durations) != 1 || durations[0] != 3.5 {
		t.Fatalf("durations = %v, want [3.5]", durations)
	}
}

func TestExistingImagesDefaultDurations(t *testing.T) {
	tmp := t.TempDir()
	present := filepath.Join(tmp, "slide_1.png")
	if err := os.WriteFile(present, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	_, durations := existingImages([]string{present}, nil)
	if len(durations) != 1 || durations[0] != DefaultSlideDuration {
		t.Fatalf("durations = %v, want [%g]", durations, DefaultSlideDuration)
	}
}

func TestWriteConcatScript(t *testing.T) {
	tmp := t.TempDir()
	scriptPath := filepath.Join(tmp, "slides.txt")
	img := filepath.Join(tmp, "slide_1.png")

	if err := writeConcatScript(scriptPath, []string{img}, []float64{12.5}); err != nil {
		t.Fatalf("writeConcatScript() error: %v", err)
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.Contains(content, "file '"+img+"'") {
		t.Errorf("script missing file line: %q", content)
	}
	if !strings.Contains(content, "duration 12.5") {
		t.Errorf("script missing duration line: %q", content)
	}
}
