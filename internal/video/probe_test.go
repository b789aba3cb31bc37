package video

import (
	"context"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"lecturecast/internal/speech"
)

func TestParseDurationOutput(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    float64
		wantErr bool
	}{
		{
			"typical stderr",
			"Input #0, mp3, from 'clip.mp3':\n  Duration: 00:00:25.08, start: 0.000000, bitrate: 32 kb/s",
			25.08,
			false,
		},
		{
			"hours and minutes",
			"Duration: 01:02:03.50, start: 0.0",
			3723.5,
			false,
		},
		{"no duration line", "some unrelated output", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationOutput(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDurationOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 0.001 {
				t.Errorf("parseDurationOutput() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDurationMissingFile(t *testing.T) {
	f := New(Options{})
	if _, err := f.Duration(context.Background(), filepath.Join(t.TempDir(), "absent.mp3")); err == nil {
		t.Fatal("Duration() expected error for missing file")
	}
}

func TestDurationRealProbe(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}

	provider := speech.NewStubProvider(150)
	audio, err := provider.Synthesize(context.Background(), "one two three four five")
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(path, audio, 0644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	f := New(Options{})
	dur, err := f.Duration(context.Background(), path)
	if err != nil {
		t.Fatalf("Duration() error: %v", err)
	}

	// 5 words at 150 wpm is 2 seconds of silence.
	if math.Abs(dur-2.0) > 0.1 {
		t.Errorf("Duration() = %f, want ~2.0", dur)
	}
}
