// Package narrator turns per-slide scripts into audio clips, measures
// each clip, and joins them into the single narration track.
package narrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"lecturecast/internal/speech"
	"lecturecast/internal/workspace"
)

// Prober measures a media file's duration in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Concatenator joins audio clips in order into one output file.
type Concatenator interface {
	ConcatAudio(ctx context.Context, clipPaths []string, outputPath string) error
}

type Narrator struct {
	provider        speech.Provider
	prober          Prober
	concat          Concatenator
	defaultDuration float64
}

type Result struct {
	ClipPaths    []string
	Durations    []float64
	CombinedPath string
}

func New(provider speech.Provider, prober Prober, concat Concatenator, defaultDuration float64) *Narrator {
	return &Narrator{
		provider:        provider,
		prober:          prober,
		concat:          concat,
		defaultDuration: defaultDuration,
	}
}

// Narrate synthesizes one clip per script, in order, probing each
// clip's duration. A failed probe degrades to the default duration; a
// failed synthesis or concat fails the stage. The clip and duration
// lists always have exactly one entry per script.
func (n *Narrator) Narrate(ctx context.Context, scripts []string, ws *workspace.Workspace) (*Result, error) {
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no narration scripts")
	}

	clipPaths := make([]string, 0, len(scripts))
	durations := make([]float64, 0, len(scripts))
	ext := n.provider.Format()

	for i, script := range scripts {
		clipPath := ws.VoiceClipPath(i, ext)

		audio, err := n.provider.Synthesize(ctx, script)
		if err != nil {
			return nil, fmt.Errorf("synthesize slide %d: %w", i, err)
		}
		if err := os.WriteFile(clipPath, audio, 0644); err != nil {
			return nil, fmt.Errorf("write voiceover clip %d: %w", i, err)
		}

		duration, err := n.prober.Duration(ctx, clipPath)
		if err != nil || duration <= 0 {
			slog.Warn("Duration probe failed, using default", "clip", clipPath, "error", err)
			duration = n.defaultDuration
		}

		clipPaths = append(clipPaths, clipPath)
		durations = append(durations, duration)
	}

	combinedPath := ws.VoicePath(ext)
	if err := n.concat.ConcatAudio(ctx, clipPaths, combinedPath); err != nil {
		return nil, fmt.Errorf("combine narration: %w", err)
	}

	return &Result{
		ClipPaths:    clipPaths,
		Durations:    durations,
		CombinedPath: combinedPath,
	}, nil
}
