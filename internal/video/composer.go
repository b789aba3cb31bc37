package video

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingAsset means the audio track or every slide image is
	// absent before encoding starts.
	ErrMissingAsset = errors.New("missing media asset")

	// ErrEncoderTimeout means the encoder ran past its time bound and
	// was killed.
	ErrEncoderTimeout = errors.New("encoder timed out")
)

type ComposeRequest struct {
	ImagePaths []string
	AudioPath  string
	// Durations holds display seconds per image, index-aligned with
	// ImagePaths. Nil defaults every slide to DefaultSlideDuration.
	Durations  []float64
	OutputPath string
}

// Compose writes a concat-demuxer script pairing each image with its
// duration and invokes ffmpeg once to mux images and audio into an
// H.264/AAC file. The script is deleted afterwards.
func (f *FFmpeg) Compose(ctx context.Context, req ComposeRequest) error {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return fmt.Errorf("%w: audio file %s", ErrMissingAsset, req.AudioPath)
	}

	images, durations := existingImages(req.ImagePaths, req.Durations)
	if len(images) == 0 {
		return fmt.Errorf("%w: no slide images", ErrMissingAsset)
	}

	scriptPath := filepath.Join(filepath.Dir(req.OutputPath), "slides.txt")
	if err := writeConcatScript(scriptPath, images, durations); err != nil {
		return err
	}
	defer func() { _ = os.Remove(scriptPath) }()

	ctx, cancel := context.WithTimeout(ctx, f.encodeTimeout)
	defer cancel()

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", scriptPath,
		"-i", req.AudioPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-y",
		req.OutputPath,
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Error("Video encoding timed out", "timeout", f.encodeTimeout, "output", string(output))
			return ErrEncoderTimeout
		}
		slog.Error("Video encoding failed", "error", err, "output", string(output))
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}

	return nil
}

func existingImages(imagePaths []string, durations []float64) ([]string, []float64) {
	images := make([]string, 0, len(imagePaths))
	kept := make([]float64, 0, len(imagePaths))

	for i, img := range imagePaths {
		if _, err := os.Stat(img); err != nil {
			slog.Warn("Skipping missing slide image", "path", img)
			continue
		}
		images = append(images, img)
		if durations != nil && i < len(durations) {
			kept = append(kept, durations[i])
		} else {
			kept = append(kept, DefaultSlideDuration)
		}
	}

	return images, kept
}

func writeConcatScript(scriptPath string, images []string, durations []float64) error {
	var content strings.Builder
	for i, img := range images {
		absPath, err := filepath.Abs(img)
		if err != nil {
			return fmt.Errorf("resolve image path: %w", err)
		}
		fmt.Fprintf(&content, "file '%s'\n", absPath)
		fmt.Fprintf(&content, "duration %g\n", durations[i])
	}

	if err := os.WriteFile(scriptPath, []byte(content.String()), 0644); err != nil {
		return fmt.Errorf("write concat script: %w", err)
	}

	return nil
}
