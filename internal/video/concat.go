package video

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ConcatAudio joins the clips, in input order, into one file using
// stream-copy concatenation. No re-encoding happens; a non-zero encoder
// exit fails the call.
func (f *FFmpeg) ConcatAudio(ctx context.Context, clipPaths []string, outputPath string) error {
	if len(clipPaths) == 0 {
		return fmt.Errorf("no audio clips to concatenate")
	}

	listPath := filepath.Join(filepath.Dir(outputPath), "concat_list.txt")
	if err := writeConcatList(listPath, clipPaths); err != nil {
		return err
	}
	defer func() { _ = os.Remove(listPath) }()

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
		"-y",
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		slog.Error("Audio concat failed", "error", err, "output", string(output))
		return fmt.Errorf("ffmpeg concat failed: %w", err)
	}

	return nil
}

func writeConcatList(listPath string, paths []string) error {
	var content strings.Builder
	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve clip path: %w", err)
		}
		fmt.Fprintf(&content, "file '%s'\n", absPath)
	}

	if err := os.WriteFile(listPath, []byte(content.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	return nil
}
