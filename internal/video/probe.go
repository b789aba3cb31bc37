package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
)

var durationRegex = regexp.MustCompile(`Duration: (\d{2}):(\d{2}):(\d{2}\.\d+)`)

// Duration measures a media file's duration in seconds. ffprobe is the
// primary probe; when it fails, the full-decode fallback parses the
// Duration line from ffmpeg's diagnostic output. Both waits are bounded
// by the probe timeout.
func (f *FFmpeg) Duration(ctx context.Context, path string) (float64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("media file not found: %w", err)
	}

	dur, probeErr := f.probeDuration(ctx, path)
	if probeErr == nil {
		return dur, nil
	}

	dur, fallbackErr := f.decodeDuration(ctx, path)
	if fallbackErr == nil {
		return dur, nil
	}

	return 0, fmt.Errorf("probe duration: %w (fallback: %v)", probeErr, fallbackErr)
}

func (f *FFmpeg) probeDuration(ctx context.Context, path string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	output, err := exec.CommandContext(ctx, f.ffprobePath, args...).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var dur float64
	if _, err := fmt.Sscanf(string(output), "%f", &dur); err != nil {
		return 0, fmt.Errorf("parse ffprobe duration: %w", err)
	}

	return dur, nil
}

// decodeDuration runs a null decode and scrapes the Duration line from
// stderr. ffmpeg exits non-zero for some inputs here, so only the
// presence of the pattern decides success.
func (f *FFmpeg) decodeDuration(ctx context.Context, path string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	args := []string{"-i", path, "-f", "null", "-"}
	output, _ := exec.CommandContext(ctx, f.ffmpegPath, args...).CombinedOutput()

	return parseDurationOutput(string(output))
}

func parseDurationOutput(output string) (float64, error) {
	match := durationRegex.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("no duration in encoder output")
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, fmt.Errorf("parse seconds: %w", err)
	}

	return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
}
