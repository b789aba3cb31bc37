// Package video wraps the external ffmpeg/ffprobe binaries: duration
// probing, stream-copy audio concatenation, and the image+audio video
// composition that produces the final lecture file.
package video

import (
	"time"
)

const (
	defaultFFmpegPath  = "ffmpeg"
	defaultFFprobePath = "ffprobe"

	// DefaultSlideDuration is used when a clip's duration cannot be
	// measured or when no durations are supplied to the composer.
	DefaultSlideDuration = 25.0

	defaultProbeTimeout  = 30 * time.Second
	defaultEncodeTimeout = 10 * time.Minute
)

type FFmpeg struct {
	ffmpegPath    string
	ffprobePath   string
	probeTimeout  time.Duration
	encodeTimeout time.Duration
}

type Options struct {
	FFmpegPath    string
	FFprobePath   string
	ProbeTimeout  time.Duration
	EncodeTimeout time.Duration
}

func New(opts Options) *FFmpeg {
	f := &FFmpeg{
		ffmpegPath:    opts.FFmpegPath,
		ffprobePath:   opts.FFprobePath,
		probeTimeout:  opts.ProbeTimeout,
		encodeTimeout: opts.EncodeTimeout,
	}
	if f.ffmpegPath == "" {
		f.ffmpegPath = defaultFFmpegPath
	}
	if f.ffprobePath == "" {
		f.ffprobePath = defaultFFprobePath
	}
	if f.probeTimeout <= 0 {
		f.probeTimeout = defaultProbeTimeout
	}
	if f.encodeTimeout <= 0 {
		f.encodeTimeout = defaultEncodeTimeout
	}
	return f
}
