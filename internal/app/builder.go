package app

import (
	"context"
	"log/slog"

	"lecturecast/internal/generator"
	"lecturecast/internal/llm"
	"lecturecast/internal/llm/groq"
	"lecturecast/internal/narrator"
	"lecturecast/internal/render"
	"lecturecast/internal/speech"
	"lecturecast/internal/speech/googletts"
	"lecturecast/internal/storage"
	"lecturecast/internal/video"
	"lecturecast/pkg/config"
)

// BuildService wires every pipeline stage from configuration. Missing
// credentials degrade the affected stage instead of failing the build:
// no Groq key means fallback content, no bucket means local-only
// artifacts.
func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	var llmClient llm.Client
	if cfg.GroqAPIKey != "" {
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.Groq.Model)
		if err != nil {
			return nil, err
		}
		llmClient = client
	} else {
		slog.Warn("GROQ_API_KEY not set, lecture content degrades to fallback payload")
	}

	var ttsProvider speech.Provider
	switch cfg.TTS.Provider {
	case "stub":
		ttsProvider = speech.NewStubProvider(speech.DefaultWordsPerMinute)
	default:
		ttsProvider = googletts.NewClient(googletts.Config{Language: cfg.TTS.Language})
	}

	var store storage.Uploader
	if cfg.GCSBucket != "" {
		gcs, err := storage.NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			slog.Warn("Object store unavailable, artifacts stay local", "error", err)
		} else {
			store = gcs
		}
	} else {
		slog.Warn("GCS_BUCKET not set, artifacts stay local")
	}

	ffmpeg := video.New(video.Options{
		FFmpegPath:    cfg.Video.FFmpegPath,
		FFprobePath:   cfg.Video.FFprobePath,
		ProbeTimeout:  cfg.Video.ProbeTimeout(),
		EncodeTimeout: cfg.Video.EncodeTimeout(),
	})

	rasterizer, err := render.New(store, cfg.Render.FontPath)
	if err != nil {
		return nil, err
	}

	return NewService(ServiceOptions{
		Config:     cfg,
		Generator:  generator.New(llmClient),
		TTS:        ttsProvider,
		Narrator:   narrator.New(ttsProvider, ffmpeg, ffmpeg, video.DefaultSlideDuration),
		Rasterizer: rasterizer,
		FFmpeg:     ffmpeg,
		Store:      store,
	}), nil
}
