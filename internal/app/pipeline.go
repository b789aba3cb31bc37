package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lecturecast/internal/deck"
	"lecturecast/internal/generator"
	"lecturecast/internal/lecture"
	"lecturecast/internal/video"
	"lecturecast/internal/workspace"
)

type Pipeline struct {
	service *Service
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Theme  string `json:"theme"`
}

// GenerateResult is the API payload for one finished lecture. Local
// artifact paths are relative to the output base so the download
// endpoint can serve them; VideoPath is the remote URL and is empty
// when the upload failed or no store is configured.
type GenerateResult struct {
	SlidesPath     string                       `json:"slides_path"`
	VoicePath      string                       `json:"voice_path"`
	VideoPath      string                       `json:"video_path,omitempty"`
	VideoLocalPath string                       `json:"video_local_path"`
	SlideImages    []string                     `json:"slide_images"`
	Quiz           []lecture.NormalizedQuizItem `json:"quiz"`
	Source         generator.Source             `json:"source"`
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service}
}

// Generate runs the full lecture pipeline: content, deck, narration,
// slide bitmaps, video, quiz. Each request gets its own workspace
// directory, so concurrent requests never share artifact paths.
func (pipeline *Pipeline) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	service := pipeline.service

	slog.Info("Generating lecture content...", "prompt", req.Prompt)
	content, err := service.generator.Generate(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.New(service.cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	theme := req.Theme
	if theme == "" {
		theme = service.cfg.Render.DefaultTheme
	}

	slog.Info("Building slide deck...", "slides", len(content.Spec.Slides), "theme", theme)
	d := deck.Build(content.Spec.Slides, theme)
	if err := d.Save(ws.SlidesPath()); err != nil {
		return nil, err
	}

	scripts := make([]string, 0, len(content.Spec.Slides))
	for _, slide := range content.Spec.Slides {
		scripts = append(scripts, slide.Script)
	}

	slog.Info("Synthesizing narration...", "clips", len(scripts))
	narration, err := service.narrator.Narrate(ctx, scripts, ws)
	if err != nil {
		return nil, fmt.Errorf("narration failed: %w", err)
	}

	slog.Info("Rendering slide images...")
	rendered, err := service.rasterizer.Rasterize(ctx, ws.SlidesPath(), ws)
	if err != nil {
		return nil, err
	}

	slog.Info("Composing video...")
	if err := service.ffmpeg.Compose(ctx, video.ComposeRequest{
		ImagePaths: rendered.LocalPaths,
		AudioPath:  narration.CombinedPath,
		Durations:  narration.Durations,
		OutputPath: ws.VideoPath(),
	}); err != nil {
		return nil, fmt.Errorf("video composition failed: %w", err)
	}

	videoURL := pipeline.uploadVideo(ctx, ws.VideoPath())

	result := &GenerateResult{
		SlidesPath:     ws.Rel(ws.SlidesPath()),
		VoicePath:      ws.Rel(narration.CombinedPath),
		VideoPath:      videoURL,
		VideoLocalPath: ws.Rel(ws.VideoPath()),
		SlideImages:    relativeOrRemote(ws, rendered.URLs),
		Quiz:           lecture.NormalizeQuiz(content.Spec.Quiz),
		Source:         content.Source,
	}

	slog.Info("Lecture ready", "video", result.VideoLocalPath, "source", result.Source)
	return result, nil
}

func (pipeline *Pipeline) uploadVideo(ctx context.Context, path string) string {
	if pipeline.service.store == nil {
		return ""
	}

	url, err := pipeline.service.store.Upload(ctx, path, "video")
	if err != nil {
		slog.Warn("Video upload failed, serving local file only", "error", err)
		return ""
	}
	return url
}

// relativeOrRemote rewrites local artifact paths to their base-relative
// form and leaves remote URLs untouched.
func relativeOrRemote(ws *workspace.Workspace, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if strings.HasPrefix(p, "http") {
			out[i] = p
			continue
		}
		out[i] = ws.Rel(p)
	}
	return out
}
