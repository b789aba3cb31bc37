package generator

import (
	"context"
	"log/slog"

	"lecturecast/internal/lecture"
	"lecturecast/internal/llm"
)

// Source tags where the lecture content came from, so callers can tell
// real model output apart from the degraded offline payload.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type Result struct {
	Spec   *lecture.Spec
	Source Source
}

// Generator runs the content-generation stage. A nil client means no
// usable text-generation backend is configured; every request then
// resolves to the built-in example payload.
type Generator struct {
	client llm.Client
}

func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate asks the backend for lecture content and parses it. Backend
// unavailability or a failed call degrades to the fallback payload; a
// payload that fails schema validation is a hard error.
func (g *Generator) Generate(ctx context.Context, prompt string) (*Result, error) {
	if g.client == nil {
		slog.Info("Text-generation backend not configured, using fallback content")
		return &Result{Spec: FallbackSpec(), Source: SourceFallback}, nil
	}

	raw, err := g.client.GenerateLecture(ctx, prompt)
	if err != nil {
		slog.Warn("Lecture generation failed, using fallback content", "error", err)
		return &Result{Spec: FallbackSpec(), Source: SourceFallback}, nil
	}

	spec, err := lecture.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &Result{Spec: spec, Source: SourceGenerated}, nil
}

// FallbackSpec is the fixed example lecture served when the
// text-generation backend is unusable. Kept small so offline and demo
// runs still exercise every downstream stage.
func FallbackSpec() *lecture.Spec {
	return &lecture.Spec{
		Slides: []lecture.Slide{
			{
				Title: "Introduction to Photosynthesis",
				Content: []string{
					"Photosynthesis converts light energy to chemical energy",
					"It occurs in chloroplasts of plant cells",
					"It produces glucose and oxygen",
				},
				Script: "Photosynthesis is the process by which plants convert light energy into chemical energy. This process occurs in the chloroplasts of plant cells and produces glucose and oxygen.",
			},
		},
		Quiz: []lecture.QuizItem{
			{
				Question: "Where does photosynthesis occur?",
				Options:  []string{"Mitochondria", "Chloroplasts", "Nucleus", "Cell membrane"},
				Answer:   "Chloroplasts",
			},
		},
	}
}
