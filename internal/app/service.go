package app

import (
	"lecturecast/internal/generator"
	"lecturecast/internal/narrator"
	"lecturecast/internal/render"
	"lecturecast/internal/speech"
	"lecturecast/internal/storage"
	"lecturecast/internal/video"
	"lecturecast/pkg/config"
)

type Service struct {
	cfg        *config.Config
	generator  *generator.Generator
	tts        speech.Provider
	narrator   *narrator.Narrator
	rasterizer *render.Rasterizer
	ffmpeg     *video.FFmpeg
	store      storage.Uploader
}

type ServiceOptions struct {
	Config     *config.Config
	Generator  *generator.Generator
	TTS        speech.Provider
	Narrator   *narrator.Narrator
	Rasterizer *render.Rasterizer
	FFmpeg     *video.FFmpeg
	Store      storage.Uploader
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		cfg:        opts.Config,
		generator:  opts.Generator,
		tts:        opts.TTS,
		narrator:   opts.Narrator,
		rasterizer: opts.Rasterizer,
		ffmpeg:     opts.FFmpeg,
		store:      opts.Store,
	}
}

func (s *Service) Config() *config.Config { return s.cfg }
