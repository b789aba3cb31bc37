package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "config.yaml"

	defaultPort             = "5000"
	defaultGroqModel        = "llama-3.3-70b-versatile"
	defaultTTSProvider      = "googletts"
	defaultLanguage         = "en"
	defaultOutputDir        = "./output"
	defaultTheme            = "Minimalist"
	defaultFFmpegPath       = "ffmpeg"
	defaultFFprobePath      = "ffprobe"
	defaultProbeTimeoutSec  = 30
	defaultEncodeTimeoutSec = 600
)

type Config struct {
	GroqAPIKey string
	GCSBucket  string

	Server ServerConfig `yaml:"server"`
	Groq   GroqConfig   `yaml:"groq"`
	TTS    TTSConfig    `yaml:"tts"`
	Output OutputConfig `yaml:"output"`
	Video  VideoConfig  `yaml:"video"`
	Render RenderConfig `yaml:"render"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type GroqConfig struct {
	Model string `yaml:"model"`
}

type TTSConfig struct {
	Provider string `yaml:"provider"` // "googletts" or "stub"
	Language string `yaml:"language"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type VideoConfig struct {
	FFmpegPath       string `yaml:"ffmpeg_path"`
	FFprobePath      string `yaml:"ffprobe_path"`
	ProbeTimeoutSec  int    `yaml:"probe_timeout_sec"`
	EncodeTimeoutSec int    `yaml:"encode_timeout_sec"`
}

func (v VideoConfig) ProbeTimeout() time.Duration {
	return time.Duration(v.ProbeTimeoutSec) * time.Second
}

func (v VideoConfig) EncodeTimeout() time.Duration {
	return time.Duration(v.EncodeTimeoutSec) * time.Second
}

type RenderConfig struct {
	FontPath     string `yaml:"font_path"`
	DefaultTheme string `yaml:"default_theme"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
		GCSBucket:  os.Getenv("GCS_BUCKET"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)

	return cfg
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Warn("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultPort
	}
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = defaultGroqModel
	}
	if cfg.TTS.Provider == "" {
		cfg.TTS.Provider = defaultTTSProvider
	}
	if cfg.TTS.Language == "" {
		cfg.TTS.Language = defaultLanguage
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}
	if cfg.Video.FFmpegPath == "" {
		cfg.Video.FFmpegPath = defaultFFmpegPath
	}
	if cfg.Video.FFprobePath == "" {
		cfg.Video.FFprobePath = defaultFFprobePath
	}
	if cfg.Video.ProbeTimeoutSec <= 0 {
		cfg.Video.ProbeTimeoutSec = defaultProbeTimeoutSec
	}
	if cfg.Video.EncodeTimeoutSec <= 0 {
		cfg.Video.EncodeTimeoutSec = defaultEncodeTimeoutSec
	}
	if cfg.Render.DefaultTheme == "" {
		cfg.Render.DefaultTheme = defaultTheme
	}
}
