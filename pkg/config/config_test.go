package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)

	cfg := Load()

	if cfg.Server.Port != "5000" {
		t.Errorf("Server.Port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Groq.Model = %q", cfg.Groq.Model)
	}
	if cfg.TTS.Provider != "googletts" {
		t.Errorf("TTS.Provider = %q, want googletts", cfg.TTS.Provider)
	}
	if cfg.TTS.Language != "en" {
		t.Errorf("TTS.Language = %q, want en", cfg.TTS.Language)
	}
	if cfg.Output.Dir != "./output" {
		t.Errorf("Output.Dir = %q, want ./output", cfg.Output.Dir)
	}
	if cfg.Video.ProbeTimeout() != 30*time.Second {
		t.Errorf("Video.ProbeTimeout() = %v", cfg.Video.ProbeTimeout())
	}
	if cfg.Video.EncodeTimeout() != 10*time.Minute {
		t.Errorf("Video.EncodeTimeout() = %v", cfg.Video.EncodeTimeout())
	}
	if cfg.Render.DefaultTheme != "Minimalist" {
		t.Errorf("Render.DefaultTheme = %q, want Minimalist", cfg.Render.DefaultTheme)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)

	yaml := `
server:
  port: "8080"
tts:
  provider: stub
output:
  dir: /tmp/lectures
video:
  encode_timeout_sec: 120
`
	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yaml), 0644)

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.TTS.Provider != "stub" {
		t.Errorf("TTS.Provider = %q, want stub", cfg.TTS.Provider)
	}
	if cfg.Output.Dir != "/tmp/lectures" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Video.EncodeTimeout() != 2*time.Minute {
		t.Errorf("Video.EncodeTimeout() = %v, want 2m", cfg.Video.EncodeTimeout())
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unset field lost default: Groq.Model = %q", cfg.Groq.Model)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	defer func() { _ = os.Chdir(orig) }()
	_ = os.Chdir(tmp)

	t.Setenv("GROQ_API_KEY", "test-groq")
	t.Setenv("GCS_BUCKET", "test-bucket")

	cfg := Load()

	if cfg.GroqAPIKey != "test-groq" {
		t.Errorf("GroqAPIKey = %q", cfg.GroqAPIKey)
	}
	if cfg.GCSBucket != "test-bucket" {
		t.Errorf("GCSBucket = %q", cfg.GCSBucket)
	}
}
