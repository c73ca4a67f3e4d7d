package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears key for the duration of the test. envconfig treats a set
// but empty variable as a value, so defaults only apply to unset ones.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "LOG_LEVEL", "ENVIRONMENT", "CORS_ORIGINS",
		"YOUTUBE_API_BASE", "YOUTUBE_TIMEOUT", "YOUTUBE_VIDEO_SAMPLE",
		"GROQ_BASE_URL", "GROQ_MODEL", "GROQ_TEMPERATURE", "GROQ_TIMEOUT",
		"SECONDARY_TONES", "HISTORY_PAGE_SIZE",
	} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled without DATABASE_URL")
	}
	if cfg.YouTubeTimeout != 10*time.Second {
		t.Errorf("YouTubeTimeout = %v", cfg.YouTubeTimeout)
	}
	if cfg.YouTubeVideoSample != 10 {
		t.Errorf("YouTubeVideoSample = %d", cfg.YouTubeVideoSample)
	}
	if cfg.GroqModel != "meta-llama/llama-4-scout-17b-16e-instruct" {
		t.Errorf("GroqModel = %q", cfg.GroqModel)
	}
	if cfg.GroqTemperature != 0.7 {
		t.Errorf("GroqTemperature = %v", cfg.GroqTemperature)
	}
	if cfg.GroqTimeout != time.Minute {
		t.Errorf("GroqTimeout = %v", cfg.GroqTimeout)
	}
	if cfg.SecondaryTones != 2 || cfg.HistoryPageSize != 20 {
		t.Errorf("SecondaryTones/HistoryPageSize = %d/%d", cfg.SecondaryTones, cfg.HistoryPageSize)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/scripts")
	t.Setenv("YOUTUBE_TIMEOUT", "3s")
	t.Setenv("GROQ_TEMPERATURE", "0.2")
	t.Setenv("SECONDARY_TONES", "4")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if !cfg.HistoryEnabled() {
		t.Error("history should be enabled")
	}
	if cfg.YouTubeTimeout != 3*time.Second {
		t.Errorf("YouTubeTimeout = %v", cfg.YouTubeTimeout)
	}
	if cfg.GroqTemperature != 0.2 {
		t.Errorf("GroqTemperature = %v", cfg.GroqTemperature)
	}
	if cfg.SecondaryTones != 4 {
		t.Errorf("SecondaryTones = %d", cfg.SecondaryTones)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("YOUTUBE_VIDEO_SAMPLE", "ten")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric YOUTUBE_VIDEO_SAMPLE")
	}
}
