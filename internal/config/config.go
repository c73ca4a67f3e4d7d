package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`

	YouTubeAPIKey      string        `envconfig:"YOUTUBE_API_KEY"`
	YouTubeBaseURL     string        `envconfig:"YOUTUBE_API_BASE" default:"https://www.googleapis.com/youtube/v3"`
	YouTubeTimeout     time.Duration `envconfig:"YOUTUBE_TIMEOUT" default:"10s"`
	YouTubeVideoSample int           `envconfig:"YOUTUBE_VIDEO_SAMPLE" default:"10"`

	GroqAPIKey      string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL     string        `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	GroqModel       string        `envconfig:"GROQ_MODEL" default:"meta-llama/llama-4-scout-17b-16e-instruct"`
	GroqTemperature float64       `envconfig:"GROQ_TEMPERATURE" default:"0.7"`
	GroqTimeout     time.Duration `envconfig:"GROQ_TIMEOUT" default:"60s"`

	SecondaryTones  int `envconfig:"SECONDARY_TONES" default:"2"`
	HistoryPageSize int `envconfig:"HISTORY_PAGE_SIZE" default:"20"`
}

// Load reads an optional .env file, then the process environment. Variables
// already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// HistoryEnabled reports whether script history is persisted.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
