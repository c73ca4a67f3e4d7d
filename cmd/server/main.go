package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/config"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/db"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/handler"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/llm"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/metrics"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/middleware"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/repository"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/router"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/service"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/tone"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/youtube"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		middleware.InitLogger("info", "script-writer")
		middleware.Logger.Fatal().Err(err).Msg("invalid configuration")
	}
	middleware.InitLogger(cfg.LogLevel, "script-writer")
	log := middleware.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	var (
		pool  *pgxpool.Pool
		store service.ScriptStore
	)
	if cfg.HistoryEnabled() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, middleware.Component("db"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to apply schema")
		}
		metrics.RegisterPool(prometheus.DefaultRegisterer, pool)
		store = repository.NewScriptRepo(pool)
	} else {
		log.Info().Msg("DATABASE_URL not set, script history disabled")
	}

	classifier, err := tone.NewClassifier(tone.DefaultKeywords())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build tone classifier")
	}

	yt := youtube.NewClient(youtube.Config{
		APIKey:      cfg.YouTubeAPIKey,
		BaseURL:     cfg.YouTubeBaseURL,
		Timeout:     cfg.YouTubeTimeout,
		VideoSample: cfg.YouTubeVideoSample,
	}, middleware.Component("youtube"))

	gen := llm.NewClient(llm.Config{
		APIKey:      cfg.GroqAPIKey,
		BaseURL:     cfg.GroqBaseURL,
		Model:       cfg.GroqModel,
		Temperature: cfg.GroqTemperature,
		Timeout:     cfg.GroqTimeout,
	}, middleware.Component("llm"))

	channelSvc := service.NewChannelService(yt, classifier, cfg.SecondaryTones, m, middleware.Component("channel"))
	scriptSvc := service.NewScriptService(gen, channelSvc, store, cfg.HistoryPageSize, m, middleware.Component("script"))

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Script Writer",
		ServerHeader: "script-writer",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GroqTimeout + cfg.YouTubeTimeout + 10*time.Second,
	})

	router.Setup(app, &router.Handlers{
		Script:   handler.NewScriptHandler(scriptSvc),
		Channel:  handler.NewChannelHandler(channelSvc),
		Health:   handler.NewHealthHandler(pool, version),
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	}, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Str("model", gen.Model()).
		Bool("history", store != nil).
		Msg("script writer starting")

	if err := app.Listen(":"+cfg.Port, fiber.ListenConfig{DisableStartupMessage: cfg.IsProduction()}); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
