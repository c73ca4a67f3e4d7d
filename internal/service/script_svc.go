package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/metrics"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/prompt"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/render"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/tone"
)

const (
	SourceManual  = "manual"
	SourceChannel = "channel"

	maxHistoryLimit = 100
)

// ErrHistoryDisabled is returned by history reads when no store is configured.
var ErrHistoryDisabled = errors.New("script history is disabled")

// Generator turns a prompt into script text.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ScriptStore persists generated scripts.
type ScriptStore interface {
	Insert(ctx context.Context, s *model.Script) error
	FindByID(ctx context.Context, id string) (*model.Script, error)
	ListRecent(ctx context.Context, limit int) ([]model.Script, error)
}

type ScriptService struct {
	gen      Generator
	channels *ChannelService
	store    ScriptStore
	pageSize int
	metrics  *metrics.Metrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewScriptService wires script generation. store may be nil, in which case
// scripts are not kept and history reads return ErrHistoryDisabled.
func NewScriptService(gen Generator, channels *ChannelService, store ScriptStore, pageSize int, m *metrics.Metrics, logger zerolog.Logger) *ScriptService {
	if pageSize <= 0 || pageSize > maxHistoryLimit {
		pageSize = 20
	}
	return &ScriptService{
		gen:      gen,
		channels: channels,
		store:    store,
		pageSize: pageSize,
		metrics:  m,
		log:      logger,
		now:      time.Now,
	}
}

// HistoryEnabled reports whether generated scripts are persisted.
func (s *ScriptService) HistoryEnabled() bool {
	return s.store != nil
}

// Generate builds the prompt for req and returns the generated script.
func (s *ScriptService) Generate(ctx context.Context, req model.ScriptRequest) (*model.ScriptResponse, error) {
	script, err := s.generate(ctx, req.WithDefaults(), nil, nil)
	if err != nil {
		return nil, err
	}
	s.metrics.ScriptGenerated(SourceManual, toneLabel(script.Request.Tone))
	return s.respond(ctx, script, nil, nil), nil
}

// GenerateFromChannel classifies the referenced channel and generates a
// script in its primary tone.
func (s *ScriptService) GenerateFromChannel(ctx context.Context, req model.ChannelScriptRequest) (*model.ScriptResponse, error) {
	analysis, err := s.channels.Classify(ctx, req.ChannelID)
	if err != nil {
		s.metrics.GenerationFailed(metrics.StageChannel)
		return nil, err
	}

	tones := analysis.ToneSummary()
	plain := req.ScriptRequest(tones.Primary).WithDefaults()
	channelID := analysis.Record.ID

	script, err := s.generate(ctx, plain, &channelID, tones.Secondary)
	if err != nil {
		return nil, err
	}
	s.metrics.ScriptGenerated(SourceChannel, tones.Primary)

	summary := analysis.Record.Summary()
	return s.respond(ctx, script, &summary, &tones), nil
}

func (s *ScriptService) generate(ctx context.Context, req model.ScriptRequest, channelID *string, secondary []string) (*model.Script, error) {
	text := prompt.Build(req)

	start := time.Now()
	content, err := s.gen.Complete(ctx, text)
	s.metrics.ObserveLLM(time.Since(start))
	if err != nil {
		s.metrics.GenerationFailed(metrics.StageLLM)
		s.log.Error().Err(err).Str("topic", req.Topic).Msg("script generation failed")
		return nil, &UpstreamError{Message: "Script generation failed", Err: err}
	}

	return &model.Script{
		ID:             uuid.NewString(),
		Request:        req,
		ChannelID:      channelID,
		SecondaryTones: secondary,
		Prompt:         text,
		Content:        content,
		CreatedAt:      s.now().UTC(),
	}, nil
}

// respond stores the script when history is enabled and builds the API
// response. A failed insert is logged and reported through Saved.
func (s *ScriptService) respond(ctx context.Context, script *model.Script, channel *model.ChannelSummary, tones *model.ToneSummary) *model.ScriptResponse {
	saved := false
	if s.store != nil {
		if err := s.store.Insert(ctx, script); err != nil {
			s.metrics.GenerationFailed(metrics.StageHistory)
			s.log.Warn().Err(err).Str("script_id", script.ID).Msg("failed to save script history")
		} else {
			saved = true
		}
	}

	return &model.ScriptResponse{
		ID:         script.ID,
		Script:     script.Content,
		ScriptHTML: render.Markdown(script.Content),
		Request:    script.Request,
		Channel:    channel,
		Tones:      tones,
		Saved:      saved,
		CreatedAt:  script.CreatedAt,
	}
}

// toneLabel keeps metric labels bounded: free-form tones are reported as
// "custom".
func toneLabel(t string) string {
	if c, ok := tone.ParseCategory(t); ok {
		return c.String()
	}
	return "custom"
}

// Get returns one stored script.
func (s *ScriptService) Get(ctx context.Context, id string) (*model.Script, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.FindByID(ctx, id)
}

// List returns up to limit recent scripts. A limit outside 1..100 uses the
// configured page size.
func (s *ScriptService) List(ctx context.Context, limit int) ([]model.Script, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 || limit > maxHistoryLimit {
		limit = s.pageSize
	}
	scripts, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if scripts == nil {
		scripts = []model.Script{}
	}
	return scripts, nil
}
