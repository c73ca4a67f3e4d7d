package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/metrics"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/sentiment"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/tone"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/youtube"
)

// ErrUpstream marks failures of YouTube or the text generation endpoint.
var ErrUpstream = errors.New("upstream service failed")

// UpstreamError is a failed call to YouTube or the text generation endpoint.
// Message is safe to show to API callers; Err carries the detail for logs.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

// Unwrap exposes both ErrUpstream and the cause to errors.Is and errors.As.
func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

// ChannelFetcher loads a channel and its recent videos.
type ChannelFetcher interface {
	FetchChannel(ctx context.Context, ref string) (*model.ChannelRecord, error)
}

// ChannelAnalysis is a fetched channel with its classification.
type ChannelAnalysis struct {
	Record *model.ChannelRecord
	Tones  tone.Result
}

// ToneSummary returns the API form of the detected tones.
func (a *ChannelAnalysis) ToneSummary() model.ToneSummary {
	return model.ToneSummary{
		Primary:   a.Tones.Primary.String(),
		Secondary: a.Tones.Secondary,
	}
}

type ChannelService struct {
	fetcher    ChannelFetcher
	classifier *tone.Classifier
	secondary  int
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

func NewChannelService(fetcher ChannelFetcher, classifier *tone.Classifier, secondary int, m *metrics.Metrics, logger zerolog.Logger) *ChannelService {
	if secondary < 0 {
		secondary = tone.DefaultSecondaryCount
	}
	return &ChannelService{
		fetcher:    fetcher,
		classifier: classifier,
		secondary:  secondary,
		metrics:    m,
		log:        logger,
	}
}

// Classify fetches the channel behind ref and derives its tones.
// A missing channel yields an error matching youtube.ErrChannelNotFound; any
// other fetch failure matches ErrUpstream.
func (s *ChannelService) Classify(ctx context.Context, ref string) (*ChannelAnalysis, error) {
	record, err := s.fetcher.FetchChannel(ctx, ref)
	if err != nil {
		if errors.Is(err, youtube.ErrChannelNotFound) {
			s.metrics.ChannelLookup("not_found")
			return nil, err
		}
		s.metrics.ChannelLookup("error")
		s.log.Error().Err(err).Msg("channel fetch failed")
		return nil, &UpstreamError{Message: "YouTube request failed", Err: err}
	}
	s.metrics.ChannelLookup("found")

	res := s.classifier.Classify(record, s.secondary)
	s.log.Debug().
		Str("channel_id", record.ID).
		Int("videos", len(record.Videos)).
		Str("primary", res.Primary.String()).
		Strs("secondary", res.Secondary).
		Msg("channel classified")

	return &ChannelAnalysis{Record: record, Tones: res}, nil
}

// Analyze returns channel info with tones, per-category scores and sentiment.
func (s *ChannelService) Analyze(ctx context.Context, ref string) (*model.ChannelResponse, error) {
	a, err := s.Classify(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &model.ChannelResponse{
		Channel:   a.Record.Summary(),
		Tones:     a.ToneSummary(),
		Sentiment: sentiment.Analyze(a.Record.Text()),
		Scores:    a.Tones.Scores.Map(),
	}, nil
}

// Keywords returns the trigger lists of every category in enumeration order.
func (s *ChannelService) Keywords() []model.ToneKeywords {
	table := s.classifier.Table()
	out := make([]model.ToneKeywords, 0, len(tone.Categories))
	for _, c := range tone.Categories {
		out = append(out, model.ToneKeywords{Tone: c.String(), Keywords: table.Keywords(c)})
	}
	return out
}
