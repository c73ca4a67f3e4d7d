package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultTimeout = 10 * time.Second

	apiKeyHeader = "X-Goog-Api-Key"

	maxErrorBody      = 512
	detailConcurrency = 4
)

// ErrChannelNotFound is returned when the Data API has no channel for an ID.
var ErrChannelNotFound = errors.New("channel not found")

// APIError is a non-200 answer from the Data API.
type APIError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s: status %d: %s", e.Resource, e.StatusCode, e.Body)
}

// Config configures a Client.
type Config struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	VideoSample int
}

// Client reads channel and video metadata from the YouTube Data API v3.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	sample     int
	log        zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.VideoSample <= 0 || cfg.VideoSample > model.MaxVideoSample {
		cfg.VideoSample = model.MaxVideoSample
	}
	if cfg.APIKey == "" {
		logger.Warn().Msg("youtube: no API key configured, channel lookups will fail")
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sample:     cfg.VideoSample,
		log:        logger,
	}
}

// --- Data API v3 response types ---

type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			CustomURL   string `json:"customUrl"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount       string `json:"viewCount"`
			SubscriberCount string `json:"subscriberCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
		BrandingSettings struct {
			Channel struct {
				Keywords string `json:"keywords"`
			} `json:"channel"`
		} `json:"brandingSettings"`
	} `json:"items"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet struct {
			ChannelID string `json:"channelId"`
		} `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// FetchChannel resolves ref and aggregates the channel with its most recent
// videos. It returns ErrChannelNotFound when the channel does not exist.
func (c *Client) FetchChannel(ctx context.Context, ref string) (*model.ChannelRecord, error) {
	channelID := c.ResolveChannelID(ctx, ref)

	params := url.Values{}
	params.Set("part", "snippet,statistics,brandingSettings")
	params.Set("id", channelID)

	var ch channelListResponse
	if err := c.get(ctx, "channels", params, &ch); err != nil {
		return nil, err
	}
	if len(ch.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}
	item := ch.Items[0]

	videos, err := c.recentVideos(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return &model.ChannelRecord{
		ID:              channelID,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		Keywords:        item.BrandingSettings.Channel.Keywords,
		CustomURL:       item.Snippet.CustomURL,
		PublishedAt:     item.Snippet.PublishedAt,
		ViewCount:       parseCount(item.Statistics.ViewCount),
		SubscriberCount: parseCount(item.Statistics.SubscriberCount),
		VideoCount:      parseCount(item.Statistics.VideoCount),
		Videos:          videos,
	}, nil
}

// recentVideos lists the newest uploads of a channel and fetches their
// details concurrently. Output keeps the search order; uploads without a
// detail record are skipped.
func (c *Client) recentVideos(ctx context.Context, channelID string) ([]model.VideoSummary, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("order", "date")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(c.sample))

	var sr searchResponse
	if err := c.get(ctx, "search", params, &sr); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(sr.Items))
	for _, it := range sr.Items {
		if it.ID.VideoID != "" {
			ids = append(ids, it.ID.VideoID)
		}
	}
	if len(ids) > c.sample {
		ids = ids[:c.sample]
	}

	slots := make([]*model.VideoSummary, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			v, err := c.videoDetails(gctx, id)
			if err != nil {
				return err
			}
			slots[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	videos := make([]model.VideoSummary, 0, len(slots))
	for _, v := range slots {
		if v != nil {
			videos = append(videos, *v)
		}
	}
	return videos, nil
}

func (c *Client) videoDetails(ctx context.Context, videoID string) (*model.VideoSummary, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", videoID)

	var vr videoListResponse
	if err := c.get(ctx, "videos", params, &vr); err != nil {
		return nil, err
	}
	if len(vr.Items) == 0 {
		return nil, nil
	}
	it := vr.Items[0]
	return &model.VideoSummary{
		ID:          videoID,
		Title:       it.Snippet.Title,
		Description: it.Snippet.Description,
		Views:       parseCount(it.Statistics.ViewCount),
		Likes:       parseCount(it.Statistics.LikeCount),
		Comments:    parseCount(it.Statistics.CommentCount),
	}, nil
}

// searchChannel returns the ID of the best channel match for query, or ""
// when the search has no hits.
func (c *Client) searchChannel(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "channel")
	params.Set("maxResults", "1")

	var sr searchResponse
	if err := c.get(ctx, "search", params, &sr); err != nil {
		return "", err
	}
	if len(sr.Items) == 0 {
		return "", nil
	}
	if id := sr.Items[0].Snippet.ChannelID; id != "" {
		return id, nil
	}
	return sr.Items[0].ID.ChannelID, nil
}

func (c *Client) get(ctx context.Context, resource string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + resource + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("youtube %s: build request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube %s: %w", resource, stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode youtube %s: %w", resource, err)
	}
	return nil
}

// stripURL drops the request URL from transport errors so query parameters
// never end up in error text.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// parseCount reads the string-encoded counters of the Data API. Hidden or
// malformed counters read as 0.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
