package model

import "strings"

// MaxVideoSample caps how many recent videos are aggregated per channel.
const MaxVideoSample = 10

// ChannelRecord is the aggregated public metadata of a YouTube channel and a
// sample of its most recent videos. It is built per request and discarded
// after classification.
type ChannelRecord struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Keywords        string         `json:"keywords"`
	CustomURL       string         `json:"customUrl,omitempty"`
	PublishedAt     string         `json:"publishedAt,omitempty"`
	ViewCount       int64          `json:"viewCount"`
	SubscriberCount int64          `json:"subscriberCount"`
	VideoCount      int64          `json:"videoCount"`
	Videos          []VideoSummary `json:"videos"`
}

// IsEmpty reports whether the record carries no text and no videos.
// A nil record is empty.
func (r *ChannelRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Title == "" && r.Description == "" && r.Keywords == "" && len(r.Videos) == 0
}

// Text joins channel title, description and keywords, then every video's
// title and description, separated by single spaces and lowercased.
func (r *ChannelRecord) Text() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, 3+2*len(r.Videos))
	parts = append(parts, r.Title, r.Description, r.Keywords)
	for _, v := range r.Videos {
		parts = append(parts, v.Title, v.Description)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ChannelSummary is the channel block returned by the API.
type ChannelSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CustomURL   string `json:"customUrl,omitempty"`
	Subscribers int64  `json:"subscribers"`
	Videos      int64  `json:"videos"`
	Views       int64  `json:"views"`
}

// Summary trims the record down to its API representation.
func (r *ChannelRecord) Summary() ChannelSummary {
	return ChannelSummary{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CustomURL:   r.CustomURL,
		Subscribers: r.SubscriberCount,
		Videos:      r.VideoCount,
		Views:       r.ViewCount,
	}
}

// ToneSummary holds the detected primary and secondary tones.
type ToneSummary struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
}

// SentimentSummary is the VADER sentiment of a channel's text.
type SentimentSummary struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ChannelResponse is the API response for channel lookups.
type ChannelResponse struct {
	Channel   ChannelSummary   `json:"channel"`
	Tones     ToneSummary      `json:"tones"`
	Sentiment SentimentSummary `json:"sentiment"`
	Scores    map[string]int   `json:"scores"`
}

// ToneKeywords lists the trigger phrases of one tone category.
type ToneKeywords struct {
	Tone     string   `json:"tone"`
	Keywords []string `json:"keywords"`
}
