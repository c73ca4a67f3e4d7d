package model

import (
	"strings"
	"time"
)

// Request defaults applied when optional fields are missing.
const (
	DefaultTone     = "Informative"
	DefaultStyle    = "Conversational"
	DefaultDuration = 5
	DefaultAudience = "General"
	DefaultLanguage = "English"
)

// ScriptRequest is the API request body for generating a script.
type ScriptRequest struct {
	Topic    string `json:"topic" form:"topic" validate:"required,max=500"`
	Tone     string `json:"tone" form:"tone"`
	Style    string `json:"style" form:"style"`
	Duration int    `json:"duration" form:"duration"`
	Audience string `json:"audience" form:"audience"`
	Language string `json:"language" form:"language"`
	Notes    string `json:"notes" form:"notes"`
}

// WithDefaults returns a trimmed copy of the request with every missing
// optional field replaced by its default.
func (r ScriptRequest) WithDefaults() ScriptRequest {
	out := ScriptRequest{
		Topic:    strings.TrimSpace(r.Topic),
		Tone:     orDefault(r.Tone, DefaultTone),
		Style:    orDefault(r.Style, DefaultStyle),
		Duration: r.Duration,
		Audience: orDefault(r.Audience, DefaultAudience),
		Language: orDefault(r.Language, DefaultLanguage),
		Notes:    strings.TrimSpace(r.Notes),
	}
	if out.Duration <= 0 {
		out.Duration = DefaultDuration
	}
	return out
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// ChannelScriptRequest is the API request body for generating a script whose
// tone is derived from a YouTube channel.
type ChannelScriptRequest struct {
	ChannelID string `json:"channelId" form:"channel_id" validate:"required,max=200"`
	Topic     string `json:"topic" form:"topic" validate:"required,max=500"`
	Style     string `json:"style" form:"style"`
	Duration  int    `json:"duration" form:"duration"`
	Audience  string `json:"audience" form:"audience"`
	Language  string `json:"language" form:"language"`
	Notes     string `json:"notes" form:"notes"`
}

// ScriptRequest converts the channel request into a plain request using tone.
func (r ChannelScriptRequest) ScriptRequest(tone string) ScriptRequest {
	return ScriptRequest{
		Topic:    r.Topic,
		Tone:     tone,
		Style:    r.Style,
		Duration: r.Duration,
		Audience: r.Audience,
		Language: r.Language,
		Notes:    r.Notes,
	}
}

// Script is a generated script as kept in the history store.
type Script struct {
	ID             string        `json:"id"`
	Request        ScriptRequest `json:"request"`
	ChannelID      *string       `json:"channelId,omitempty"`
	SecondaryTones []string      `json:"secondaryTones,omitempty"`
	Prompt         string        `json:"-"`
	Content        string        `json:"script"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// ScriptResponse is the API response after generating a script.
type ScriptResponse struct {
	ID         string          `json:"id"`
	Script     string          `json:"script"`
	ScriptHTML string          `json:"scriptHtml"`
	Request    ScriptRequest   `json:"request"`
	Channel    *ChannelSummary `json:"channel,omitempty"`
	Tones      *ToneSummary    `json:"tones,omitempty"`
	Saved      bool            `json:"saved"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ScriptListResponse is the API response for the history listing.
type ScriptListResponse struct {
	Scripts []Script `json:"scripts"`
	Count   int      `json:"count"`
}
