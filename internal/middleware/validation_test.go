package middleware

import (
	"strings"
	"testing"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

func TestValidateChannelRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"channel id", "UC_x5XG1OV2P6uZZ5FSM9Ttw", "UC_x5XG1OV2P6uZZ5FSM9Ttw", false},
		{"url", "https://www.youtube.com/@veritasium", "https://www.youtube.com/@veritasium", false},
		{"handle", "@veritasium", "@veritasium", false},
		{"trims whitespace", "  @abc  ", "@abc", false},
		{"empty", "   ", "", true},
		{"too long", strings.Repeat("a", 201), "", true},
		{"exactly 200", strings.Repeat("a", 200), strings.Repeat("a", 200), false},
		{"control char", "UCabc\x00def", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannelRef(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateScriptID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "0b7c4a52-1d3e-4c55-9a4f-0b1f1c2d3e4f", "0b7c4a52-1d3e-4c55-9a4f-0b1f1c2d3e4f", false},
		{"uppercase normalized", "0B7C4A52-1D3E-4C55-9A4F-0B1F1C2D3E4F", "0b7c4a52-1d3e-4c55-9a4f-0b1f1c2d3e4f", false},
		{"empty", "", "", true},
		{"not a uuid", "abc", "", true},
		{"sql injection", "1'; DROP TABLE scripts--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateScriptID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"valid script request", model.ScriptRequest{Topic: "coffee"}, ""},
		{"missing topic", model.ScriptRequest{Tone: "Casual"}, "topic is required"},
		{"topic too long", model.ScriptRequest{Topic: strings.Repeat("x", 501)}, "topic must be at most 500 characters"},
		{"missing channel", model.ChannelScriptRequest{Topic: "coffee"}, "channelId is required"},
		{"valid channel request", model.ChannelScriptRequest{ChannelID: "@abc", Topic: "coffee"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateStruct(tt.v); got != tt.want {
				t.Errorf("ValidateStruct = %q, want %q", got, tt.want)
			}
		})
	}
}
