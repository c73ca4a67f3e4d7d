// Package sentiment scores free text with VADER.
package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

// Labels thresholds on the compound score.
const (
	PositiveThreshold = 0.20
	NegativeThreshold = -0.20

	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	markdownLink = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Analyze returns the compound VADER score of text and its label. Links are
// removed first; channel descriptions are often mostly URLs.
func Analyze(text string) model.SentimentSummary {
	clean := strings.Join(strings.Fields(stripLinks(text)), " ")
	if clean == "" {
		return model.SentimentSummary{Score: 0, Label: LabelNeutral}
	}
	score := analyzer.PolarityScores(clean).Compound
	return model.SentimentSummary{Score: score, Label: Label(score)}
}

// Label maps a compound score to positive, negative or neutral.
func Label(score float64) string {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func stripLinks(s string) string {
	s = markdownLink.ReplaceAllString(s, "$1")
	return bareURL.ReplaceAllString(s, "")
}
