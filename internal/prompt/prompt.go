// Package prompt assembles the instruction text sent to the script model.
package prompt

import (
	"fmt"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

const template = `You are a professional YouTube script writer. Based on the inputs below, generate a full script.

Inputs:
Topic: %s
Tone: %s
Style: %s
Duration: %d minutes
Target Audience: %s
Language: %s
Additional Notes: %s

Output format:
1. Script Structure (with timestamps)
2. Hook
3. Chapters (3, each with a title and body)
4. Engagement Moment (question, twist, or CTA)
5. Scorecard (rate Clickability, SEO Strength, Clarity & Relevance from 0 to 10)

Write naturally, clearly, and engagingly. Do not include anything outside the specified format.
`

// Build renders the prompt for req. Missing optional fields take their defaults.
func Build(req model.ScriptRequest) string {
	r := req.WithDefaults()
	return fmt.Sprintf(template, r.Topic, r.Tone, r.Style, r.Duration, r.Audience, r.Language, r.Notes)
}
