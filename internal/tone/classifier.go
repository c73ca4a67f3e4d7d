package tone

import (
	"cmp"
	"fmt"
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

const (
	// DefaultPrimary is returned when nothing scores.
	DefaultPrimary = Informative

	// SecondaryFallback is the secondary list for an empty record. It is not
	// a Category; callers relied on this label before categories were fixed,
	// so it stays as-is.
	SecondaryFallback = "Conversational"

	// DefaultSecondaryCount is how many secondary tones are returned by default.
	DefaultSecondaryCount = 2
)

// Scores holds the keyword hit count of every category, indexed by Category.
type Scores [categoryCount]int

// Of returns the score of c.
func (s Scores) Of(c Category) int {
	if c < 0 || int(c) >= categoryCount {
		return 0
	}
	return s[c]
}

// Map returns the scores keyed by category name.
func (s Scores) Map() map[string]int {
	m := make(map[string]int, categoryCount)
	for _, c := range Categories {
		m[c.String()] = s[c]
	}
	return m
}

// Result is the outcome of one classification pass.
type Result struct {
	Primary   Category
	Secondary []string
	Scores    Scores
}

// Classifier scores channel text against a keyword table. It holds no
// per-call state and is safe for concurrent use.
type Classifier struct {
	table   *KeywordTable
	matcher *goahocorasick.Machine
}

// NewClassifier builds the matching automaton for table.
func NewClassifier(table *KeywordTable) (*Classifier, error) {
	if table == nil {
		return nil, fmt.Errorf("tone: nil keyword table")
	}

	seen := make(map[string]struct{})
	var patterns [][]rune
	for _, c := range Categories {
		for _, w := range table.lists[c] {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			patterns = append(patterns, []rune(w))
		}
	}

	cl := &Classifier{table: table}
	if len(patterns) == 0 {
		return cl, nil
	}

	slices.SortFunc(patterns, func(a, b []rune) int { return slices.Compare(a, b) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("tone: build matcher: %w", err)
	}
	cl.matcher = m
	return cl, nil
}

// Table returns the keyword table the classifier was built from.
func (c *Classifier) Table() *KeywordTable {
	return c.table
}

// Score counts word-bounded, non-overlapping trigger occurrences in the
// record text and sums them per category.
func (c *Classifier) Score(record *model.ChannelRecord) Scores {
	var scores Scores
	hits := c.countTriggers([]rune(record.Text()))
	if len(hits) == 0 {
		return scores
	}
	for _, cat := range Categories {
		for _, w := range c.table.lists[cat] {
			scores[cat] += hits[w]
		}
	}
	return scores
}

func (c *Classifier) countTriggers(text []rune) map[string]int {
	if c.matcher == nil || len(text) == 0 {
		return nil
	}

	terms := c.matcher.MultiPatternSearch(text, false)
	slices.SortStableFunc(terms, func(a, b *goahocorasick.Term) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	hits := make(map[string]int)
	lastEnd := make(map[string]int)
	for _, t := range terms {
		start, end := t.Pos, t.Pos+len(t.Word)
		if start < 0 || end > len(text) || !bounded(text, start, end) {
			continue
		}
		w := string(t.Word)
		if prev, ok := lastEnd[w]; ok && start < prev {
			continue
		}
		lastEnd[w] = end
		hits[w]++
	}
	return hits
}

// bounded reports whether text[start:end] sits between two word boundaries,
// with the same meaning as \b in a regular expression.
func bounded(text []rune, start, end int) bool {
	before := start > 0 && isWordRune(text[start-1])
	after := end < len(text) && isWordRune(text[end])
	return before != isWordRune(text[start]) && after != isWordRune(text[end-1])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Rank orders every category by descending score. Equal scores keep
// declaration order.
func Rank(scores Scores) []Category {
	ranked := slices.Clone(Categories)
	slices.SortStableFunc(ranked, func(a, b Category) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return ranked
}

// Primary returns the highest scoring category, or DefaultPrimary when no
// trigger matched.
func (c *Classifier) Primary(record *model.ChannelRecord) Category {
	return primaryOf(c.Score(record))
}

func primaryOf(scores Scores) Category {
	ranked := Rank(scores)
	if scores[ranked[0]] == 0 {
		return DefaultPrimary
	}
	return ranked[0]
}

// Secondary returns up to count category names ranked right after the
// primary one. An empty record yields []string{SecondaryFallback}.
func (c *Classifier) Secondary(record *model.ChannelRecord, count int) []string {
	if record.IsEmpty() {
		return []string{SecondaryFallback}
	}
	return secondaryOf(c.Score(record), count)
}

func secondaryOf(scores Scores, count int) []string {
	ranked := Rank(scores)
	end := min(1+max(count, 0), len(ranked))
	return lo.Map(ranked[1:end], func(cat Category, _ int) string {
		return cat.String()
	})
}

// Classify runs one scoring pass and returns both primary and secondary tones.
func (c *Classifier) Classify(record *model.ChannelRecord, count int) Result {
	if record.IsEmpty() {
		return Result{
			Primary:   DefaultPrimary,
			Secondary: []string{SecondaryFallback},
		}
	}
	scores := c.Score(record)
	return Result{
		Primary:   primaryOf(scores),
		Secondary: secondaryOf(scores, count),
		Scores:    scores,
	}
}
