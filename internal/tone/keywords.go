package tone

import "strings"

// Category is a tone label. The declaration order is the ranking tie-break
// order: on equal scores the earlier category wins.
type Category int

const (
	Informative Category = iota
	Entertaining
	Inspirational
	Educational
	Persuasive
	Professional
	Casual
	Dramatic
	Thoughtful

	categoryCount = iota
)

var categoryNames = [categoryCount]string{
	"Informative",
	"Entertaining",
	"Inspirational",
	"Educational",
	"Persuasive",
	"Professional",
	"Casual",
	"Dramatic",
	"Thoughtful",
}

// Categories lists every tone in declaration order.
var Categories = []Category{
	Informative, Entertaining, Inspirational, Educational, Persuasive,
	Professional, Casual, Dramatic, Thoughtful,
}

func (c Category) String() string {
	if c < 0 || int(c) >= categoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// ParseCategory looks up a category by name, ignoring case and surrounding
// space.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(categoryNames[c], name) {
			return c, true
		}
	}
	return 0, false
}

// KeywordTable maps every category to its ordered trigger list. It is never
// mutated after construction.
type KeywordTable struct {
	lists [categoryCount][]string
}

// NewKeywordTable copies lists into a table. Triggers are trimmed and
// lowercased; blank ones are dropped. Repeated triggers are kept and count
// once per listing.
func NewKeywordTable(lists map[Category][]string) *KeywordTable {
	t := &KeywordTable{}
	for c, words := range lists {
		if c < 0 || int(c) >= categoryCount {
			continue
		}
		out := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				out = append(out, w)
			}
		}
		t.lists[c] = out
	}
	return t
}

// Keywords returns a copy of the triggers for c.
func (t *KeywordTable) Keywords(c Category) []string {
	if c < 0 || int(c) >= categoryCount {
		return nil
	}
	return append([]string(nil), t.lists[c]...)
}

// DefaultKeywords returns the built-in trigger table.
//
// Entertaining lists "entertainment" twice, so each occurrence scores 2.
// "opinion" and "perspective" belong to both Persuasive and Thoughtful.
func DefaultKeywords() *KeywordTable {
	return NewKeywordTable(map[Category][]string{
		Informative: {
			"learn", "discover", "understand", "explain", "guide",
			"tutorial", "how to", "tips", "facts", "knowledge",
			"comprehensive", "detailed", "instruction",
		},
		Entertaining: {
			"fun", "laugh", "crazy", "hilarious", "entertainment",
			"amusing", "comedy", "funny", "humor", "prank", "joke",
			"parody", "satire", "entertainment",
		},
		Inspirational: {
			"motivate", "inspire", "dream", "achieve", "success",
			"journey", "overcome", "story", "inspiration", "transformation",
			"personal development", "growth", "empower",
		},
		Educational: {
			"study", "education", "school", "college", "university",
			"lecture", "academic", "research", "science", "mathematics",
			"history", "analysis", "experiment", "theory",
		},
		Persuasive: {
			"convince", "review", "recommend", "best", "worst",
			"should", "opinion", "versus", "vs", "compare", "comparison",
			"debate", "argument", "perspective",
		},
		Professional: {
			"business", "industry", "professional", "corporate", "career",
			"job", "interview", "workplace", "strategy", "management",
			"leadership", "entrepreneur", "startup", "innovation",
		},
		Casual: {
			"chat", "hangout", "vlog", "day in the life", "chill",
			"relaxed", "informal", "personal", "lifestyle", "everyday",
			"routine", "casual", "laid-back", "conversational",
		},
		Dramatic: {
			"shocking", "dramatic", "unbelievable", "never", "ever",
			"incredible", "amazing", "mind-blowing", "intense", "emotional",
			"revelation", "unexpected", "surprise", "suspense",
		},
		Thoughtful: {
			"reflection", "perspective", "thoughts", "opinion", "contemplation",
			"philosophy", "meaning", "purpose", "life", "existential",
			"deep", "thoughtful", "insightful", "wisdom",
		},
	})
}
