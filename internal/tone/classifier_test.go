package tone

import (
	"slices"
	"testing"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/model"
)

func newDefaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultKeywords())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

func record(title string, videos ...string) *model.ChannelRecord {
	r := &model.ChannelRecord{Title: title}
	for _, v := range videos {
		r.Videos = append(r.Videos, model.VideoSummary{Title: v})
	}
	return r
}

func TestClassify_EmptyRecord(t *testing.T) {
	c := newDefaultClassifier(t)

	for name, rec := range map[string]*model.ChannelRecord{
		"nil":        nil,
		"zero value": {},
	} {
		t.Run(name, func(t *testing.T) {
			if got := c.Primary(rec); got != Informative {
				t.Errorf("Primary = %s, want Informative", got)
			}
			got := c.Secondary(rec, DefaultSecondaryCount)
			if !slices.Equal(got, []string{SecondaryFallback}) {
				t.Errorf("Secondary = %v, want [%s]", got, SecondaryFallback)
			}
			res := c.Classify(rec, 3)
			if res.Primary != Informative || !slices.Equal(res.Secondary, []string{SecondaryFallback}) {
				t.Errorf("Classify = %+v, want Informative/[Conversational]", res)
			}
		})
	}
}

func TestPrimary_NoMatchesFallsBackToInformative(t *testing.T) {
	c := newDefaultClassifier(t)
	rec := record("Quiet channel", "untitled upload")

	if got := c.Primary(rec); got != Informative {
		t.Errorf("Primary = %s, want Informative", got)
	}
	// Non-empty record with no matches still ranks by declaration order.
	got := c.Secondary(rec, 2)
	want := []string{"Entertaining", "Inspirational"}
	if !slices.Equal(got, want) {
		t.Errorf("Secondary = %v, want %v", got, want)
	}
}

func TestClassify_TutorialChannel(t *testing.T) {
	c := newDefaultClassifier(t)
	rec := record("Tutorial hub", "Another tutorial", "Beginner guide", "funny outtakes")

	res := c.Classify(rec, DefaultSecondaryCount)
	if res.Primary != Informative {
		t.Errorf("Primary = %s, want Informative", res.Primary)
	}
	if got := res.Scores.Of(Informative); got != 3 {
		t.Errorf("Informative score = %d, want 3", got)
	}
	if got := res.Scores.Of(Entertaining); got != 1 {
		t.Errorf("Entertaining score = %d, want 1", got)
	}
	want := []string{"Entertaining", "Inspirational"}
	if !slices.Equal(res.Secondary, want) {
		t.Errorf("Secondary = %v, want %v", res.Secondary, want)
	}
}

func TestScore_WordBoundary(t *testing.T) {
	table := NewKeywordTable(map[Category][]string{
		Informative: {"ed"},
		Educational: {"education"},
	})
	c, err := NewClassifier(table)
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}

	scores := c.Score(record("Education for everyone"))
	if got := scores.Of(Informative); got != 0 {
		t.Errorf("'ed' matched inside 'education': score = %d, want 0", got)
	}
	if got := scores.Of(Educational); got != 1 {
		t.Errorf("Educational score = %d, want 1", got)
	}
	if got := c.Primary(record("Education for everyone")); got != Educational {
		t.Errorf("Primary = %s, want Educational", got)
	}
}

func TestScore_Cases(t *testing.T) {
	c := newDefaultClassifier(t)

	tests := []struct {
		name string
		text string
		cat  Category
		want int
	}{
		{"case insensitive", "LEARN and Learn and learn", Informative, 3},
		{"prefix is not a match", "funny", Entertaining, 1},
		{"suffix is not a match", "never", Dramatic, 1},
		{"never and ever", "never ever", Dramatic, 2},
		{"multi word phrase", "how to bake bread", Informative, 1},
		{"phrase needs leading boundary", "show to friends", Informative, 0},
		{"hyphenated trigger", "a laid-back vlog", Casual, 2},
		{"punctuation is a boundary", "(vs.) review!", Persuasive, 2},
		{"underscore joins words", "fun_times", Entertaining, 0},
		{"duplicate trigger counts twice", "entertainment", Entertaining, 2},
		{"shared trigger scores both", "my perspective", Thoughtful, 1},
		{"non-ascii letter blocks boundary", "lifé", Thoughtful, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Score(record(tt.text)).Of(tt.cat)
			if got != tt.want {
				t.Errorf("Score(%q)[%s] = %d, want %d", tt.text, tt.cat, got, tt.want)
			}
		})
	}
}

func TestScore_AllFieldsContribute(t *testing.T) {
	c := newDefaultClassifier(t)
	rec := &model.ChannelRecord{
		Title:       "learn",
		Description: "learn",
		Keywords:    "learn",
		Videos: []model.VideoSummary{
			{Title: "learn", Description: "learn"},
			{Title: "", Description: "learn"},
		},
	}
	if got := c.Score(rec).Of(Informative); got != 6 {
		t.Errorf("Informative score = %d, want 6", got)
	}
}

func TestScore_FieldsDoNotRunTogether(t *testing.T) {
	c := newDefaultClassifier(t)
	rec := &model.ChannelRecord{Title: "how", Description: "to"}
	// Fields are joined by a space, so "how to" spans the two fields.
	if got := c.Score(rec).Of(Informative); got != 1 {
		t.Errorf("Informative score = %d, want 1", got)
	}
	rec = &model.ChannelRecord{Title: "fu", Description: "n"}
	if got := c.Score(rec).Of(Entertaining); got != 0 {
		t.Errorf("Entertaining score = %d, want 0", got)
	}
}

func TestPrimary_TieBreakUsesDeclarationOrder(t *testing.T) {
	c := newDefaultClassifier(t)

	tests := []struct {
		name string
		text string
		want Category
	}{
		{"informative before entertaining", "fun learn", Informative},
		{"order in text is irrelevant", "learn fun", Informative},
		{"persuasive before thoughtful on shared trigger", "perspective", Persuasive},
		{"casual before dramatic", "dramatic vlog", Casual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				if got := c.Primary(record(tt.text)); got != tt.want {
					t.Fatalf("call %d: Primary = %s, want %s", i, got, tt.want)
				}
			}
		})
	}
}

func TestSecondary_ExcludesPrimaryAndCapsCount(t *testing.T) {
	c := newDefaultClassifier(t)
	rec := record("Hilarious prank", "career tips", "shocking story", "deep thoughts", "science lecture")

	primary := c.Primary(rec).String()
	for _, count := range []int{0, 1, 2, 3, 8, 20} {
		got := c.Secondary(rec, count)
		if len(got) > count {
			t.Errorf("count=%d: got %d entries", count, len(got))
		}
		if slices.Contains(got, primary) {
			t.Errorf("count=%d: secondary %v contains primary %s", count, got, primary)
		}
	}
	if got := c.Secondary(rec, 20); len(got) != len(Categories)-1 {
		t.Errorf("Secondary(20) has %d entries, want %d", len(got), len(Categories)-1)
	}
	if got := c.Secondary(rec, -1); len(got) != 0 {
		t.Errorf("Secondary(-1) = %v, want empty", got)
	}
}

func TestSecondary_RankedByScore(t *testing.T) {
	c := newDefaultClassifier(t)
	rec := record("career career career", "prank prank", "science")

	res := c.Classify(rec, 3)
	if res.Primary != Professional {
		t.Fatalf("Primary = %s, want Professional", res.Primary)
	}
	want := []string{"Entertaining", "Educational", "Informative"}
	if !slices.Equal(res.Secondary, want) {
		t.Errorf("Secondary = %v, want %v", res.Secondary, want)
	}
}

func TestRank_StableOnEqualScores(t *testing.T) {
	var s Scores
	s[Thoughtful] = 2
	s[Casual] = 2
	s[Informative] = 1

	got := Rank(s)
	want := []Category{Casual, Thoughtful, Informative, Entertaining, Inspirational,
		Educational, Persuasive, Professional, Dramatic}
	if !slices.Equal(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestNewKeywordTable_Normalizes(t *testing.T) {
	table := NewKeywordTable(map[Category][]string{
		Casual:       {"  Chill ", "", "VLOG"},
		Category(42): {"ignored"},
	})
	got := table.Keywords(Casual)
	if !slices.Equal(got, []string{"chill", "vlog"}) {
		t.Errorf("Keywords(Casual) = %v", got)
	}
	got[0] = "mutated"
	if table.Keywords(Casual)[0] != "chill" {
		t.Error("Keywords must return a copy")
	}
	if table.Keywords(Category(42)) != nil {
		t.Error("unknown category should have no keywords")
	}
}

func TestNewClassifier_EmptyTable(t *testing.T) {
	c, err := NewClassifier(NewKeywordTable(nil))
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	if got := c.Primary(record("learn everything")); got != Informative {
		t.Errorf("Primary = %s, want Informative", got)
	}
	if _, err := NewClassifier(nil); err == nil {
		t.Error("expected error for nil table")
	}
}

func TestCategory_String(t *testing.T) {
	if Thoughtful.String() != "Thoughtful" {
		t.Errorf("Thoughtful.String() = %q", Thoughtful.String())
	}
	if Category(-1).String() != "Unknown" {
		t.Errorf("Category(-1).String() = %q", Category(-1).String())
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" casual "); !ok || c != Casual {
		t.Errorf("ParseCategory(casual) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("Conversational"); ok {
		t.Error("Conversational is not a category")
	}
}
