package sentiment

import (
	"errors"
	"strings"
	"testing"

	"crewpulse/internal/model"
)

func TestAnalyzeCategories(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category model.MoodCategory
	}{
		{"positive keyword", "I'm grateful and feeling great today!", model.MoodPositive},
		{"stress keyword", "I feel overwhelmed and exhausted today", model.MoodStressed},
		{"high risk keyword", "Honestly I feel worthless, there is no point anymore", model.MoodHighRisk},
		{"neutral", "The crew rotation schedule changed again", model.MoodNeutral},
		{"lexical positive without keyword", "Slept well, food was good, watch went fine", model.MoodPositive},
		{"high risk phrase inside sentence", "some days I just want to give up completely", model.MoodHighRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Analyze(tt.input)
			if err != nil {
				t.Fatalf("Analyze(%q): %v", tt.input, err)
			}
			if a.Category != tt.category {
				t.Errorf("Analyze(%q) category = %s, want %s", tt.input, a.Category, tt.category)
			}
		})
	}
}

func TestAnalyzeScoreCaps(t *testing.T) {
	// High-risk keywords cap the wellness score at 20 regardless of how
	// positive the surrounding text reads.
	a, err := Analyze("I feel great and happy but sometimes think about suicide")
	if err != nil {
		t.Fatal(err)
	}
	if a.Category != model.MoodHighRisk {
		t.Errorf("category = %s, want %s", a.Category, model.MoodHighRisk)
	}
	if a.WellnessScore > 20 {
		t.Errorf("wellness score = %d, want <= 20", a.WellnessScore)
	}

	a, err = Analyze("I feel overwhelmed and exhausted today")
	if err != nil {
		t.Fatal(err)
	}
	if a.WellnessScore > 40 {
		t.Errorf("stressed wellness score = %d, want <= 40", a.WellnessScore)
	}

	a, err = Analyze("I'm grateful and feeling great today!")
	if err != nil {
		t.Fatal(err)
	}
	if a.WellnessScore < 70 {
		t.Errorf("positive wellness score = %d, want >= 70", a.WellnessScore)
	}
}

func TestAnalyzeNeutralBand(t *testing.T) {
	a, err := Analyze("The crew rotation schedule changed again")
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != 0 {
		t.Errorf("raw score = %d, want 0", a.Score)
	}
	if a.WellnessScore != 50 {
		t.Errorf("wellness score = %d, want 50", a.WellnessScore)
	}
}

func TestAnalyzeBounds(t *testing.T) {
	inputs := []string{
		"sad sad sad sad sad sad sad sad sad sad",
		"great great great great great great great great",
		"hmm",
	}
	for _, in := range inputs {
		a, err := Analyze(in)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", in, err)
		}
		if a.WellnessScore < 0 || a.WellnessScore > 100 {
			t.Errorf("Analyze(%q) wellness score = %d, out of [0,100]", in, a.WellnessScore)
		}
		if a.NormalizedScore < -1 || a.NormalizedScore > 1 {
			t.Errorf("Analyze(%q) normalized score = %f, out of [-1,1]", in, a.NormalizedScore)
		}
	}
}

func TestAnalyzeWordLists(t *testing.T) {
	a, err := Analyze("Feeling happy but a bit tired after a hard shift")
	if err != nil {
		t.Fatal(err)
	}
	if len(a.PositiveWords) == 0 || a.PositiveWords[0] != "happy" {
		t.Errorf("positive words = %v, want [happy]", a.PositiveWords)
	}
	if len(a.NegativeWords) != 2 {
		t.Errorf("negative words = %v, want [tired hard]", a.NegativeWords)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	if _, err := Analyze("   "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("blank input error = %v, want ErrEmptyInput", err)
	}
	if _, err := Analyze(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input error = %v, want ErrEmptyInput", err)
	}
	long := strings.Repeat("a", MaxInputLength+1)
	if _, err := Analyze(long); !errors.Is(err, ErrInputTooLong) {
		t.Errorf("long input error = %v, want ErrInputTooLong", err)
	}
}
