package sentiment

import (
	"errors"
	"math"
	"strings"

	"crewpulse/internal/model"
)

// MaxInputLength is the longest accepted mood input.
const MaxInputLength = 1000

var (
	ErrEmptyInput   = errors.New("mood input is required")
	ErrInputTooLong = errors.New("mood input cannot be more than 1000 characters")
)

// Keyword phrases are matched as case-insensitive substrings of the whole
// input, so multi-word phrases like "hard time" still hit.
var stressKeywords = []string{
	"overwhelmed", "exhausted", "burned out", "anxious", "stressed",
	"depressed", "lonely", "isolated", "worried", "scared", "panicked",
	"frustrated", "angry", "irritated", "hopeless", "helpless",
	"tired", "drained", "struggling", "difficult", "hard time",
	"can't cope", "breaking down", "falling apart",
}

var highRiskKeywords = []string{
	"suicide", "kill myself", "end it all", "worthless", "no point",
	"give up", "can't go on", "better off dead", "harm myself",
	"self harm", "cutting", "hurt myself",
}

var positiveKeywords = []string{
	"happy", "joyful", "excited", "grateful", "blessed", "wonderful",
	"amazing", "fantastic", "great", "excellent", "peaceful", "calm",
	"relaxed", "energized", "motivated", "optimistic", "confident",
	"proud", "satisfied", "content", "thankful",
}

// Analysis is the full classifier output for one piece of text.
type Analysis struct {
	Score           int                `json:"score"`           // raw lexical sum
	NormalizedScore float64            `json:"normalizedScore"` // -1 to 1
	WellnessScore   int                `json:"wellnessScore"`   // 0-100
	Category        model.MoodCategory `json:"category"`
	Tokens          []string           `json:"tokens"`
	PositiveWords   []string           `json:"positiveWords"`
	NegativeWords   []string           `json:"negativeWords"`
}

// Analyze classifies free mood text into a wellness score and category.
// It is deterministic and has no side effects; the only failure modes are
// empty and over-length input.
func Analyze(text string) (*Analysis, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	if len(text) > MaxInputLength {
		return nil, ErrInputTooLong
	}

	tokens := tokenize(trimmed)
	score := 0
	var positive, negative []string
	for _, tok := range tokens {
		weight, ok := lexicon[tok]
		if !ok {
			continue
		}
		score += weight
		if weight > 0 {
			positive = append(positive, tok)
		} else {
			negative = append(negative, tok)
		}
	}

	normalized := clampFloat(float64(score)/10, -1, 1)
	lower := strings.ToLower(trimmed)

	hasHighRisk := containsAny(lower, highRiskKeywords)
	hasStress := containsAny(lower, stressKeywords)
	hasPositive := containsAny(lower, positiveKeywords)

	// First match wins: high-risk keywords always dominate the lexical score.
	var category model.MoodCategory
	switch {
	case hasHighRisk || normalized <= -0.8:
		category = model.MoodHighRisk
	case hasStress || normalized <= -0.3:
		category = model.MoodStressed
	case hasPositive || normalized >= 0.3:
		category = model.MoodPositive
	default:
		category = model.MoodNeutral
	}

	wellness := 50 + normalized*50
	switch {
	case hasHighRisk:
		wellness = math.Min(wellness, 20)
	case hasStress:
		wellness = math.Min(wellness, 40)
	case hasPositive:
		wellness = math.Max(wellness, 70)
	}
	wellnessScore := int(clampFloat(math.Round(wellness), 0, 100))

	return &Analysis{
		Score:           score,
		NormalizedScore: normalized,
		WellnessScore:   wellnessScore,
		Category:        category,
		Tokens:          tokens,
		PositiveWords:   positive,
		NegativeWords:   negative,
	}, nil
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= '0' && r <= '9' {
			return false
		}
		return r != '\''
	})
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
