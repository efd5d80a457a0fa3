package service

import (
	"context"
	"testing"

	"crewpulse/internal/model"
)

func TestScoreAssessmentFallback(t *testing.T) {
	svc := NewScoringService(&stubGenerator{})
	employee := testEmployee("").Profile()

	responses := []model.QAPair{
		{Question: "q1", Answer: "A long detailed answer about how the day went"}, // > 20 chars, 70
		{Question: "q2", Answer: "fine"},                                          // short, 40
	}
	result := svc.ScoreAssessment(context.Background(), employee, responses)
	if result.Score != 55 {
		t.Errorf("fallback score = %d, want 55", result.Score)
	}
	if len(result.Insights) != 1 || result.Insights[0] != fallbackInsight {
		t.Errorf("fallback insights = %v", result.Insights)
	}
}

func TestScoreAssessmentFallbackEmpty(t *testing.T) {
	svc := NewScoringService(&stubGenerator{})
	result := svc.ScoreAssessment(context.Background(), testEmployee("").Profile(), nil)
	if result.Score != 50 {
		t.Errorf("empty fallback score = %d, want 50", result.Score)
	}
}

func TestScoreAssessmentClampsGeneratorScore(t *testing.T) {
	gen := &stubGenerator{result: &model.ScoreResult{Score: 150, Insights: []string{"x"}}}
	svc := NewScoringService(gen)

	result := svc.ScoreAssessment(context.Background(), testEmployee("").Profile(), []model.QAPair{{Question: "q", Answer: "a"}})
	if result.Score != 100 {
		t.Errorf("score = %d, want clamped 100", result.Score)
	}
	if gen.sCalls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.sCalls)
	}
}

func TestScoreResponse(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"short positive", "good", 4},
		{"short negative", "bad", 2},
		{"long positive", "I am feeling good and well and happy overall today, things are positive", 5},
		{"negative pair", "tired and stressed", 1},
		{"neutral medium length", "It was an ordinary day at sea", 3},
		{"one word neutral", "ok", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreResponse(tt.answer); got != tt.want {
				t.Errorf("ScoreResponse(%q) = %d, want %d", tt.answer, got, tt.want)
			}
		})
	}
}

func TestScoreResponseRange(t *testing.T) {
	answers := []string{
		"", "great great great great great great great great great great great",
		"terrible awful bad stressed tired overwhelmed difficult",
	}
	for _, a := range answers {
		got := ScoreResponse(a)
		if got < 1 || got > 5 {
			t.Errorf("ScoreResponse(%q) = %d, out of [1,5]", a, got)
		}
	}
}
