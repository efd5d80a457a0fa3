package service

import (
	"context"
	"log"
	"math"
	"strings"

	"crewpulse/internal/model"
)

// Word lists for the per-response 1-5 lexical score. Matched as
// substrings of the lower-cased answer, each list word counted once.
var responsePositiveWords = []string{
	"good", "great", "excellent", "fine", "well", "positive", "happy", "satisfied",
}

var responseNegativeWords = []string{
	"bad", "terrible", "awful", "stressed", "tired", "overwhelmed", "difficult",
}

// fallbackInsight is returned when the generative backend cannot produce
// detailed insights.
const fallbackInsight = "Unable to generate detailed insights at this time."

// ScoringService converts a completed set of answers into an overall
// wellness score plus insights, and scores each answer individually for
// persistence.
type ScoringService struct {
	generator TextGenerator
}

// NewScoringService creates a new scoring service.
func NewScoringService(generator TextGenerator) *ScoringService {
	return &ScoringService{generator: generator}
}

// ScoreAssessment produces the 0-100 overall score and insights for a
// set of responses. Generator failures are absorbed into the
// deterministic length heuristic and never surface to the caller.
func (s *ScoringService) ScoreAssessment(ctx context.Context, employee *model.EmployeeProfile, responses []model.QAPair) *model.ScoreResult {
	result, err := s.generator.ScoreResponses(ctx, employee, responses)
	if err != nil {
		log.Printf("response scoring failed for %s, using fallback: %v", employee.ID, err)
		return fallbackScore(responses)
	}
	result.Score = clampInt(result.Score, 0, 100)
	return result
}

// fallbackScore is the deterministic heuristic: detailed answers count 70,
// short ones 40, overall score is the rounded mean.
func fallbackScore(responses []model.QAPair) *model.ScoreResult {
	if len(responses) == 0 {
		return &model.ScoreResult{Score: 50, Insights: []string{fallbackInsight}}
	}

	total := 0
	for _, r := range responses {
		if len(r.Answer) > 20 {
			total += 70
		} else {
			total += 40
		}
	}

	return &model.ScoreResult{
		Score:    int(math.Round(float64(total) / float64(len(responses)))),
		Insights: []string{fallbackInsight},
	}
}

// ScoreResponse gives a single answer a 1-5 score from word polarity and
// answer length. Used for the persisted per-response breakdown, not for
// the overall score.
func ScoreResponse(answer string) int {
	lower := strings.ToLower(answer)

	positiveCount := 0
	for _, word := range responsePositiveWords {
		if strings.Contains(lower, word) {
			positiveCount++
		}
	}
	negativeCount := 0
	for _, word := range responseNegativeWords {
		if strings.Contains(lower, word) {
			negativeCount++
		}
	}

	score := 3.0
	if positiveCount > negativeCount {
		score = math.Min(5, float64(3+positiveCount))
	} else if negativeCount > positiveCount {
		score = math.Max(1, float64(3-negativeCount))
	}

	// Longer answers suggest engagement, one-word answers the opposite.
	if len(answer) > 50 {
		score = math.Min(5, score+0.5)
	}
	if len(answer) < 10 {
		score = math.Max(1, score-0.5)
	}

	return int(math.Round(score))
}
