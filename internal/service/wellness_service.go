package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse/internal/model"
	"crewpulse/internal/repository"
)

var (
	ErrCheckNotFound = errors.New("wellness check not found")
	ErrNotOwner      = errors.New("unauthorized access to wellness check")
)

// SubmitAssessmentRequest is a completed set of answers for an issued
// assessment.
type SubmitAssessmentRequest struct {
	CheckID          string         `json:"checkId"`
	Responses        []model.QAPair `json:"responses"`
	Mood             string         `json:"mood,omitempty"`
	StressLevel      int            `json:"stressLevel,omitempty"`
	EnergyLevel      int            `json:"energyLevel,omitempty"`
	WorkSatisfaction int            `json:"workSatisfaction,omitempty"`
}

// AssessmentResult is returned to the employee after completion.
type AssessmentResult struct {
	CheckID        string   `json:"checkId"`
	WellnessScore  int      `json:"wellnessScore"`
	Insights       []string `json:"insights"`
	ResponseScores []int    `json:"responseScores"`
}

// WellnessService drives the structured assessment through its two-phase
// lifecycle: issued (questions generated, unanswered) then completed
// (scored, immutable).
type WellnessService struct {
	wellnessRepo repository.WellnessRepo
	questions    *QuestionService
	scoring      *ScoringService
}

// NewWellnessService creates a new wellness service.
func NewWellnessService(wellnessRepo repository.WellnessRepo, questions *QuestionService, scoring *ScoringService) *WellnessService {
	return &WellnessService{
		wellnessRepo: wellnessRepo,
		questions:    questions,
		scoring:      scoring,
	}
}

// IssueQuestions returns (or creates) today's question set for the user.
func (s *WellnessService) IssueQuestions(ctx context.Context, user *model.User) (*model.IssuedQuestions, error) {
	return s.questions.IssueToday(ctx, user)
}

// Submit completes an issued assessment exactly once. Scoring and
// persistence are a single step: a failed write leaves no partial score.
func (s *WellnessService) Submit(ctx context.Context, user *model.User, req *SubmitAssessmentRequest) (*AssessmentResult, error) {
	if req.CheckID == "" || len(req.Responses) == 0 {
		return nil, fmt.Errorf("%w: check id and responses are required", ErrValidation)
	}

	check, err := s.wellnessRepo.GetByID(ctx, req.CheckID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, ErrCheckNotFound
	}
	if check.UserID != user.ID {
		return nil, ErrNotOwner
	}
	if check.IsCompleted() {
		return nil, repository.ErrAlreadyCompleted
	}
	if len(req.Responses) != len(check.Questions) {
		return nil, fmt.Errorf("%w: expected %d responses, got %d", ErrValidation, len(check.Questions), len(req.Responses))
	}
	for i, r := range req.Responses {
		if r.Answer == "" {
			return nil, fmt.Errorf("%w: answer %d is empty", ErrValidation, i+1)
		}
	}
	if err := validateLevel("stressLevel", req.StressLevel); err != nil {
		return nil, err
	}
	if err := validateLevel("energyLevel", req.EnergyLevel); err != nil {
		return nil, err
	}
	if err := validateLevel("workSatisfaction", req.WorkSatisfaction); err != nil {
		return nil, err
	}

	result := s.scoring.ScoreAssessment(ctx, user.Profile(), req.Responses)

	scored := make([]model.WellnessResponse, len(req.Responses))
	responseScores := make([]int, len(req.Responses))
	for i, r := range req.Responses {
		score := ScoreResponse(r.Answer)
		scored[i] = model.WellnessResponse{Question: r.Question, Answer: r.Answer, Score: score}
		responseScores[i] = score
	}

	now := time.Now()
	check.Responses = scored
	check.OverallScore = result.Score
	check.CompletedAt = &now
	check.Mood = req.Mood
	check.StressLevel = req.StressLevel
	check.EnergyLevel = req.EnergyLevel
	check.WorkSatisfaction = req.WorkSatisfaction
	check.Insights = result.Insights

	if err := s.wellnessRepo.Complete(ctx, check); err != nil {
		return nil, err
	}

	return &AssessmentResult{
		CheckID:        check.ID,
		WellnessScore:  result.Score,
		Insights:       result.Insights,
		ResponseScores: responseScores,
	}, nil
}

func validateLevel(name string, v int) error {
	if v == 0 {
		return nil // optional
	}
	if v < 1 || v > 10 {
		return fmt.Errorf("%w: %s must be between 1 and 10", ErrValidation, name)
	}
	return nil
}
