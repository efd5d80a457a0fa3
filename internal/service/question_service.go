package service

import (
	"context"
	"log"
	"time"

	"crewpulse/internal/cache"
	"crewpulse/internal/model"
	"crewpulse/internal/repository"
)

// questionCount is the fixed size of a daily assessment.
const questionCount = 5

// recentScoreWindow is how many completed assessments feed personalization.
const recentScoreWindow = 7

// QuestionService issues the daily 5-question assessment. Generation is
// AI-backed with a deterministic fallback; a generation outage must never
// block an employee from checking in.
type QuestionService struct {
	wellnessRepo  repository.WellnessRepo
	questionCache cache.QuestionCache
	generator     TextGenerator
}

// NewQuestionService creates a new question service.
func NewQuestionService(wellnessRepo repository.WellnessRepo, questionCache cache.QuestionCache, generator TextGenerator) *QuestionService {
	return &QuestionService{
		wellnessRepo:  wellnessRepo,
		questionCache: questionCache,
		generator:     generator,
	}
}

// IssueToday returns today's question set for the user, generating and
// persisting it on first access. Re-fetching before completion returns
// the same set.
func (s *QuestionService) IssueToday(ctx context.Context, user *model.User) (*model.IssuedQuestions, error) {
	now := time.Now()
	day := model.DayKey(now)

	existing, err := s.wellnessRepo.FindByUserAndDay(ctx, user.ID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil && len(existing.Questions) > 0 {
		return &model.IssuedQuestions{
			CheckID:          existing.ID,
			Questions:        existing.Questions,
			AlreadyCompleted: existing.IsCompleted(),
		}, nil
	}

	questions := s.generateQuestions(ctx, user, day)

	check := &model.WellnessCheck{
		UserID:     user.ID,
		EmployeeID: user.EmployeeID,
		Date:       model.StartOfDay(now),
		Day:        day,
		Questions:  questions,
		Responses:  []model.WellnessResponse{},
	}
	if err := s.wellnessRepo.Create(ctx, check); err != nil {
		if err == repository.ErrDuplicateCheckIn {
			// Lost a same-day race; serve the winner's set.
			winner, ferr := s.wellnessRepo.FindByUserAndDay(ctx, user.ID, day)
			if ferr != nil {
				return nil, ferr
			}
			if winner != nil {
				return &model.IssuedQuestions{
					CheckID:          winner.ID,
					Questions:        winner.Questions,
					AlreadyCompleted: winner.IsCompleted(),
				}, nil
			}
		}
		return nil, err
	}

	return &model.IssuedQuestions{CheckID: check.ID, Questions: questions}, nil
}

// generateQuestions produces today's set, consulting the day cache first
// and absorbing every generator failure into the fallback set.
func (s *QuestionService) generateQuestions(ctx context.Context, user *model.User, day string) []string {
	if cached, err := s.questionCache.Get(ctx, user.ID, day); err == nil && len(cached) == questionCount {
		return cached
	}

	recent, err := s.wellnessRepo.RecentCompleted(ctx, user.ID, recentScoreWindow)
	if err != nil {
		log.Printf("question generation: loading recent scores for %s: %v", user.ID, err)
	}
	scores := make([]float64, 0, len(recent))
	for _, check := range recent {
		scores = append(scores, float64(check.OverallScore)/20) // 0-100 -> 1-5 scale
	}

	questions, err := s.generator.GenerateQuestions(ctx, user.Profile(), scores)
	if err != nil {
		log.Printf("question generation failed for %s, using fallback: %v", user.ID, err)
		questions = fallbackQuestions(user.Profile())
	}

	if err := s.questionCache.Set(ctx, user.ID, day, questions); err != nil {
		log.Printf("question cache write for %s: %v", user.ID, err)
	}
	return questions
}

// fallbackQuestions is the fixed deterministic set used whenever the
// generative backend is unavailable. Employees with a vessel assignment
// get two sea-specific variants.
func fallbackQuestions(employee *model.EmployeeProfile) []string {
	questions := []string{
		"How are you feeling physically today?",
		"What's your energy level like right now?",
		"How would you rate your stress level today?",
		"How satisfied are you with your work today?",
		"Is there anything specific worrying you today?",
	}

	if employee.Vessel != "" {
		questions[3] = "How are you managing being away from home?"
		questions[4] = "Are you comfortable with the safety conditions on board?"
	}

	return questions
}
