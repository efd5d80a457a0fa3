package service

import (
	"context"
	"strings"
	"time"

	"crewpulse/internal/model"
	"crewpulse/internal/repository"
	"crewpulse/internal/sentiment"
)

// CheckinService is the gate for the quick free-text path: at most one
// check-in per user per calendar day, classified on submission.
type CheckinService struct {
	checkInRepo repository.CheckInRepo
}

// NewCheckinService creates a new check-in service.
func NewCheckinService(checkInRepo repository.CheckInRepo) *CheckinService {
	return &CheckinService{checkInRepo: checkInRepo}
}

// Submit validates, classifies and persists a quick check-in. Duplicate
// same-day submissions fail with repository.ErrDuplicateCheckIn; the
// unique index catches concurrent races the pre-check cannot see.
func (s *CheckinService) Submit(ctx context.Context, userID, moodInput string, inputType model.InputType) (*model.CheckIn, *sentiment.Analysis, error) {
	now := time.Now()
	day := model.DayKey(now)

	existing, err := s.checkInRepo.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, repository.ErrDuplicateCheckIn
	}

	analysis, err := sentiment.Analyze(moodInput)
	if err != nil {
		return nil, nil, err
	}

	if inputType == "" {
		inputType = model.InputText
	}

	checkIn := &model.CheckIn{
		UserID:         userID,
		Date:           now,
		Day:            day,
		MoodInput:      strings.TrimSpace(moodInput),
		InputType:      inputType,
		SentimentScore: analysis.NormalizedScore,
		WellnessScore:  analysis.WellnessScore,
		MoodCategory:   analysis.Category,
	}
	if err := s.checkInRepo.Insert(ctx, checkIn); err != nil {
		return nil, nil, err
	}

	return checkIn, analysis, nil
}

// History returns the user's check-ins newest first, plus today's record
// when present.
func (s *CheckinService) History(ctx context.Context, userID string, limit, offset int) ([]*model.CheckIn, *model.CheckIn, error) {
	if limit <= 0 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	checkIns, err := s.checkInRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	today, err := s.checkInRepo.FindByUserAndDay(ctx, userID, model.DayKey(time.Now()))
	if err != nil {
		return nil, nil, err
	}

	return checkIns, today, nil
}
