package service

import (
	"context"
	"testing"
	"time"

	"crewpulse/internal/model"
	"crewpulse/internal/repository"
)

func testEmployee(vessel string) *model.User {
	return &model.User{
		ID:         "u1",
		Name:       "Maria Santos",
		Role:       model.RoleEmployee,
		EmployeeID: "EMP-001",
		Vessel:     vessel,
		Department: "Deck",
		IsActive:   true,
	}
}

func TestIssueTodayFallbackOnGeneratorFailure(t *testing.T) {
	repo := newFakeWellnessRepo()
	svc := NewQuestionService(repo, newFakeQuestionCache(), &stubGenerator{})

	issued, err := svc.IssueToday(context.Background(), testEmployee(""))
	if err != nil {
		t.Fatalf("IssueToday: %v", err)
	}
	if len(issued.Questions) != questionCount {
		t.Fatalf("got %d questions, want %d", len(issued.Questions), questionCount)
	}
	if issued.AlreadyCompleted {
		t.Error("fresh assessment marked completed")
	}
	if issued.Questions[3] != "How satisfied are you with your work today?" {
		t.Errorf("shore-based question 4 = %q", issued.Questions[3])
	}
}

func TestIssueTodayVesselVariants(t *testing.T) {
	repo := newFakeWellnessRepo()
	svc := NewQuestionService(repo, newFakeQuestionCache(), &stubGenerator{})

	issued, err := svc.IssueToday(context.Background(), testEmployee("MV Northern Star"))
	if err != nil {
		t.Fatalf("IssueToday: %v", err)
	}
	if issued.Questions[3] != "How are you managing being away from home?" {
		t.Errorf("vessel question 4 = %q", issued.Questions[3])
	}
	if issued.Questions[4] != "Are you comfortable with the safety conditions on board?" {
		t.Errorf("vessel question 5 = %q", issued.Questions[4])
	}
}

func TestIssueTodaySameDayReturnsSameSet(t *testing.T) {
	repo := newFakeWellnessRepo()
	svc := NewQuestionService(repo, newFakeQuestionCache(), &stubGenerator{})
	user := testEmployee("")

	first, err := svc.IssueToday(context.Background(), user)
	if err != nil {
		t.Fatalf("first IssueToday: %v", err)
	}
	second, err := svc.IssueToday(context.Background(), user)
	if err != nil {
		t.Fatalf("second IssueToday: %v", err)
	}

	if first.CheckID != second.CheckID {
		t.Errorf("check IDs differ: %q vs %q", first.CheckID, second.CheckID)
	}
	for i := range first.Questions {
		if first.Questions[i] != second.Questions[i] {
			t.Errorf("question %d differs: %q vs %q", i, first.Questions[i], second.Questions[i])
		}
	}
	if repo.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", repo.createCalls)
	}
}

func TestIssueTodayCompletedFlag(t *testing.T) {
	repo := newFakeWellnessRepo()
	now := time.Now()
	repo.byID["wc-done"] = &model.WellnessCheck{
		ID:          "wc-done",
		UserID:      "u1",
		Day:         model.DayKey(now),
		Questions:   []string{"q1", "q2", "q3", "q4", "q5"},
		CompletedAt: &now,
	}
	svc := NewQuestionService(repo, newFakeQuestionCache(), &stubGenerator{})

	issued, err := svc.IssueToday(context.Background(), testEmployee(""))
	if err != nil {
		t.Fatalf("IssueToday: %v", err)
	}
	if !issued.AlreadyCompleted {
		t.Error("completed assessment not flagged")
	}
	if issued.CheckID != "wc-done" {
		t.Errorf("check ID = %q, want wc-done", issued.CheckID)
	}
}

func TestIssueTodayRaceLostServesWinner(t *testing.T) {
	repo := newFakeWellnessRepo()
	repo.createErr = repository.ErrDuplicateCheckIn
	repo.winner = &model.WellnessCheck{
		ID:        "wc-winner",
		UserID:    "u1",
		Day:       model.DayKey(time.Now()),
		Questions: []string{"w1", "w2", "w3", "w4", "w5"},
	}
	svc := NewQuestionService(repo, newFakeQuestionCache(), &stubGenerator{})

	issued, err := svc.IssueToday(context.Background(), testEmployee(""))
	if err != nil {
		t.Fatalf("IssueToday: %v", err)
	}
	if issued.CheckID != "wc-winner" {
		t.Errorf("check ID = %q, want the race winner's wc-winner", issued.CheckID)
	}
	if issued.Questions[0] != "w1" {
		t.Errorf("questions = %v, want the winner's set", issued.Questions)
	}
}

func TestGenerateQuestionsUsesCache(t *testing.T) {
	repo := newFakeWellnessRepo()
	qc := newFakeQuestionCache()
	user := testEmployee("")
	day := model.DayKey(time.Now())
	cached := []string{"c1", "c2", "c3", "c4", "c5"}
	qc.data[user.ID+"|"+day] = cached

	gen := &stubGenerator{questions: []string{"g1", "g2", "g3", "g4", "g5"}}
	svc := NewQuestionService(repo, qc, gen)

	issued, err := svc.IssueToday(context.Background(), user)
	if err != nil {
		t.Fatalf("IssueToday: %v", err)
	}
	if issued.Questions[0] != "c1" {
		t.Errorf("questions = %v, want cached set", issued.Questions)
	}
	if gen.qCalls != 0 {
		t.Errorf("generator called %d times despite cache hit", gen.qCalls)
	}
}

func TestGenerateQuestionsCachesGeneratedSet(t *testing.T) {
	repo := newFakeWellnessRepo()
	qc := newFakeQuestionCache()
	gen := &stubGenerator{questions: []string{"g1", "g2", "g3", "g4", "g5"}}
	svc := NewQuestionService(repo, qc, gen)

	if _, err := svc.IssueToday(context.Background(), testEmployee("")); err != nil {
		t.Fatalf("IssueToday: %v", err)
	}
	if qc.sets != 1 {
		t.Errorf("cache sets = %d, want 1", qc.sets)
	}
}
