package service

import (
	"context"
	"fmt"
	"time"

	"crewpulse/internal/model"
	"crewpulse/internal/repository"
)

// In-memory fakes for the repository and cache interfaces. Reads return
// copies so service-side mutation of a fetched record never leaks into
// the stored state.

type fakeWellnessRepo struct {
	byID        map[string]*model.WellnessCheck
	createErr   error
	createCalls int
	winner      *model.WellnessCheck // served by FindByUserAndDay after a failed create
	recent      []*model.WellnessCheck
	window      []*model.WellnessCheck
	completed   *model.WellnessCheck
}

func newFakeWellnessRepo() *fakeWellnessRepo {
	return &fakeWellnessRepo{byID: make(map[string]*model.WellnessCheck)}
}

func (f *fakeWellnessRepo) Create(ctx context.Context, check *model.WellnessCheck) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if check.ID == "" {
		check.ID = fmt.Sprintf("wc-%d", len(f.byID)+1)
	}
	cp := *check
	f.byID[check.ID] = &cp
	return nil
}

func (f *fakeWellnessRepo) GetByID(ctx context.Context, id string) (*model.WellnessCheck, error) {
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeWellnessRepo) FindByUserAndDay(ctx context.Context, userID, day string) (*model.WellnessCheck, error) {
	if f.winner != nil && f.createCalls > 0 {
		cp := *f.winner
		return &cp, nil
	}
	for _, c := range f.byID {
		if c.UserID == userID && c.Day == day {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeWellnessRepo) RecentCompleted(ctx context.Context, userID string, limit int) ([]*model.WellnessCheck, error) {
	return f.recent, nil
}

func (f *fakeWellnessRepo) CompletedWindow(ctx context.Context, userID string, start, end time.Time, limit int) ([]*model.WellnessCheck, error) {
	return f.window, nil
}

func (f *fakeWellnessRepo) QueryCompletedWindow(ctx context.Context, start, end time.Time) ([]*model.WellnessCheck, error) {
	return f.window, nil
}

func (f *fakeWellnessRepo) Complete(ctx context.Context, check *model.WellnessCheck) error {
	stored, ok := f.byID[check.ID]
	if !ok || stored.IsCompleted() {
		return repository.ErrAlreadyCompleted
	}
	cp := *check
	f.byID[check.ID] = &cp
	f.completed = &cp
	return nil
}

func (f *fakeWellnessRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeCheckInRepo struct {
	checkIns    []*model.CheckIn
	insertErr   error
	insertCalls int
}

func (f *fakeCheckInRepo) Insert(ctx context.Context, checkIn *model.CheckIn) error {
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	if checkIn.ID == "" {
		checkIn.ID = fmt.Sprintf("ci-%d", len(f.checkIns)+1)
	}
	cp := *checkIn
	f.checkIns = append(f.checkIns, &cp)
	return nil
}

func (f *fakeCheckInRepo) FindByUserAndDay(ctx context.Context, userID, day string) (*model.CheckIn, error) {
	for _, c := range f.checkIns {
		if c.UserID == userID && c.Day == day {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckInRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.CheckIn, error) {
	var out []*model.CheckIn
	for _, c := range f.checkIns {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCheckInRepo) QueryWindow(ctx context.Context, start, end time.Time) ([]*model.CheckIn, error) {
	var out []*model.CheckIn
	for _, c := range f.checkIns {
		if !c.Date.Before(start) && c.Date.Before(end) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCheckInRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListActive(ctx context.Context, role model.Role) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.users {
		if u.Role == role && u.IsActive {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	for _, u := range f.users {
		if u.ID == id {
			u.LastLogin = &at
		}
	}
	return nil
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeQuestionCache struct {
	data map[string][]string
	sets int
}

func newFakeQuestionCache() *fakeQuestionCache {
	return &fakeQuestionCache{data: make(map[string][]string)}
}

func (f *fakeQuestionCache) Get(ctx context.Context, userID, day string) ([]string, error) {
	return f.data[userID+"|"+day], nil
}

func (f *fakeQuestionCache) Set(ctx context.Context, userID, day string, questions []string) error {
	f.sets++
	f.data[userID+"|"+day] = questions
	return nil
}

type fakeDashboardCache struct {
	report *model.DashboardReport
	sets   int
}

func (f *fakeDashboardCache) Get(ctx context.Context, days int) (*model.DashboardReport, error) {
	return f.report, nil
}

func (f *fakeDashboardCache) Set(ctx context.Context, days int, report *model.DashboardReport) error {
	f.sets++
	f.report = report
	return nil
}

// stubGenerator is a canned TextGenerator. Zero value fails both calls
// the way a disabled backend would.
type stubGenerator struct {
	questions []string
	result    *model.ScoreResult
	qCalls    int
	sCalls    int
}

func (g *stubGenerator) GenerateQuestions(ctx context.Context, employee *model.EmployeeProfile, recentScores []float64) ([]string, error) {
	g.qCalls++
	if g.questions == nil {
		return nil, ErrServiceUnavailable
	}
	return g.questions, nil
}

func (g *stubGenerator) ScoreResponses(ctx context.Context, employee *model.EmployeeProfile, responses []model.QAPair) (*model.ScoreResult, error) {
	g.sCalls++
	if g.result == nil {
		return nil, ErrServiceUnavailable
	}
	cp := *g.result
	return &cp, nil
}
