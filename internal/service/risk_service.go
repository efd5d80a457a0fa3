package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"crewpulse/internal/cache"
	"crewpulse/internal/model"
	"crewpulse/internal/repository"
)

// Risk thresholds for the numeric-score strategy.
const (
	highRiskScoreBelow   = 50
	mediumRiskScoreBelow = 70
	lowTrendScoreBelow   = 60
)

// RiskService derives per-employee and organization-level risk views from
// the check-in history. Everything here is recomputed per query over a
// read-only window; concurrent writes may or may not be visible, which is
// acceptable for eventually-consistent wellness reporting.
type RiskService struct {
	userRepo       repository.UserRepo
	checkInRepo    repository.CheckInRepo
	wellnessRepo   repository.WellnessRepo
	dashboardCache cache.DashboardCache
}

// NewRiskService creates a new risk service.
func NewRiskService(userRepo repository.UserRepo, checkInRepo repository.CheckInRepo, wellnessRepo repository.WellnessRepo, dashboardCache cache.DashboardCache) *RiskService {
	return &RiskService{
		userRepo:       userRepo,
		checkInRepo:    checkInRepo,
		wellnessRepo:   wellnessRepo,
		dashboardCache: dashboardCache,
	}
}

// classifyByScore is the numeric-score risk strategy, applied when a
// same-day wellness score exists.
func classifyByScore(score int) (model.RiskLevel, int) {
	switch {
	case score < highRiskScoreBelow:
		return model.RiskHigh, 4
	case score < mediumRiskScoreBelow:
		return model.RiskMedium, 3
	default:
		return model.RiskLow, 2
	}
}

// classifyByMood is the mood-category risk strategy, used when only a
// quick check-in category is available. The two strategies are
// deliberately separate; they have never been reconciled.
func classifyByMood(category model.MoodCategory) (model.RiskLevel, int) {
	switch category {
	case model.MoodHighRisk:
		return model.RiskHigh, 4
	case model.MoodStressed:
		return model.RiskMedium, 3
	case model.MoodNeutral:
		return model.RiskLow, 2
	case model.MoodPositive:
		return model.RiskVeryLow, 1
	default:
		return model.RiskUnknown, 0
	}
}

// concerningMoodPattern flags any high-risk check-in, or stressed
// check-ins making up at least 40% of the window.
func concerningMoodPattern(counts model.MoodCategoryCounts, total int) bool {
	if counts.HighRisk > 0 {
		return true
	}
	if total == 0 {
		return false
	}
	return counts.Stressed >= int(math.Ceil(float64(total)*0.4))
}

// recentScoresConcerning reports whether the 3 most recent scores
// (newest first) all sit below the trend threshold.
func recentScoresConcerning(scores []int) bool {
	if len(scores) < 3 {
		return false
	}
	for _, s := range scores[:3] {
		if s >= lowTrendScoreBelow {
			return false
		}
	}
	return true
}

// calculateTrend splits a newest-first score window into index-based
// halves and compares their means. Fewer than 5 points is always stable.
func calculateTrend(scores []int) model.Trend {
	if len(scores) < 5 {
		return model.TrendStable
	}

	newer := scores[:len(scores)/2]
	older := scores[len(scores)/2:]

	difference := mean(older) - mean(newer)
	if difference > 5 {
		return model.TrendDeclining
	}
	if difference < -5 {
		return model.TrendImproving
	}
	return model.TrendStable
}

// consistencyScore is the check-in rate over the requested window,
// capped at 30 days.
func consistencyScore(actualCheckins, days int) int {
	expected := days
	if expected > 30 {
		expected = 30
	}
	if expected <= 0 {
		return 0
	}
	return int(math.Round(float64(actualCheckins) / float64(expected) * 100))
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Dashboard builds the risk-ranked roster over the last `days` days of
// quick check-ins.
func (s *RiskService) Dashboard(ctx context.Context, days int) (*model.DashboardReport, error) {
	if days <= 0 {
		days = 7
	}

	if cached, err := s.dashboardCache.Get(ctx, days); err == nil && cached != nil {
		return cached, nil
	}

	employees, err := s.userRepo.ListActive(ctx, model.RoleEmployee)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := model.StartOfDay(now)
	tomorrow := todayStart.Add(24 * time.Hour)
	windowStart := todayStart.AddDate(0, 0, -days)

	checkIns, err := s.checkInRepo.QueryWindow(ctx, windowStart, tomorrow)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string][]*model.CheckIn)
	todayByUser := make(map[string]*model.CheckIn)
	for _, ci := range checkIns {
		byUser[ci.UserID] = append(byUser[ci.UserID], ci)
		if !ci.Date.Before(todayStart) && ci.Date.Before(tomorrow) {
			todayByUser[ci.UserID] = ci
		}
	}

	rows := make([]model.EmployeeWellness, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, s.employeeRow(emp, byUser[emp.ID], todayByUser[emp.ID]))
	}

	// Highest risk first; among equals, lower latest score surfaces first.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RiskScore != rows[j].RiskScore {
			return rows[i].RiskScore > rows[j].RiskScore
		}
		if rows[i].LatestWellnessScore != nil && rows[j].LatestWellnessScore != nil {
			return *rows[i].LatestWellnessScore < *rows[j].LatestWellnessScore
		}
		return false
	})

	report := &model.DashboardReport{
		Employees: rows,
		Stats:     orgStats(rows, len(todayByUser)),
		Timeframe: days,
	}

	if err := s.dashboardCache.Set(ctx, days, report); err != nil {
		log.Printf("dashboard cache write: %v", err)
	}
	return report, nil
}

func (s *RiskService) employeeRow(emp *model.User, checkIns []*model.CheckIn, today *model.CheckIn) model.EmployeeWellness {
	row := model.EmployeeWellness{
		ID:                emp.ID,
		Name:              emp.Name,
		Email:             emp.Email,
		EmployeeID:        emp.EmployeeID,
		Vessel:            emp.Vessel,
		Department:        emp.Department,
		RiskLevel:         model.RiskUnknown,
		HasCheckedInToday: today != nil,
	}

	row.TotalCheckIns = len(checkIns)
	row.CheckInStreak = len(checkIns) // window count, not consecutive days

	if len(checkIns) == 0 {
		return row
	}

	sum := 0
	var latest *model.CheckIn
	for _, ci := range checkIns {
		sum += ci.WellnessScore
		if latest == nil || ci.Date.After(latest.Date) {
			latest = ci
		}
		switch ci.MoodCategory {
		case model.MoodPositive:
			row.MoodCategories.Positive++
		case model.MoodNeutral:
			row.MoodCategories.Neutral++
		case model.MoodStressed:
			row.MoodCategories.Stressed++
		case model.MoodHighRisk:
			row.MoodCategories.HighRisk++
		}
	}

	avg := int(math.Round(float64(sum) / float64(len(checkIns))))
	row.AvgWellnessScore = &avg
	row.LatestCheckIn = &latest.Date
	latestScore := latest.WellnessScore
	row.LatestWellnessScore = &latestScore

	// Score-driven classification when today's score exists, otherwise
	// fall back to the latest mood category.
	if today != nil {
		row.RiskLevel, row.RiskScore = classifyByScore(today.WellnessScore)
	} else {
		row.RiskLevel, row.RiskScore = classifyByMood(latest.MoodCategory)
	}

	row.ConcerningPattern = concerningMoodPattern(row.MoodCategories, len(checkIns))
	return row
}

func orgStats(rows []model.EmployeeWellness, checkedInToday int) model.OrgStats {
	stats := model.OrgStats{
		TotalEmployees: len(rows),
		CheckedInToday: checkedInToday,
	}
	if stats.TotalEmployees > 0 {
		stats.CheckInRate = int(math.Round(float64(checkedInToday) / float64(stats.TotalEmployees) * 100))
	}

	sum, n := 0, 0
	for _, row := range rows {
		switch row.RiskLevel {
		case model.RiskHigh:
			stats.HighRiskEmployees++
		case model.RiskMedium:
			stats.MediumRiskEmployees++
		}
		if row.AvgWellnessScore != nil {
			sum += *row.AvgWellnessScore
			n++
		}
	}
	if n > 0 {
		avg := int(math.Round(float64(sum) / float64(n)))
		stats.AvgWellnessScore = &avg
	}
	return stats
}

// Team reports structured-assessment completion for the selected day plus
// alerts over the trailing window.
func (s *RiskService) Team(ctx context.Context, days int, date, vessel, department string) (*model.TeamReport, error) {
	if days <= 0 {
		days = 7
	}

	selected := time.Now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
		}
		selected = parsed
	}

	dayStart := model.StartOfDay(selected)
	dayEnd := dayStart.Add(24 * time.Hour)
	windowStart := dayStart.AddDate(0, 0, -days)

	employees, err := s.userRepo.ListActive(ctx, model.RoleEmployee)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]*model.User, len(employees))
	for _, emp := range employees {
		usersByID[emp.ID] = emp
	}

	checks, err := s.wellnessRepo.QueryCompletedWindow(ctx, windowStart, dayEnd)
	if err != nil {
		return nil, err
	}

	var entries []model.TeamEntry
	checksByUser := make(map[string][]*model.WellnessCheck)
	for _, check := range checks {
		emp, ok := usersByID[check.UserID]
		if !ok {
			continue
		}
		if vessel != "" && emp.Vessel != vessel {
			continue
		}
		if department != "" && emp.Department != department {
			continue
		}
		checksByUser[check.UserID] = append(checksByUser[check.UserID], check)
		entries = append(entries, model.TeamEntry{
			UserID:           check.UserID,
			Name:             emp.Name,
			EmployeeID:       emp.EmployeeID,
			Vessel:           emp.Vessel,
			Department:       emp.Department,
			Date:             check.Date,
			WellnessScore:    check.OverallScore,
			StressLevel:      check.StressLevel,
			EnergyLevel:      check.EnergyLevel,
			WorkSatisfaction: check.WorkSatisfaction,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].Name < entries[j].Name
	})

	statuses := make([]model.EmployeeDayStatus, 0, len(employees))
	todayCount := 0
	for _, emp := range employees {
		status := model.EmployeeDayStatus{
			ID:         emp.ID,
			Name:       emp.Name,
			EmployeeID: emp.EmployeeID,
			Vessel:     emp.Vessel,
			Department: emp.Department,
		}
		for _, check := range checksByUser[emp.ID] {
			if !check.Date.Before(dayStart) && check.Date.Before(dayEnd) {
				status.HasCheckedInToday = true
				score := check.OverallScore
				status.TodayWellnessScore = &score
				status.CheckInTime = check.CompletedAt
				break
			}
		}
		if status.HasCheckedInToday {
			todayCount++
		}
		statuses = append(statuses, status)
	}

	stats := teamStatistics(entries, statuses, dayEnd, len(employees), todayCount)

	return &model.TeamReport{
		TeamData:       entries,
		EmployeeStatus: statuses,
		TodayCheckIns:  todayCount,
		TotalEmployees: len(employees),
		SelectedDate:   model.DayKey(dayStart),
		Statistics:     stats,
		Alerts:         generateAlerts(entries, statuses),
	}, nil
}

func teamStatistics(entries []model.TeamEntry, statuses []model.EmployeeDayStatus, windowEnd time.Time, totalEmployees, todayCount int) model.TeamStatistics {
	recentCutoff := windowEnd.AddDate(0, 0, -7)
	var recent []int
	for _, e := range entries {
		if e.Date.After(recentCutoff) {
			recent = append(recent, e.WellnessScore)
		}
	}

	stats := model.TeamStatistics{TotalResponses: len(entries)}
	if len(recent) > 0 {
		stats.AverageWellness = math.Round(mean(recent)*10) / 10
	}
	for _, score := range recent {
		if score < highRiskScoreBelow {
			stats.LowScoreAlerts++
		}
	}
	if totalEmployees > 0 {
		stats.ComplianceRate = math.Round(float64(todayCount)/float64(totalEmployees)*1000) / 10
	}
	return stats
}

// generateAlerts evaluates the three org-level alert rules independently
// and emits every one that applies.
func generateAlerts(entries []model.TeamEntry, statuses []model.EmployeeDayStatus) []model.Alert {
	alerts := []model.Alert{}

	var missed []string
	var lowToday []string
	for _, status := range statuses {
		if !status.HasCheckedInToday {
			missed = append(missed, status.Name)
		}
		if status.TodayWellnessScore != nil && *status.TodayWellnessScore < highRiskScoreBelow {
			lowToday = append(lowToday, status.Name)
		}
	}

	if len(missed) > 0 {
		alerts = append(alerts, model.Alert{
			Type:      model.AlertMissedCheckin,
			Severity:  model.SeverityMedium,
			Count:     len(missed),
			Message:   fmt.Sprintf("%d employees haven't completed today's wellness check-in", len(missed)),
			Employees: missed,
		})
	}

	if len(lowToday) > 0 {
		alerts = append(alerts, model.Alert{
			Type:      model.AlertLowWellness,
			Severity:  model.SeverityHigh,
			Count:     len(lowToday),
			Message:   fmt.Sprintf("%d employees have concerning wellness scores today", len(lowToday)),
			Employees: lowToday,
		})
	}

	// Entries are newest first, so the first 3 per user are their most
	// recent scores.
	scoresByUser := make(map[string][]int)
	namesByUser := make(map[string]string)
	for _, e := range entries {
		scoresByUser[e.UserID] = append(scoresByUser[e.UserID], e.WellnessScore)
		namesByUser[e.UserID] = e.Name
	}
	var consistentlyLow []string
	for userID, scores := range scoresByUser {
		if recentScoresConcerning(scores) {
			consistentlyLow = append(consistentlyLow, namesByUser[userID])
		}
	}
	sort.Strings(consistentlyLow)

	if len(consistentlyLow) > 0 {
		alerts = append(alerts, model.Alert{
			Type:      model.AlertTrendConcern,
			Severity:  model.SeverityHigh,
			Count:     len(consistentlyLow),
			Message:   fmt.Sprintf("%d employees showing consistently low wellness scores", len(consistentlyLow)),
			Employees: consistentlyLow,
		})
	}

	return alerts
}

// History returns one employee's completed assessments with statistics
// and rule-based personal insights.
func (s *RiskService) History(ctx context.Context, userID string, days, limit int) (*model.HistoryReport, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 {
		limit = 50
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	checks, err := s.wellnessRepo.CompletedWindow(ctx, userID, start, end, limit)
	if err != nil {
		return nil, err
	}

	history := make([]model.WellnessCheck, len(checks))
	scores := make([]int, len(checks)) // newest first, repo sorts by date desc
	for i, check := range checks {
		history[i] = *check
		scores[i] = check.OverallScore
	}

	stats := model.HistoryStatistics{
		TotalCheckins:    len(checks),
		ConsistencyScore: consistencyScore(len(checks), days),
	}
	if len(scores) > 0 {
		stats.AverageScore = math.Round(mean(scores)*10) / 10
	}
	recent := scores
	if len(recent) > 7 {
		recent = recent[:7]
	}
	if len(recent) > 0 {
		stats.RecentAverage = math.Round(mean(recent)*10) / 10
	}

	trendWindow := scores
	if len(trendWindow) > 14 {
		trendWindow = trendWindow[:14]
	}
	stats.Trend = calculateTrend(trendWindow)

	var stress, energy []int
	for _, check := range checks {
		if check.StressLevel > 0 {
			stress = append(stress, check.StressLevel)
		}
		if check.EnergyLevel > 0 {
			energy = append(energy, check.EnergyLevel)
		}
	}
	if len(stress) > 0 {
		stats.AverageStress = math.Round(mean(stress)*10) / 10
	}
	if len(energy) > 0 {
		stats.AverageEnergy = math.Round(mean(energy)*10) / 10
	}

	return &model.HistoryReport{
		History:    history,
		Statistics: stats,
		Insights:   historyInsights(scores, stats.AverageScore, stats.Trend),
	}, nil
}

func historyInsights(scores []int, averageScore float64, trend model.Trend) []string {
	var insights []string

	switch {
	case averageScore >= 80:
		insights = append(insights, "You're maintaining excellent wellness levels!")
	case averageScore >= 60:
		insights = append(insights, "Your wellness is in a healthy range with room for improvement.")
	default:
		insights = append(insights, "Your wellness scores suggest you may need additional support.")
	}

	switch trend {
	case model.TrendImproving:
		insights = append(insights, "Great news! Your wellness trend is improving over time.")
	case model.TrendDeclining:
		insights = append(insights, "Your wellness trend shows some decline - consider reaching out for support.")
	}

	if len(scores) >= 7 {
		lowDays := 0
		for _, score := range scores[:7] {
			if score < highRiskScoreBelow {
				lowDays++
			}
		}
		if lowDays >= 3 {
			insights = append(insights, "You've had several challenging days recently - please consider talking to someone.")
		}
	}

	return insights
}
