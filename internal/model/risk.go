package model

import "time"

type RiskLevel string

const (
	RiskVeryLow RiskLevel = "very_low"
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type AlertType string

const (
	AlertMissedCheckin AlertType = "missed_checkin"
	AlertLowWellness   AlertType = "low_wellness"
	AlertTrendConcern  AlertType = "trend_concern"
)

type AlertSeverity string

const (
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

type Alert struct {
	Type      AlertType     `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Count     int           `json:"count"`
	Message   string        `json:"message"`
	Employees []string      `json:"employees"`
}

type MoodCategoryCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Stressed int `json:"stressed"`
	HighRisk int `json:"high_risk"`
}

// EmployeeWellness is one row of the management dashboard. It is derived
// per query and never persisted.
type EmployeeWellness struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	EmployeeID          string             `json:"employeeId,omitempty"`
	Vessel              string             `json:"vessel,omitempty"`
	Department          string             `json:"department,omitempty"`
	AvgWellnessScore    *int               `json:"avgWellnessScore"`
	LatestWellnessScore *int               `json:"latestWellnessScore"`
	LatestCheckIn       *time.Time         `json:"latestCheckIn"`
	RiskLevel           RiskLevel          `json:"riskLevel"`
	RiskScore           int                `json:"riskScore"` // 0 unknown, 1 very_low .. 4 high
	HasCheckedInToday   bool               `json:"hasCheckedInToday"`
	CheckInStreak       int                `json:"checkInStreak"` // check-ins inside the window, not consecutive days
	ConcerningPattern   bool               `json:"concerningPattern"`
	TotalCheckIns       int                `json:"totalCheckIns"`
	MoodCategories      MoodCategoryCounts `json:"moodCategories"`
}

type OrgStats struct {
	TotalEmployees      int  `json:"totalEmployees"`
	CheckedInToday      int  `json:"checkedInToday"`
	CheckInRate         int  `json:"checkInRate"` // percent
	HighRiskEmployees   int  `json:"highRiskEmployees"`
	MediumRiskEmployees int  `json:"mediumRiskEmployees"`
	AvgWellnessScore    *int `json:"avgWellnessScore"`
}

type DashboardReport struct {
	Employees []EmployeeWellness `json:"employees"`
	Stats     OrgStats           `json:"stats"`
	Timeframe int                `json:"timeframe"` // days
}

// EmployeeDayStatus reports whether an employee completed the structured
// assessment on the selected day.
type EmployeeDayStatus struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	EmployeeID         string     `json:"employeeId,omitempty"`
	Vessel             string     `json:"vessel,omitempty"`
	Department         string     `json:"department,omitempty"`
	HasCheckedInToday  bool       `json:"hasCheckedInToday"`
	TodayWellnessScore *int       `json:"todayWellnessScore"`
	CheckInTime        *time.Time `json:"checkInTime"`
}

type TeamStatistics struct {
	AverageWellness float64 `json:"averageWellness"`
	ComplianceRate  float64 `json:"complianceRate"`
	LowScoreAlerts  int     `json:"lowScoreAlerts"`
	TotalResponses  int     `json:"totalResponses"`
}

// TeamEntry is one completed assessment joined with its employee.
type TeamEntry struct {
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	EmployeeID       string    `json:"employeeId,omitempty"`
	Vessel           string    `json:"vessel,omitempty"`
	Department       string    `json:"department,omitempty"`
	Date             time.Time `json:"date"`
	WellnessScore    int       `json:"wellnessScore"`
	StressLevel      int       `json:"stressLevel,omitempty"`
	EnergyLevel      int       `json:"energyLevel,omitempty"`
	WorkSatisfaction int       `json:"workSatisfaction,omitempty"`
}

type TeamReport struct {
	TeamData       []TeamEntry         `json:"teamData"`
	EmployeeStatus []EmployeeDayStatus `json:"employeeStatus"`
	TodayCheckIns  int                 `json:"todayCheckIns"`
	TotalEmployees int                 `json:"totalEmployees"`
	SelectedDate   string              `json:"selectedDate"`
	Statistics     TeamStatistics      `json:"statistics"`
	Alerts         []Alert             `json:"alerts"`
}

type HistoryStatistics struct {
	TotalCheckins    int     `json:"totalCheckins"`
	AverageScore     float64 `json:"averageScore"`
	RecentAverage    float64 `json:"recentAverage"`
	Trend            Trend   `json:"trend"`
	AverageStress    float64 `json:"averageStress"`
	AverageEnergy    float64 `json:"averageEnergy"`
	ConsistencyScore int     `json:"consistencyScore"`
}

type HistoryReport struct {
	History    []WellnessCheck   `json:"history"`
	Statistics HistoryStatistics `json:"statistics"`
	Insights   []string          `json:"insights"`
}
