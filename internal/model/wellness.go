package model

import "time"

// WellnessResponse is one answered question within a daily assessment.
// Score is the per-answer lexical score on a 1-5 scale.
type WellnessResponse struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
	Score    int    `json:"score" bson:"score"`
}

// WellnessCheck is the structured daily assessment. It has a two-phase
// lifecycle: created when questions are issued, completed exactly once
// when the answers are scored. CompletedAt is nil while issued.
type WellnessCheck struct {
	ID               string             `json:"id" bson:"_id,omitempty"`
	UserID           string             `json:"userId" bson:"userId"`
	EmployeeID       string             `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	Date             time.Time          `json:"date" bson:"date"`
	Day              string             `json:"day" bson:"day"`
	Questions        []string           `json:"questions" bson:"questions"`
	Responses        []WellnessResponse `json:"responses" bson:"responses"`
	OverallScore     int                `json:"overallScore" bson:"overallScore"` // 0-100
	CompletedAt      *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	Mood             string             `json:"mood,omitempty" bson:"mood,omitempty"`
	StressLevel      int                `json:"stressLevel,omitempty" bson:"stressLevel,omitempty"`           // 1-10
	EnergyLevel      int                `json:"energyLevel,omitempty" bson:"energyLevel,omitempty"`           // 1-10
	WorkSatisfaction int                `json:"workSatisfaction,omitempty" bson:"workSatisfaction,omitempty"` // 1-10
	Insights         []string           `json:"insights,omitempty" bson:"insights,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

func (w *WellnessCheck) IsCompleted() bool {
	return w.CompletedAt != nil
}

// QAPair is an unscored question/answer pair as submitted by the employee.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ScoreResult is the outcome of scoring a completed assessment.
type ScoreResult struct {
	Score    int      `json:"score"` // 0-100
	Insights []string `json:"insights"`
}

// IssuedQuestions is what the employee receives when opening today's
// assessment. Re-fetching before completion returns the same set.
type IssuedQuestions struct {
	CheckID          string   `json:"checkId"`
	Questions        []string `json:"questions"`
	AlreadyCompleted bool     `json:"alreadyCompleted"`
}
