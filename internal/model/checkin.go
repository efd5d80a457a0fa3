package model

import "time"

type MoodCategory string

const (
	MoodPositive MoodCategory = "positive"
	MoodNeutral  MoodCategory = "neutral"
	MoodStressed MoodCategory = "stressed"
	MoodHighRisk MoodCategory = "high_risk"
)

type InputType string

const (
	InputText  InputType = "text"
	InputVoice InputType = "voice"
)

// CheckIn is a quick free-text mood submission. Immutable once created;
// the unique (userId, day) index allows at most one per user per calendar day.
type CheckIn struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	UserID         string       `json:"userId" bson:"userId"`
	Date           time.Time    `json:"date" bson:"date"`
	Day            string       `json:"day" bson:"day"` // local calendar day, YYYY-MM-DD
	MoodInput      string       `json:"moodInput" bson:"moodInput"`
	InputType      InputType    `json:"inputType" bson:"inputType"`
	SentimentScore float64      `json:"sentimentScore" bson:"sentimentScore"` // -1 to 1
	WellnessScore  int          `json:"wellnessScore" bson:"wellnessScore"`   // 0-100
	MoodCategory   MoodCategory `json:"moodCategory" bson:"moodCategory"`
	CreatedAt      time.Time    `json:"createdAt" bson:"createdAt"`
}

// DayKey formats t as the server-local calendar day used for the
// per-day uniqueness constraint.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
