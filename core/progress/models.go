package progress

import (
	"time"

	"github.com/trezcool/mazoezi/core/attempt"
)

// Progress is a learner's aggregate over a (type, difficulty, level) bucket.
// It is a materialized view over the attempt ledger: never edited directly,
// always rebuildable by replaying the learner's closed attempts.
type Progress struct {
	LearnerID     string    `json:"learner_id"`
	WorkoutType   string    `json:"workout_type"`
	Difficulty    string    `json:"difficulty"`
	Level         string    `json:"level"`
	Attempts      int       `json:"attempts"`
	Correct       int       `json:"correct"`
	AverageScore  float64   `json:"average_score"`
	TimeSpentSecs float64   `json:"time_spent_secs"`
	LastActivity  time.Time `json:"last_activity"` // UTC
}

// Summary is a learner's full progress picture: all bucket rows plus the
// most recent closed attempts, newest first.
type Summary struct {
	LearnerID      string            `json:"learner_id"`
	Rows           []Progress        `json:"progress"`
	TotalAttempts  int               `json:"total_attempts"`
	TotalCorrect   int               `json:"total_correct"`
	RecentActivity []attempt.Attempt `json:"recent_activity"`
}
