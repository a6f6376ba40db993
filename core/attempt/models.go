package attempt

import "time"

// Attempt statuses. An attempt opens when a learner begins a workout and
// closes exactly once, when an answer is submitted.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Attempt is one learner's timed engagement with one workout.
// Closed attempts are immutable.
type Attempt struct {
	ID        string     `json:"id"`
	LearnerID string     `json:"learner_id"`
	WorkoutID string     `json:"workout_id"`
	Status    string     `json:"status"`
	HintsUsed int        `json:"hints_used"`
	Answer    string     `json:"answer,omitempty"`
	Score     int        `json:"score"`
	Correct   bool       `json:"correct"`
	StartedAt time.Time  `json:"started_at"`         // UTC
	EndedAt   *time.Time `json:"ended_at,omitempty"` // UTC; set on close
}

func (a Attempt) IsOpen() bool {
	return a.Status == StatusOpen
}

// Duration is the time spent on the attempt; zero while still open.
func (a Attempt) Duration() time.Duration {
	if a.EndedAt == nil {
		return 0
	}
	return a.EndedAt.Sub(a.StartedAt)
}

// Submission is a learner's answer to an open attempt.
type Submission struct {
	Answer string `json:"answer" validate:"required"`
}
