package attempt

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/workout"
)

var (
	// errors
	ErrNotFound = errors.New("attempt not found")
	ErrClosed   = errors.New("attempt already closed")
)

type (
	Repository interface {
		// CreateAttempt inserts a new open attempt. The unique-open invariant
		// is enforced at the storage layer: if an open attempt already exists
		// for the (learner, workout) pair it is returned instead of inserting
		// a duplicate.
		CreateAttempt(ctx context.Context, att Attempt) (Attempt, error)
		GetAttemptByID(ctx context.Context, id string) (Attempt, error)
		// GetOpenAttempt returns the open attempt for the (learner, workout)
		// pair; ErrNotFound if there is none.
		GetOpenAttempt(ctx context.Context, learnerID, workoutID string) (Attempt, error)
		// AddHint atomically increments the hint count of an open attempt.
		// ErrClosed if the attempt has already been closed.
		AddHint(ctx context.Context, id string) (Attempt, error)
		// CloseAttempt atomically transitions the attempt from open to closed,
		// recording end time, answer, score and correctness. Exactly one close
		// succeeds per attempt: a call that loses the race gets ErrClosed.
		CloseAttempt(ctx context.Context, att Attempt) (Attempt, error)
		// QueryClosedAttempts returns a learner's closed attempts ordered by
		// end timestamp descending. limit <= 0 means no limit.
		QueryClosedAttempts(ctx context.Context, learnerID string, limit int) ([]Attempt, error)
	}

	// Recorder folds a freshly closed attempt into the learner's progress.
	Recorder interface {
		Record(ctx context.Context, att Attempt, w workout.Workout) error
	}

	Service struct {
		repo       Repository
		workoutSvc *workout.Service
		scorer     workout.Scorer
		recorder   Recorder
	}
)

func NewService(repo Repository, workoutSvc *workout.Service, scorer workout.Scorer, recorder Recorder) *Service {
	return &Service{
		repo:       repo,
		workoutSvc: workoutSvc,
		scorer:     scorer,
		recorder:   recorder,
	}
}

// Start opens an attempt on a workout for a learner. It is idempotent: if an
// open attempt already exists for the (learner, workout) pair it is returned
// as-is instead of creating a duplicate.
func (svc *Service) Start(ctx context.Context, learnerID, workoutID string) (Attempt, error) {
	if _, err := svc.workoutSvc.GetByID(ctx, workoutID); err != nil {
		return Attempt{}, err
	}

	att, err := svc.repo.GetOpenAttempt(ctx, learnerID, workoutID)
	if err == nil {
		return att, nil
	}
	if errors.Cause(err) != ErrNotFound {
		return Attempt{}, errors.Wrap(err, "finding open attempt")
	}

	att = Attempt{
		LearnerID: learnerID,
		WorkoutID: workoutID,
		Status:    StatusOpen,
		StartedAt: time.Now().UTC(),
	}
	return svc.repo.CreateAttempt(ctx, att)
}

// RecordHint increments the hint count on an open attempt owned by the learner.
func (svc *Service) RecordHint(ctx context.Context, attemptID, learnerID string) (Attempt, error) {
	att, err := svc.get(ctx, attemptID, learnerID)
	if err != nil {
		return Attempt{}, err
	}
	if !att.IsOpen() {
		return Attempt{}, ErrClosed
	}
	return svc.repo.AddHint(ctx, att.ID)
}

// Submit grades the answer, closes the attempt (open -> closed, one-way) and
// folds the result into the learner's progress. Concurrent submissions on the
// same attempt are serialized by the repository: exactly one succeeds and the
// rest observe ErrClosed.
func (svc *Service) Submit(ctx context.Context, attemptID, learnerID, answer string) (Attempt, error) {
	att, err := svc.get(ctx, attemptID, learnerID)
	if err != nil {
		return Attempt{}, err
	}
	if !att.IsOpen() {
		return Attempt{}, ErrClosed
	}

	w, err := svc.workoutSvc.GetByID(ctx, att.WorkoutID)
	if err != nil {
		return Attempt{}, errors.Wrap(err, "finding attempted workout")
	}

	now := time.Now().UTC()
	att.Status = StatusClosed
	att.EndedAt = &now
	att.Answer = answer
	att.Score, att.Correct = svc.scorer.Score(w, answer, att.HintsUsed)

	closed, err := svc.repo.CloseAttempt(ctx, att)
	if err != nil {
		return Attempt{}, err
	}

	// the ledger is the source of truth; a failed fold here is recovered by
	// replaying closed attempts (progress.Service.Rebuild)
	if err = svc.recorder.Record(ctx, closed, w); err != nil {
		return closed, errors.Wrap(err, "recording completion")
	}
	return closed, nil
}

// Get returns an attempt owned by the learner. Foreign attempts read as not
// found: attempt ids do not leak across learners.
func (svc *Service) Get(ctx context.Context, attemptID, learnerID string) (Attempt, error) {
	return svc.get(ctx, attemptID, learnerID)
}

func (svc *Service) get(ctx context.Context, attemptID, learnerID string) (Attempt, error) {
	att, err := svc.repo.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if att.LearnerID != learnerID {
		return Attempt{}, ErrNotFound
	}
	return att, nil
}
