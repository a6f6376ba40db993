package progress

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/workout"
)

var (
	// errors
	ErrNotFound = errors.New("progress not found")
)

type (
	Repository interface {
		// GetProgress returns the row for the exact (learner, type,
		// difficulty, level) bucket; ErrNotFound if none exists yet.
		GetProgress(ctx context.Context, learnerID, workoutType, difficulty, level string) (Progress, error)
		// UpsertProgress inserts or replaces the row for the bucket keyed by
		// the Progress fields.
		UpsertProgress(ctx context.Context, p Progress) (Progress, error)
		QueryProgressByLearner(ctx context.Context, learnerID string) ([]Progress, error)
		DeleteProgressByLearner(ctx context.Context, learnerID string) error
	}

	// WorkoutGetter resolves the workout an attempt was graded against.
	WorkoutGetter interface {
		GetByID(ctx context.Context, id string) (workout.Workout, error)
	}

	Service struct {
		repo        Repository
		attemptRepo attempt.Repository
		workouts    WorkoutGetter
		recentLimit int
	}
)

var _ attempt.Recorder = (*Service)(nil)

func NewService(repo Repository, attemptRepo attempt.Repository, workouts WorkoutGetter, recentLimit int) *Service {
	return &Service{
		repo:        repo,
		attemptRepo: attemptRepo,
		workouts:    workouts,
		recentLimit: recentLimit,
	}
}

// Record folds a newly closed attempt into the learner's bucket row:
// attempt and correct counts increment, the average score becomes
// (oldAvg*oldCount + score) / newCount, time spent grows by the attempt
// duration and last activity moves to the attempt's end timestamp.
func (svc *Service) Record(ctx context.Context, att attempt.Attempt, w workout.Workout) error {
	if att.IsOpen() || att.EndedAt == nil {
		return errors.New("cannot record an open attempt")
	}

	p, err := svc.repo.GetProgress(ctx, att.LearnerID, w.Type, w.Difficulty, w.Level)
	if err != nil {
		if errors.Cause(err) != ErrNotFound {
			return errors.Wrap(err, "finding progress row")
		}
		p = Progress{
			LearnerID:   att.LearnerID,
			WorkoutType: w.Type,
			Difficulty:  w.Difficulty,
			Level:       w.Level,
		}
	}

	p.AverageScore = (p.AverageScore*float64(p.Attempts) + float64(att.Score)) / float64(p.Attempts+1)
	p.Attempts++
	if att.Correct {
		p.Correct++
	}
	p.TimeSpentSecs += att.Duration().Seconds()
	p.LastActivity = *att.EndedAt

	if _, err = svc.repo.UpsertProgress(ctx, p); err != nil {
		return errors.Wrap(err, "upserting progress row")
	}
	return nil
}

// Summary returns all of a learner's progress rows (most recent activity
// first) plus the recent-activity feed.
func (svc *Service) Summary(ctx context.Context, learnerID string) (Summary, error) {
	rows, err := svc.repo.QueryProgressByLearner(ctx, learnerID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying progress rows")
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LastActivity.After(rows[j].LastActivity) })

	recent, err := svc.attemptRepo.QueryClosedAttempts(ctx, learnerID, svc.recentLimit)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying recent attempts")
	}

	summary := Summary{
		LearnerID:      learnerID,
		Rows:           rows,
		RecentActivity: recent,
	}
	for _, p := range rows {
		summary.TotalAttempts += p.Attempts
		summary.TotalCorrect += p.Correct
	}
	return summary, nil
}

// Rebuild discards the learner's progress rows and recomputes them by
// replaying all closed attempts in end-timestamp order. Incremental state and
// a rebuild must agree; this is also the recovery path when a fold was lost
// between attempt closure and aggregation.
func (svc *Service) Rebuild(ctx context.Context, learnerID string) error {
	if err := svc.repo.DeleteProgressByLearner(ctx, learnerID); err != nil {
		return errors.Wrap(err, "deleting progress rows")
	}

	closed, err := svc.attemptRepo.QueryClosedAttempts(ctx, learnerID, 0)
	if err != nil {
		return errors.Wrap(err, "querying closed attempts")
	}
	// QueryClosedAttempts returns newest first; replay oldest first
	for i := len(closed) - 1; i >= 0; i-- {
		att := closed[i]
		w, err := svc.workouts.GetByID(ctx, att.WorkoutID)
		if err != nil {
			return errors.Wrapf(err, "finding workout %s", att.WorkoutID)
		}
		if err = svc.Record(ctx, att, w); err != nil {
			return errors.Wrapf(err, "replaying attempt %s", att.ID)
		}
	}
	return nil
}
