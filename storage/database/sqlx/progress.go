package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/progress"
)

type progressRow struct {
	LearnerID     string    `db:"learner_id"`
	WorkoutType   string    `db:"workout_type"`
	Difficulty    string    `db:"difficulty"`
	Level         string    `db:"level"`
	Attempts      int       `db:"attempts"`
	Correct       int       `db:"correct"`
	AverageScore  float64   `db:"average_score"`
	TimeSpentSecs float64   `db:"time_spent_secs"`
	LastActivity  time.Time `db:"last_activity"`
}

func (r progressRow) unpack() progress.Progress {
	return progress.Progress(r)
}

type progressRepository struct {
	db core.DBExecutor
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db core.DBExecutor) *progressRepository {
	return &progressRepository{db: db}
}

func (repo progressRepository) GetProgress(ctx context.Context, learnerID, workoutType, difficulty, level string) (progress.Progress, error) {
	var row progressRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT * FROM workout_progress
		WHERE learner_id = $1 AND workout_type = $2 AND difficulty = $3 AND level = $4`,
		learnerID, workoutType, difficulty, level,
	)
	if err == sql.ErrNoRows {
		return progress.Progress{}, progress.ErrNotFound
	}
	if err != nil {
		return progress.Progress{}, errors.Wrap(err, "getting progress row")
	}
	return row.unpack(), nil
}

func (repo progressRepository) UpsertProgress(ctx context.Context, p progress.Progress) (progress.Progress, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO workout_progress (learner_id, workout_type, difficulty, level, attempts, correct,
		                              average_score, time_spent_secs, last_activity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (learner_id, workout_type, difficulty, level)
		    DO UPDATE SET attempts        = EXCLUDED.attempts,
		                  correct         = EXCLUDED.correct,
		                  average_score   = EXCLUDED.average_score,
		                  time_spent_secs = EXCLUDED.time_spent_secs,
		                  last_activity   = EXCLUDED.last_activity`,
		p.LearnerID, p.WorkoutType, p.Difficulty, p.Level, p.Attempts, p.Correct,
		p.AverageScore, p.TimeSpentSecs, p.LastActivity,
	)
	if err != nil {
		return progress.Progress{}, errors.Wrap(err, "upserting progress row")
	}
	return p, nil
}

func (repo progressRepository) QueryProgressByLearner(ctx context.Context, learnerID string) ([]progress.Progress, error) {
	var rows []progressRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT * FROM workout_progress WHERE learner_id = $1 ORDER BY last_activity DESC`, learnerID)
	if err != nil {
		return nil, errors.Wrap(err, "querying progress rows")
	}
	progressRows := make([]progress.Progress, 0, len(rows))
	for _, row := range rows {
		progressRows = append(progressRows, row.unpack())
	}
	return progressRows, nil
}

func (repo progressRepository) DeleteProgressByLearner(ctx context.Context, learnerID string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM workout_progress WHERE learner_id = $1`, learnerID); err != nil {
		return errors.Wrap(err, "deleting progress rows")
	}
	return nil
}
