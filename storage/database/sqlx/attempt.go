package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/attempt"
)

type attemptRow struct {
	ID        string      `db:"id"`
	LearnerID string      `db:"learner_id"`
	WorkoutID string      `db:"workout_id"`
	Status    string      `db:"status"`
	HintsUsed int         `db:"hints_used"`
	Answer    null.String `db:"answer"`
	Score     int         `db:"score"`
	Correct   bool        `db:"correct"`
	StartedAt time.Time   `db:"started_at"`
	EndedAt   null.Time   `db:"ended_at"`
}

func (r attemptRow) unpack() attempt.Attempt {
	att := attempt.Attempt{
		ID:        r.ID,
		LearnerID: r.LearnerID,
		WorkoutID: r.WorkoutID,
		Status:    r.Status,
		HintsUsed: r.HintsUsed,
		Answer:    r.Answer.String,
		Score:     r.Score,
		Correct:   r.Correct,
		StartedAt: r.StartedAt,
	}
	if r.EndedAt.Valid {
		endedAt := r.EndedAt.Time
		att.EndedAt = &endedAt
	}
	return att
}

type attemptRepository struct {
	db core.DBExecutor
}

var _ attempt.Repository = (*attemptRepository)(nil) // interface compliance check

func NewAttemptRepository(db core.DBExecutor) *attemptRepository {
	return &attemptRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to attempt.ErrNotFound
func (repo attemptRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return attempt.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo attemptRepository) CreateAttempt(ctx context.Context, att attempt.Attempt) (attempt.Attempt, error) {
	att.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO workout_attempt (id, learner_id, workout_id, status, hints_used, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		att.ID, att.LearnerID, att.WorkoutID, att.Status, att.HintsUsed, att.StartedAt,
	)
	if err != nil {
		// a concurrent start won the race; the partial unique index on open
		// (learner, workout) pairs rejected the duplicate
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return repo.GetOpenAttempt(ctx, att.LearnerID, att.WorkoutID)
		}
		return attempt.Attempt{}, errors.Wrap(err, "inserting attempt")
	}
	return att, nil
}

func (repo attemptRepository) GetAttemptByID(ctx context.Context, id string) (attempt.Attempt, error) {
	var row attemptRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM workout_attempt WHERE id = $1`, id); err != nil {
		return attempt.Attempt{}, repo.trapNoRowsErr(err, "getting attempt by ID")
	}
	return row.unpack(), nil
}

func (repo attemptRepository) GetOpenAttempt(ctx context.Context, learnerID, workoutID string) (attempt.Attempt, error) {
	var row attemptRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT * FROM workout_attempt
		WHERE learner_id = $1 AND workout_id = $2 AND status = $3`,
		learnerID, workoutID, attempt.StatusOpen,
	)
	if err != nil {
		return attempt.Attempt{}, repo.trapNoRowsErr(err, "getting open attempt")
	}
	return row.unpack(), nil
}

func (repo attemptRepository) AddHint(ctx context.Context, id string) (attempt.Attempt, error) {
	var row attemptRow
	err := repo.db.GetContext(ctx, &row, `
		UPDATE workout_attempt
		SET hints_used = hints_used + 1
		WHERE id = $1 AND status = $2
		RETURNING *`,
		id, attempt.StatusOpen,
	)
	if err == sql.ErrNoRows {
		// the attempt exists but is no longer open, or does not exist at all
		return attempt.Attempt{}, repo.resolveMissing(ctx, id)
	}
	if err != nil {
		return attempt.Attempt{}, errors.Wrap(err, "adding hint")
	}
	return row.unpack(), nil
}

func (repo attemptRepository) CloseAttempt(ctx context.Context, att attempt.Attempt) (attempt.Attempt, error) {
	var row attemptRow
	// compare-and-set on status: exactly one close succeeds per attempt.
	// hints_used is deliberately not in the SET list: the stored count may
	// have moved past the caller's read and must not be rolled back.
	err := repo.db.GetContext(ctx, &row, `
		UPDATE workout_attempt
		SET status = $2, ended_at = $3, answer = $4, score = $5, correct = $6
		WHERE id = $1 AND status = $7
		RETURNING *`,
		att.ID, attempt.StatusClosed, att.EndedAt, null.StringFrom(att.Answer), att.Score, att.Correct,
		attempt.StatusOpen,
	)
	if err == sql.ErrNoRows {
		return attempt.Attempt{}, repo.resolveMissing(ctx, att.ID)
	}
	if err != nil {
		return attempt.Attempt{}, errors.Wrap(err, "closing attempt")
	}
	return row.unpack(), nil
}

// resolveMissing distinguishes a closed attempt from an unknown one after a
// conditional UPDATE matched no row.
func (repo attemptRepository) resolveMissing(ctx context.Context, id string) error {
	if _, err := repo.GetAttemptByID(ctx, id); err != nil {
		return err
	}
	return attempt.ErrClosed
}

func (repo attemptRepository) QueryClosedAttempts(ctx context.Context, learnerID string, limit int) ([]attempt.Attempt, error) {
	query := `
		SELECT * FROM workout_attempt
		WHERE learner_id = $1 AND status = $2
		ORDER BY ` + core.DBOrdering{Field: "ended_at"}.String()
	args := []interface{}{learnerID, attempt.StatusClosed}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}
	var rows []attemptRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying closed attempts")
	}
	attempts := make([]attempt.Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, row.unpack())
	}
	return attempts, nil
}
