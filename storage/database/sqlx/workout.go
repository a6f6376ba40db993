package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/workout"
)

type workoutRow struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	Type             string         `db:"type"`
	Difficulty       string         `db:"difficulty"`
	Level            string         `db:"level"`
	AgeGroup         string         `db:"age_group"`
	Question         string         `db:"question"`
	Choices          pq.StringArray `db:"choices"`
	Solution         string         `db:"solution"`
	SkillAreas       pq.StringArray `db:"skill_areas"`
	EstimatedMinutes int            `db:"estimated_minutes"`
	CreatedBy        string         `db:"created_by"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r workoutRow) unpack() workout.Workout {
	return workout.Workout{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Type:             r.Type,
		Difficulty:       r.Difficulty,
		Level:            r.Level,
		AgeGroup:         r.AgeGroup,
		Question:         r.Question,
		Choices:          r.Choices,
		Solution:         r.Solution,
		SkillAreas:       r.SkillAreas,
		EstimatedMinutes: r.EstimatedMinutes,
		CreatedBy:        r.CreatedBy,
		CreatedAt:        r.CreatedAt,
	}
}

type workoutRepository struct {
	db core.DBExecutor
}

// compliance checks
var (
	_ workout.Repository = (*workoutRepository)(nil)
	_ core.DBExecutor    = (*sqlx.DB)(nil)
	_ core.DBExecutor    = (*sqlx.Tx)(nil)
)

func NewWorkoutRepository(db core.DBExecutor) *workoutRepository {
	return &workoutRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to workout.ErrNotFound
func (repo workoutRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return workout.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo workoutRepository) CreateWorkout(ctx context.Context, w workout.Workout) (workout.Workout, error) {
	w.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO workout (id, title, description, type, difficulty, level, age_group, question, choices,
		                     solution, skill_areas, estimated_minutes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		w.ID, w.Title, w.Description, w.Type, w.Difficulty, w.Level, w.AgeGroup, w.Question,
		pq.StringArray(w.Choices), w.Solution, pq.StringArray(w.SkillAreas), w.EstimatedMinutes, w.CreatedBy, w.CreatedAt,
	)
	if err != nil {
		return workout.Workout{}, errors.Wrap(err, "inserting workout")
	}
	return w, nil
}

func (repo workoutRepository) GetWorkoutByID(ctx context.Context, id string) (workout.Workout, error) {
	var row workoutRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM workout WHERE id = $1`, id); err != nil {
		return workout.Workout{}, repo.trapNoRowsErr(err, "getting workout by ID")
	}
	return row.unpack(), nil
}

func (repo workoutRepository) GetWorkoutByTitle(ctx context.Context, title string) (workout.Workout, error) {
	var row workoutRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM workout WHERE title = $1 LIMIT 1`, title); err != nil {
		return workout.Workout{}, repo.trapNoRowsErr(err, "getting workout by title")
	}
	return row.unpack(), nil
}

func (repo workoutRepository) FilterWorkouts(ctx context.Context, filter workout.QueryFilter) ([]workout.Workout, error) {
	query := `
		SELECT * FROM workout
		WHERE ($1 = '' OR type = $1)
		  AND ($2 = '' OR difficulty = $2)
		  AND ($3 = '' OR level = $3)
		  AND ($4 = '' OR age_group = $4)
		ORDER BY created_at`
	var rows []workoutRow
	err := repo.db.SelectContext(ctx, &rows, query, filter.Type, filter.Difficulty, filter.Level, filter.AgeGroup)
	if err != nil {
		return nil, errors.Wrap(err, "filtering workouts")
	}
	workouts := make([]workout.Workout, 0, len(rows))
	for _, row := range rows {
		workouts = append(workouts, row.unpack())
	}
	return workouts, nil
}
