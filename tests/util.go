package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
	"github.com/trezcool/mazoezi/storage/database/inmem"
)

// Logger is a core.Logger that reports through the test runner.
type Logger struct {
	t *testing.T
}

var _ core.Logger = (*Logger)(nil)

func NewLogger(t *testing.T) *Logger { return &Logger{t: t} }

func (l Logger) Enable(bool)                           {}
func (l Logger) Debug(msg string, args ...interface{}) { l.t.Logf("DEBUG: %s %v", msg, args) }
func (l Logger) Info(msg string, args ...interface{})  { l.t.Logf("INFO: %s %v", msg, args) }
func (l Logger) Warn(msg string, args ...interface{})  { l.t.Logf("WARN: %s %v", msg, args) }
func (l Logger) Error(msg string, args ...interface{}) { l.t.Logf("ERROR: %s %v", msg, args) }
func (l Logger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("FATAL: %s %v", msg, args) }

// App bundles the service graph wired on the in-memory database, for tests.
type App struct {
	DB           *inmemdb.DB
	WorkoutRepo  workout.Repository
	AttemptRepo  attempt.Repository
	ProgressRepo progress.Repository
	WorkoutSvc   *workout.Service
	AttemptSvc   *attempt.Service
	ProgressSvc  *progress.Service
}

// NewApp wires all services on a fresh in-memory database.
func NewApp(t *testing.T) *App {
	t.Helper()

	db := inmemdb.Open()
	workoutRepo := inmemdb.NewWorkoutRepository(db)
	attemptRepo := inmemdb.NewAttemptRepository(db)
	progressRepo := inmemdb.NewProgressRepository(db)

	validate, translator := core.NewValidator()
	workout.RegisterValidators(validate, translator)

	workoutSvc := workout.NewService(workoutRepo, validate)
	progressSvc := progress.NewService(progressRepo, attemptRepo, workoutSvc, core.Conf.Workout.RecentActivityLimit)
	attemptSvc := attempt.NewService(
		attemptRepo,
		workoutSvc,
		workout.NewScorer(core.Conf.Workout.HintPenalty),
		progressSvc,
	)

	return &App{
		DB:           db,
		WorkoutRepo:  workoutRepo,
		AttemptRepo:  attemptRepo,
		ProgressRepo: progressRepo,
		WorkoutSvc:   workoutSvc,
		AttemptSvc:   attemptSvc,
		ProgressSvc:  progressSvc,
	}
}

// CreateWorkout stores a workout directly in the repository, bypassing
// authoring validation.
func CreateWorkout(
	t *testing.T,
	repo workout.Repository,
	title, typ, difficulty, level, solution string,
	choices []string,
) workout.Workout {
	t.Helper()

	w := workout.Workout{
		Title:      title,
		Type:       typ,
		Difficulty: difficulty,
		Level:      level,
		AgeGroup:   workout.AgeGroupForLevel(level),
		Question:   "n/a",
		Choices:    choices,
		Solution:   solution,
		SkillAreas: []string{workout.SkillLogicalThinking},
		CreatedAt:  time.Now().UTC(),
	}
	w, err := repo.CreateWorkout(context.Background(), w)
	if err != nil {
		t.Fatalf("CreateWorkout() failed: %v", err)
	}
	return w
}

// CloseAttempt runs a full start+submit cycle for the learner on the workout.
func CloseAttempt(
	t *testing.T,
	svc *attempt.Service,
	learnerID, workoutID, answer string,
	hints int,
) attempt.Attempt {
	t.Helper()

	ctx := context.Background()
	att, err := svc.Start(ctx, learnerID, workoutID)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	for i := 0; i < hints; i++ {
		if _, err = svc.RecordHint(ctx, att.ID, learnerID); err != nil {
			t.Fatalf("RecordHint() failed: %v", err)
		}
	}
	att, err = svc.Submit(ctx, att.ID, learnerID, answer)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	return att
}
