package main

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
	inmemdb "github.com/trezcool/mazoezi/storage/database/inmem"
	testutil "github.com/trezcool/mazoezi/tests"
)

var (
	workoutRepo  workout.Repository
	progressRepo progress.Repository
	attemptSvc   *attempt.Service
)

func setup(t *testing.T) *commandLine {
	db := inmemdb.Open()
	workoutRepo = inmemdb.NewWorkoutRepository(db)
	attemptRepo := inmemdb.NewAttemptRepository(db)
	progressRepo = inmemdb.NewProgressRepository(db)

	validate, translator := core.NewValidator()
	workout.RegisterValidators(validate, translator)

	workoutSvc := workout.NewService(workoutRepo, validate)
	progressSvc := progress.NewService(progressRepo, attemptRepo, workoutSvc, core.Conf.Workout.RecentActivityLimit)
	attemptSvc = attempt.NewService(
		attemptRepo,
		workoutSvc,
		workout.NewScorer(core.Conf.Workout.HintPenalty),
		progressSvc,
	)

	// start CLI
	return &commandLine{
		workoutSvc:  workoutSvc,
		progressSvc: progressSvc,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	migrateRunFunc = func(db *sql.DB, command string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "redo", "reset", "status", "version": // pass
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}

func Test_commandLine_seedWorkouts(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "seedworkouts"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}

	workouts, err := cli.workoutSvc.Query(context.Background(), workout.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(workouts) != len(workout.SampleWorkouts) {
		t.Errorf("seeded %d workouts; want %d", len(workouts), len(workout.SampleWorkouts))
	}

	// a second run is a no-op
	if err := cli.run([]string{"admin", "seedworkouts"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	workouts, _ = cli.workoutSvc.Query(context.Background(), workout.QueryFilter{})
	if len(workouts) != len(workout.SampleWorkouts) {
		t.Errorf("re-seed created duplicates; got %d workouts", len(workouts))
	}
}

func Test_commandLine_rebuildProgress(t *testing.T) {
	cli := setup(t)
	ctx := context.Background()

	w := testutil.CreateWorkout(
		t, workoutRepo,
		"Spot the pattern", workout.TypePatternRecognition,
		workout.DifficultyBeginner, workout.LevelFoundation,
		"B", []string{"A", "B", "C"},
	)
	testutil.CloseAttempt(t, attemptSvc, "learner-1", w.ID, "B", 0)
	testutil.CloseAttempt(t, attemptSvc, "learner-1", w.ID, "C", 0)

	// tamper with the materialized row so a successful rebuild is observable
	if _, err := progressRepo.UpsertProgress(ctx, progress.Progress{
		LearnerID:   "learner-1",
		WorkoutType: workout.TypePatternRecognition,
		Difficulty:  workout.DifficultyBeginner,
		Level:       workout.LevelFoundation,
		Attempts:    99,
		Correct:     99,
	}); err != nil {
		t.Fatalf("UpsertProgress() failed: %v", err)
	}

	if err := cli.run([]string{"admin", "rebuildprogress"}); err != errHelp {
		t.Errorf("cli.run() without a learner id error = %v, want errHelp", err)
	}
	if err := cli.run([]string{"admin", "rebuildprogress", "learner-1"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}

	sum, err := cli.progressSvc.Summary(ctx, "learner-1")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.TotalAttempts != 2 {
		t.Errorf("TotalAttempts = %d; want 2", sum.TotalAttempts)
	}
	if sum.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d; want 1", sum.TotalCorrect)
	}
}
