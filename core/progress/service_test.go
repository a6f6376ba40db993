package progress_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mazoezi/core/workout"
	"github.com/trezcool/mazoezi/tests"
)

func Test_progressSvc_Record(t *testing.T) {
	app := testutil.NewApp(t)
	ctx := context.Background()

	w := testutil.CreateWorkout(t, app.WorkoutRepo, "W1", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B", "C"})

	// three attempts: 90 (1 hint, correct), 0 (incorrect), 70 (3 hints, correct)
	testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w.ID, "B", 1)
	testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w.ID, "A", 0)
	last := testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w.ID, "B", 3)

	summary, err := app.ProgressSvc.Summary(ctx, "learner-1")
	require.NoError(t, err)
	require.Len(t, summary.Rows, 1)

	row := summary.Rows[0]
	assert.Equal(t, workout.TypeReasoningChains, row.WorkoutType)
	assert.Equal(t, workout.DifficultyIntermediate, row.Difficulty)
	assert.Equal(t, workout.LevelDevelopment, row.Level)
	assert.Equal(t, 3, row.Attempts)
	assert.Equal(t, 2, row.Correct)
	assert.InDelta(t, (90.0+0.0+70.0)/3, row.AverageScore, 0.01)
	assert.Equal(t, *last.EndedAt, row.LastActivity)

	assert.Equal(t, 3, summary.TotalAttempts)
	assert.Equal(t, 2, summary.TotalCorrect)
}

func Test_progressSvc_Record_bucketsByTypeDifficultyLevel(t *testing.T) {
	app := testutil.NewApp(t)
	ctx := context.Background()

	w1 := testutil.CreateWorkout(t, app.WorkoutRepo, "W1", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B"})
	w2 := testutil.CreateWorkout(t, app.WorkoutRepo, "W2", workout.TypePatternRecognition,
		workout.DifficultyBeginner, workout.LevelFoundation, "9", []string{"8", "9"})

	testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w1.ID, "B", 0)
	testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w2.ID, "9", 0)
	testutil.CloseAttempt(t, app.AttemptSvc, "learner-2", w1.ID, "A", 0)

	summary, err := app.ProgressSvc.Summary(ctx, "learner-1")
	require.NoError(t, err)
	assert.Len(t, summary.Rows, 2)

	// learner-2's attempts never leak into learner-1's summary
	summary2, err := app.ProgressSvc.Summary(ctx, "learner-2")
	require.NoError(t, err)
	require.Len(t, summary2.Rows, 1)
	assert.Equal(t, 1, summary2.Rows[0].Attempts)
	assert.Zero(t, summary2.Rows[0].Correct)
}

func Test_progressSvc_recentActivity(t *testing.T) {
	app := testutil.NewApp(t)
	ctx := context.Background()

	w := testutil.CreateWorkout(t, app.WorkoutRepo, "W1", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B"})

	var lastID string
	for i := 0; i < 15; i++ {
		att := testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w.ID, "B", 0)
		lastID = att.ID
	}

	summary, err := app.ProgressSvc.Summary(ctx, "learner-1")
	require.NoError(t, err)

	// feed is capped and newest first
	require.Len(t, summary.RecentActivity, 10)
	assert.Equal(t, lastID, summary.RecentActivity[0].ID)
	for i := 1; i < len(summary.RecentActivity); i++ {
		prev, curr := summary.RecentActivity[i-1], summary.RecentActivity[i]
		assert.False(t, prev.EndedAt.Before(*curr.EndedAt))
	}
}

// incremental aggregation must match a full replay of the ledger.
func Test_progressSvc_Rebuild_replayEquivalence(t *testing.T) {
	app := testutil.NewApp(t)
	ctx := context.Background()

	workouts := []workout.Workout{
		testutil.CreateWorkout(t, app.WorkoutRepo, "W1", workout.TypeReasoningChains,
			workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B"}),
		testutil.CreateWorkout(t, app.WorkoutRepo, "W2", workout.TypePatternRecognition,
			workout.DifficultyBeginner, workout.LevelFoundation, "9", []string{"8", "9"}),
		testutil.CreateWorkout(t, app.WorkoutRepo, "W3", workout.TypeCriticalThinking,
			workout.DifficultyAdvanced, workout.LevelMastery, "yes", []string{"yes", "no"}),
	}
	answers := []string{"B", "8", "yes", "A", "9", "no", "B", "9", "yes"}
	for i, answer := range answers {
		w := workouts[i%len(workouts)]
		testutil.CloseAttempt(t, app.AttemptSvc, "learner-1", w.ID, answer, i%4)
	}

	incremental, err := app.ProgressSvc.Summary(ctx, "learner-1")
	require.NoError(t, err)

	require.NoError(t, app.ProgressSvc.Rebuild(ctx, "learner-1"))

	replayed, err := app.ProgressSvc.Summary(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, incremental, replayed)
}

func Test_progressSvc_Summary_empty(t *testing.T) {
	app := testutil.NewApp(t)

	summary, err := app.ProgressSvc.Summary(context.Background(), "learner-1")
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
	assert.Empty(t, summary.RecentActivity)
	assert.Zero(t, summary.TotalAttempts)
}

func Test_progressSvc_Record_rejectsOpenAttempt(t *testing.T) {
	app := testutil.NewApp(t)
	ctx := context.Background()

	w := testutil.CreateWorkout(t, app.WorkoutRepo, "W1", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B"})
	att, err := app.AttemptSvc.Start(ctx, "learner-1", w.ID)
	require.NoError(t, err)

	w, err = app.WorkoutSvc.GetByID(ctx, w.ID)
	require.NoError(t, err)
	err = app.ProgressSvc.Record(ctx, att, w)
	assert.EqualError(t, err, "cannot record an open attempt")
}
