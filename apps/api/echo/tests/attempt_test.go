package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/workout"
	testutil "github.com/trezcool/mazoezi/tests"
)

// full learner flow: start, hint, submit, inspect.
func Test_attemptApi_flow(t *testing.T) {
	app := setup(t)

	w := testutil.CreateWorkout(t, workoutRepo, "Chains", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B", "C"})
	token := studentToken(t, "learner-1")

	var att attempt.Attempt

	t.Run("Start opens an attempt", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/workouts/"+w.ID+"/attempt", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		unmarchallObj(t, rec.Body.Bytes(), &att)
		assert.NotEmpty(t, att.ID)
		assert.Equal(t, "learner-1", att.LearnerID)
		assert.Equal(t, w.ID, att.WorkoutID)
		assert.Equal(t, attempt.StatusOpen, att.Status)
		assert.Zero(t, att.HintsUsed)
	})

	t.Run("Start again returns the same open attempt", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/workouts/"+w.ID+"/attempt", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var again attempt.Attempt
		unmarchallObj(t, rec.Body.Bytes(), &again)
		assert.Equal(t, att.ID, again.ID)
	})

	t.Run("Hint is recorded", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/attempts/"+att.ID+"/hint", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		unmarchallObj(t, rec.Body.Bytes(), &att)
		assert.Equal(t, 1, att.HintsUsed)
	})

	t.Run("Submit closes and scores", func(t *testing.T) {
		body := marchallObj(t, attempt.Submission{Answer: "B"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/attempts/"+att.ID+"/submit", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		unmarchallObj(t, rec.Body.Bytes(), &att)
		assert.Equal(t, attempt.StatusClosed, att.Status)
		assert.True(t, att.Correct)
		assert.Equal(t, 90, att.Score) // 100 - 1 hint * 10
		require.NotNil(t, att.EndedAt)
		assert.False(t, att.EndedAt.Before(att.StartedAt))
	})

	t.Run("Second submit conflicts", func(t *testing.T) {
		body := marchallObj(t, attempt.Submission{Answer: "B"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/attempts/"+att.ID+"/submit", token, body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusConflict, wantData: marchallObj(t, errConflict)}, rec)
	})

	t.Run("Hint on closed attempt conflicts", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/attempts/"+att.ID+"/hint", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusConflict, wantData: marchallObj(t, errConflict)}, rec)
	})

	t.Run("Owner can retrieve the closed attempt", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attempts/"+att.ID, token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, att)}, rec)
	})

	t.Run("Other learners cannot see it", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attempts/"+att.ID, studentToken(t, "learner-2"))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)}, rec)
	})
}

func Test_attemptApi_incorrectAnswer(t *testing.T) {
	app := setup(t)

	w := testutil.CreateWorkout(t, workoutRepo, "Chains", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B", "C"})
	token := studentToken(t, "learner-1")

	req, rec := newAuthRequest(http.MethodPost, "/v1/workouts/"+w.ID+"/attempt", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var att attempt.Attempt
	unmarchallObj(t, rec.Body.Bytes(), &att)

	body := marchallObj(t, attempt.Submission{Answer: "A"})
	req, rec = newAuthRequest(http.MethodPost, "/v1/attempts/"+att.ID+"/submit", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	unmarchallObj(t, rec.Body.Bytes(), &att)
	assert.Equal(t, attempt.StatusClosed, att.Status)
	assert.False(t, att.Correct)
	assert.Zero(t, att.Score)
}

func Test_attemptApi_errors(t *testing.T) {
	app := setup(t)

	w := testutil.CreateWorkout(t, workoutRepo, "Chains", workout.TypeReasoningChains,
		workout.DifficultyIntermediate, workout.LevelDevelopment, "B", []string{"A", "B", "C"})
	token := studentToken(t, "learner-1")

	req, rec := newAuthRequest(http.MethodPost, "/v1/workouts/"+w.ID+"/attempt", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var att attempt.Attempt
	unmarchallObj(t, rec.Body.Bytes(), &att)

	tests := []httpTest{
		{
			name: "Start requires auth", method: http.MethodPost, path: "/v1/workouts/" + w.ID + "/attempt",
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "Start on unknown workout", method: http.MethodPost, path: "/v1/workouts/nope/attempt", token: token,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
		{
			name: "Hint on unknown attempt", method: http.MethodPost, path: "/v1/attempts/nope/hint", token: token,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
		{
			name: "Submit on unknown attempt", method: http.MethodPost, path: "/v1/attempts/nope/submit", token: token,
			body: marchallObj(t, attempt.Submission{Answer: "B"}), wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
		{
			name: "Submit requires an answer", method: http.MethodPost, path: "/v1/attempts/" + att.ID + "/submit", token: token,
			body: marchallObj(t, attempt.Submission{}), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"answer": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
