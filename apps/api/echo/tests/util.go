package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/mazoezi/apps/api/echo"
	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
	inmemdb "github.com/trezcool/mazoezi/storage/database/inmem"
	testutil "github.com/trezcool/mazoezi/tests"
)

var (
	workoutRepo workout.Repository
	workoutSvc  *workout.Service
	attemptSvc  *attempt.Service
	progressSvc *progress.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
	errNotFound     = httpErr{Error: "not found"}
	errConflict     = httpErr{Error: "attempt already closed"}
)

func setup(t *testing.T) Server {
	core.Conf.Debug = false
	core.Conf.TestMode = true

	// set up DB & repos
	db := inmemdb.Open()
	workoutRepo = inmemdb.NewWorkoutRepository(db)
	attemptRepo := inmemdb.NewAttemptRepository(db)
	progressRepo := inmemdb.NewProgressRepository(db)

	// set up services
	validate, translator := core.NewValidator()
	workout.RegisterValidators(validate, translator)

	workoutSvc = workout.NewService(workoutRepo, validate)
	progressSvc = progress.NewService(progressRepo, attemptRepo, workoutSvc, core.Conf.Workout.RecentActivityLimit)
	attemptSvc = attempt.NewService(
		attemptRepo,
		workoutSvc,
		workout.NewScorer(core.Conf.Workout.HintPenalty),
		progressSvc,
	)

	// set up server
	return NewServer(
		&Options{
			DisableReqLogs: true,
			Logger:         testutil.NewLogger(t),
			WorkoutSvc:     workoutSvc,
			AttemptSvc:     attemptSvc,
			ProgressSvc:    progressSvc,
		},
		validate, translator,
	)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func studentToken(t *testing.T, learnerID string) string {
	return getToken(t, learnerID, true, false, false)
}

func teacherToken(t *testing.T, id string) string {
	return getToken(t, id, false, true, false)
}

func adminToken(t *testing.T, id string) string {
	return getToken(t, id, false, false, true)
}

func getToken(t *testing.T, subject string, isStudent, isTeacher, isAdmin bool) string {
	claims := NewClaims(subject, subject, subject+"@test.cd", isStudent, isTeacher, isAdmin)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func unmarchallObj(t *testing.T, data []byte, obj interface{}) {
	if err := json.Unmarshal(data, obj); err != nil {
		t.Fatalf("unmarchallObj() failed: %v", err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
