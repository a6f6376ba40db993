package workout

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mazoezi/core"
)

var (
	// errors
	ErrNotFound    = errors.New("workout not found")
	ErrTitleExists = errors.New("a workout with this title already exists")
)

type (
	Repository interface {
		CreateWorkout(ctx context.Context, w Workout) (Workout, error)
		GetWorkoutByID(ctx context.Context, id string) (Workout, error)
		GetWorkoutByTitle(ctx context.Context, title string) (Workout, error)
		// FilterWorkouts applies AND operation on available QueryFilter fields.
		FilterWorkouts(ctx context.Context, filter QueryFilter) ([]Workout, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) checkUniqueness(ctx context.Context, title string) error {
	if _, err := svc.repo.GetWorkoutByTitle(ctx, title); err == nil {
		return core.NewValidationError(ErrTitleExists, core.FieldError{Field: "title", Error: ErrTitleExists.Error()})
	} else if err != ErrNotFound {
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nw NewWorkout, createdBy string) (Workout, error) {
	if err := nw.Validate(svc.validate); err != nil {
		return Workout{}, err
	}
	if err := svc.checkUniqueness(ctx, nw.Title); err != nil {
		return Workout{}, err
	}
	w := Workout{
		Title:            nw.Title,
		Description:      nw.Description,
		Type:             nw.Type,
		Difficulty:       nw.Difficulty,
		Level:            nw.Level,
		AgeGroup:         AgeGroupForLevel(nw.Level),
		Question:         nw.Question,
		Choices:          nw.Choices,
		Solution:         nw.Solution,
		SkillAreas:       nw.SkillAreas,
		EstimatedMinutes: nw.EstimatedMinutes,
		CreatedBy:        createdBy,
		CreatedAt:        time.Now().UTC(),
	}
	return svc.repo.CreateWorkout(ctx, w)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Workout, error) {
	return svc.repo.GetWorkoutByID(ctx, id)
}

// GetForLearner returns the workout with its solution redacted.
func (svc *Service) GetForLearner(ctx context.Context, id string) (Workout, error) {
	w, err := svc.repo.GetWorkoutByID(ctx, id)
	if err != nil {
		return Workout{}, err
	}
	return w.ForLearner(), nil
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Workout, error) {
	filter.Clean()
	return svc.repo.FilterWorkouts(ctx, filter)
}

// QueryForLearner is Query with solutions redacted.
func (svc *Service) QueryForLearner(ctx context.Context, filter QueryFilter) ([]Workout, error) {
	workouts, err := svc.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i, w := range workouts {
		workouts[i] = w.ForLearner()
	}
	return workouts, nil
}

// SeedSamples loads the built-in sample workouts into the catalog. It is
// idempotent: samples already present (matched by title) are skipped.
// It returns the number of workouts created.
func (svc *Service) SeedSamples(ctx context.Context, createdBy string) (int, error) {
	var created int
	for _, nw := range SampleWorkouts {
		if _, err := svc.repo.GetWorkoutByTitle(ctx, nw.Title); err == nil {
			continue
		} else if err != ErrNotFound {
			return created, err
		}
		if _, err := svc.Create(ctx, nw, createdBy); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
