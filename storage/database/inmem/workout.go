package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/mazoezi/core/workout"
)

type workoutRepository struct {
	db *workoutTable
}

var _ workout.Repository = (*workoutRepository)(nil) // interface compliance check

func NewWorkoutRepository(db *DB) *workoutRepository {
	return &workoutRepository{db: db.workout}
}

func (repo *workoutRepository) CreateWorkout(ctx context.Context, w workout.Workout) (workout.Workout, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	w.ID = uuid.New().String()
	repo.db.table[w.ID] = &w
	return w, nil
}

func (repo *workoutRepository) GetWorkoutByID(ctx context.Context, id string) (workout.Workout, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if w, ok := repo.db.table[id]; ok {
		return *w, nil
	}
	return workout.Workout{}, workout.ErrNotFound
}

func (repo *workoutRepository) GetWorkoutByTitle(ctx context.Context, title string) (workout.Workout, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, w := range repo.db.table {
		if w.Title == title {
			return *w, nil
		}
	}
	return workout.Workout{}, workout.ErrNotFound
}

func (repo *workoutRepository) FilterWorkouts(ctx context.Context, filter workout.QueryFilter) ([]workout.Workout, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	workouts := make([]workout.Workout, 0, len(repo.db.table))
	for _, w := range repo.db.table {
		if filter.Match(*w) {
			workouts = append(workouts, *w)
		}
	}
	return workouts, nil
}
