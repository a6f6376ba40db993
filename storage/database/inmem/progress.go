package inmemdb

import (
	"context"

	"github.com/trezcool/mazoezi/core/progress"
)

type progressRepository struct {
	db *progressTable
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) *progressRepository {
	return &progressRepository{db: db.progress}
}

func (repo *progressRepository) GetProgress(ctx context.Context, learnerID, workoutType, difficulty, level string) (progress.Progress, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	key := progressKey{learnerID, workoutType, difficulty, level}
	if p, ok := repo.db.table[key]; ok {
		return *p, nil
	}
	return progress.Progress{}, progress.ErrNotFound
}

func (repo *progressRepository) UpsertProgress(ctx context.Context, p progress.Progress) (progress.Progress, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	key := progressKey{p.LearnerID, p.WorkoutType, p.Difficulty, p.Level}
	repo.db.table[key] = &p
	return p, nil
}

func (repo *progressRepository) QueryProgressByLearner(ctx context.Context, learnerID string) ([]progress.Progress, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := make([]progress.Progress, 0)
	for key, p := range repo.db.table {
		if key.learnerID == learnerID {
			rows = append(rows, *p)
		}
	}
	return rows, nil
}

func (repo *progressRepository) DeleteProgressByLearner(ctx context.Context, learnerID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for key := range repo.db.table {
		if key.learnerID == learnerID {
			delete(repo.db.table, key)
		}
	}
	return nil
}
