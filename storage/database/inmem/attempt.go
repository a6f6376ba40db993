package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trezcool/mazoezi/core/attempt"
)

type attemptRepository struct {
	db *attemptTable
}

var _ attempt.Repository = (*attemptRepository)(nil) // interface compliance check

func NewAttemptRepository(db *DB) *attemptRepository {
	return &attemptRepository{db: db.attempt}
}

func (repo *attemptRepository) CreateAttempt(ctx context.Context, att attempt.Attempt) (attempt.Attempt, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// at most one open attempt per (learner, workout) pair: a concurrent
	// start that lost the race gets the attempt the winner created
	for _, existing := range repo.db.table {
		if existing.LearnerID == att.LearnerID && existing.WorkoutID == att.WorkoutID && existing.IsOpen() {
			return *existing, nil
		}
	}

	att.ID = uuid.New().String()
	repo.db.table[att.ID] = &att
	return att, nil
}

func (repo *attemptRepository) GetAttemptByID(ctx context.Context, id string) (attempt.Attempt, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if att, ok := repo.db.table[id]; ok {
		return *att, nil
	}
	return attempt.Attempt{}, attempt.ErrNotFound
}

func (repo *attemptRepository) GetOpenAttempt(ctx context.Context, learnerID, workoutID string) (attempt.Attempt, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, att := range repo.db.table {
		if att.LearnerID == learnerID && att.WorkoutID == workoutID && att.IsOpen() {
			return *att, nil
		}
	}
	return attempt.Attempt{}, attempt.ErrNotFound
}

func (repo *attemptRepository) AddHint(ctx context.Context, id string) (attempt.Attempt, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	att, ok := repo.db.table[id]
	if !ok {
		return attempt.Attempt{}, attempt.ErrNotFound
	}
	if !att.IsOpen() {
		return attempt.Attempt{}, attempt.ErrClosed
	}
	att.HintsUsed++
	return *att, nil
}

func (repo *attemptRepository) CloseAttempt(ctx context.Context, closed attempt.Attempt) (attempt.Attempt, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	att, ok := repo.db.table[closed.ID]
	if !ok {
		return attempt.Attempt{}, attempt.ErrNotFound
	}
	// compare-and-set on status: losers of a submit race land here
	if !att.IsOpen() {
		return attempt.Attempt{}, attempt.ErrClosed
	}
	// the stored hint count may have moved past the caller's read; keep it
	att.Status = attempt.StatusClosed
	att.EndedAt = closed.EndedAt
	att.Answer = closed.Answer
	att.Score = closed.Score
	att.Correct = closed.Correct
	return *att, nil
}

func (repo *attemptRepository) QueryClosedAttempts(ctx context.Context, learnerID string, limit int) ([]attempt.Attempt, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	attempts := make([]attempt.Attempt, 0)
	for _, att := range repo.db.table {
		if att.LearnerID == learnerID && !att.IsOpen() {
			attempts = append(attempts, *att)
		}
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].EndedAt.After(*attempts[j].EndedAt) })
	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}
