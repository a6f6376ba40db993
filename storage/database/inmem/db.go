package inmemdb

import (
	"sync"

	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
)

type (
	workoutTable struct {
		mutex sync.RWMutex
		table map[string]*workout.Workout
	}

	attemptTable struct {
		mutex sync.RWMutex
		table map[string]*attempt.Attempt
	}

	// progress rows keyed by (learner, type, difficulty, level)
	progressKey struct {
		learnerID   string
		workoutType string
		difficulty  string
		level       string
	}

	progressTable struct {
		mutex sync.RWMutex
		table map[progressKey]*progress.Progress
	}

	DB struct {
		workout  *workoutTable
		attempt  *attemptTable
		progress *progressTable
	}
)

func Open() *DB {
	return &DB{
		workout:  &workoutTable{table: make(map[string]*workout.Workout)},
		attempt:  &attemptTable{table: make(map[string]*attempt.Attempt)},
		progress: &progressTable{table: make(map[progressKey]*progress.Progress)},
	}
}
