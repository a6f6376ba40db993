package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/mazoezi/apps/api/echo"
	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
	"github.com/trezcool/mazoezi/services/logger"
	"github.com/trezcool/mazoezi/storage/database"
	"github.com/trezcool/mazoezi/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(core.Conf.RollbarToken != "")

	// set up DB
	db, err := database.Open(core.Conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer db.Close()
	if err = database.Migrate(db); err != nil {
		logger.Fatal("migrating database", err)
	}

	// set up repos
	sdb := sqlx.NewDb(db, core.Conf.Database.Engine)
	workoutRepo := sqlxrepos.NewWorkoutRepository(sdb)
	attemptRepo := sqlxrepos.NewAttemptRepository(sdb)
	progressRepo := sqlxrepos.NewProgressRepository(sdb)

	// set up services
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

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:        core.Conf.Server.Addr(),
			Logger:      logger,
			WorkoutSvc:  workoutSvc,
			AttemptSvc:  attemptSvc,
			ProgressSvc: progressSvc,
		},
		validate, translator,
	)
	app.Start()
}
