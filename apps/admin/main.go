package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
	"github.com/trezcool/mazoezi/storage/database"
	"github.com/trezcool/mazoezi/storage/database/sqlx"
)

func main() {
	db, err := database.Open(core.Conf)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	sdb := sqlx.NewDb(db, core.Conf.Database.Engine)

	validate, translator := core.NewValidator()
	workout.RegisterValidators(validate, translator)

	workoutSvc := workout.NewService(sqlxrepos.NewWorkoutRepository(sdb), validate)
	progressSvc := progress.NewService(
		sqlxrepos.NewProgressRepository(sdb),
		sqlxrepos.NewAttemptRepository(sdb),
		workoutSvc,
		core.Conf.Workout.RecentActivityLimit,
	)

	cli := &commandLine{
		db:          db,
		workoutSvc:  workoutSvc,
		progressSvc: progressSvc,
	}
	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
