package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
	"github.com/trezcool/mazoezi/storage/database"
)

var (
	migrateRunFunc = database.RunMigration // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db          *sql.DB
	workoutSvc  *workout.Service
	progressSvc *progress.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate up|up-by-one|down|redo|reset|status|version - run database migrations")
	fmt.Println("  seedworkouts - load the built-in sample workouts into the catalog")
	fmt.Println("  rebuildprogress <learner-id> - recompute a learner's progress summary from the ledger")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2], args[3:]...)
	case "seedworkouts":
		return cli.seedWorkouts()
	case "rebuildprogress":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.rebuildProgress(args[2])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) migrate(command string, args ...string) error {
	return migrateRunFunc(cli.db, command, args...)
}

func (cli *commandLine) seedWorkouts() error {
	created, err := cli.workoutSvc.SeedSamples(context.Background(), "admin-cli")
	if err != nil {
		return err
	}
	fmt.Printf("%d sample workout(s) created\n", created)
	return nil
}

func (cli *commandLine) rebuildProgress(learnerID string) error {
	if err := cli.progressSvc.Rebuild(context.Background(), learnerID); err != nil {
		return err
	}
	fmt.Printf("progress summary rebuilt for learner %q\n", learnerID)
	return nil
}
