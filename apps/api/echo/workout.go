package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/workout"
)

type workoutApi struct {
	svc      *workout.Service
	validate *validator.Validate
}

func registerWorkoutAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *workout.Service, validate *validator.Validate) {
	api := workoutApi{svc: svc, validate: validate}

	wg := g.Group("/workouts", jwt)
	wg.GET("", api.query)
	wg.POST("", api.create, staffMiddleware())
	wg.POST("/initialize-samples", api.initializeSamples, adminMiddleware())
	wg.GET("/:id", api.retrieve)
}

// Handlers

func (api *workoutApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	filter := new(workout.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	var workouts []workout.Workout
	if claims.IsStaff() {
		workouts, err = api.svc.Query(ctx.Request().Context(), *filter)
	} else {
		workouts, err = api.svc.QueryForLearner(ctx.Request().Context(), *filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying workouts")
	}
	if workouts == nil {
		workouts = []workout.Workout{}
	}
	return ctx.JSON(http.StatusOK, workouts)
}

func (api *workoutApi) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var w workout.Workout
	if claims.IsStaff() {
		w, err = api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	} else {
		w, err = api.svc.GetForLearner(ctx.Request().Context(), ctx.Param("id"))
	}
	if err != nil {
		if errors.Cause(err) == workout.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding workout by ID")
	}
	return ctx.JSON(http.StatusOK, w)
}

func (api *workoutApi) create(ctx echo.Context) error {
	var data workout.NewWorkout
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewWorkout")
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	w, err := api.svc.Create(ctx.Request().Context(), data, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "creating workout")
	}
	return ctx.JSON(http.StatusCreated, w)
}

func (api *workoutApi) initializeSamples(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	created, err := api.svc.SeedSamples(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "seeding sample workouts")
	}
	return ctx.JSON(http.StatusOK, SeedResponse{Created: created})
}

type SeedResponse struct {
	Created int `json:"created"`
}
