package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/workout"
)

type attemptApi struct {
	svc      *attempt.Service
	validate *validator.Validate
}

func registerAttemptAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *attempt.Service, validate *validator.Validate) {
	api := attemptApi{svc: svc, validate: validate}

	g.POST("/workouts/:id/attempt", api.start, jwt)

	ag := g.Group("/attempts", jwt)
	ag.GET("/:id", api.retrieve)
	ag.POST("/:id/hint", api.recordHint)
	ag.POST("/:id/submit", api.submit)
}

// Handlers

func (api *attemptApi) start(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	att, err := api.svc.Start(ctx.Request().Context(), claims.Subject, ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == workout.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "starting attempt")
	}
	return ctx.JSON(http.StatusOK, att)
}

func (api *attemptApi) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	att, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"), claims.Subject)
	if err != nil {
		return api.trapAttemptErr(err, "finding attempt by ID")
	}
	return ctx.JSON(http.StatusOK, att)
}

func (api *attemptApi) recordHint(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	att, err := api.svc.RecordHint(ctx.Request().Context(), ctx.Param("id"), claims.Subject)
	if err != nil {
		return api.trapAttemptErr(err, "recording hint")
	}
	return ctx.JSON(http.StatusOK, att)
}

func (api *attemptApi) submit(ctx echo.Context) error {
	var data attempt.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	att, err := api.svc.Submit(ctx.Request().Context(), ctx.Param("id"), claims.Subject, data.Answer)
	if err != nil {
		return api.trapAttemptErr(err, "submitting answer")
	}
	return ctx.JSON(http.StatusOK, att)
}

// trapAttemptErr maps ledger sentinels to their HTTP counterparts.
func (api *attemptApi) trapAttemptErr(err error, msg string) error {
	switch errors.Cause(err) {
	case attempt.ErrNotFound, workout.ErrNotFound:
		return errHttpNotFound
	case attempt.ErrClosed:
		return errHttpConflict
	}
	return errors.Wrap(err, msg)
}
