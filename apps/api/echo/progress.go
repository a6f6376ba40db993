package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mazoezi/core/progress"
)

type progressApi struct {
	svc *progress.Service
}

func registerProgressAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *progress.Service) {
	api := progressApi{svc: svc}

	g.GET("/progress", api.summary, jwt)
}

// Handlers

// summary returns the caller's own progress; staff may query any learner's
// via the learner_id query param.
func (api *progressApi) summary(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	learnerID := claims.Subject
	if id := ctx.QueryParam("learner_id"); id != "" && id != claims.Subject {
		if !claims.IsStaff() {
			return errHttpForbidden
		}
		learnerID = id
	}

	summary, err := api.svc.Summary(ctx.Request().Context(), learnerID)
	if err != nil {
		return errors.Wrap(err, "querying progress summary")
	}
	return ctx.JSON(http.StatusOK, summary)
}
