package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/mazoezi/core"
	"github.com/trezcool/mazoezi/core/attempt"
	"github.com/trezcool/mazoezi/core/progress"
	"github.com/trezcool/mazoezi/core/workout"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger      core.Logger
		WorkoutSvc  *workout.Service
		AttemptSvc  *attempt.Service
		ProgressSvc *progress.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options, validate *validator.Validate, translator ut.Translator) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup(validate, translator)
	return s
}

func (s *server) setup(validate *validator.Validate, translator ut.Translator) {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, translator, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerWorkoutAPI(v1, jwt, s.opts.WorkoutSvc, validate)
	registerAttemptAPI(v1, jwt, s.opts.AttemptSvc, validate)
	registerProgressAPI(v1, jwt, s.opts.ProgressSvc)
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.app.Start(s.opts.Addr); err != nil && err != http.ErrServerClosed {
			s.opts.Logger.Error("server error", err)
			s.signalShutdown()
		}
	}()

	<-s.shutdown

	ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		s.opts.Logger.Fatal("could not stop server gracefully", err)
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Mazoezi API!")
}
