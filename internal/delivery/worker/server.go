// Package worker runs the background jobs of the service on a cron schedule.
package worker

import (
	"context"
	"log/slog"

	"recipebox/config"
	"recipebox/internal/delivery"
	"recipebox/internal/delivery/worker/handler"
	"recipebox/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type workerServer struct {
	logger *slog.Logger
	cron   *cron.Cron
	done   chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc                    fx.Lifecycle
	Cfg                   *config.Config
	Logger                *slog.Logger
	SessionCleanupHandler *handler.SessionCleanupHandler
}

// NewServer registers the jobs. An empty session cleanup schedule disables that job.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	c := cron.New(
		cron.WithLogger(cronLogger{logger: params.Logger}),
		cron.WithChain(cron.Recover(cronLogger{logger: params.Logger}), cron.SkipIfStillRunning(cronLogger{logger: params.Logger})),
	)

	if params.Cfg.Session != nil && params.Cfg.Session.CleanupSchedule != "" {
		if _, err := c.AddJob(params.Cfg.Session.CleanupSchedule, params.SessionCleanupHandler); err != nil {
			return nil, errors.Wrapf(err, "invalid session cleanup schedule %q", params.Cfg.Session.CleanupSchedule)
		}
	}

	srv := &workerServer{
		logger: params.Logger,
		cron:   c,
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the scheduler and blocks until it is stopped.
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting worker", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

// stop waits for running jobs to finish, bounded by the lifecycle timeout.
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker")
	close(s.done)

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "worker jobs did not finish in time")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
