package shell

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Shell runs an fx application until it is told to stop, either by an OS
// signal or through fx.Shutdowner.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

// New creates a shell providing the logger and the given options to every
// application it runs.
func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts an application built from the shell options and the given
// run options, blocks until it is signalled, then stops it. A non-zero exit
// code is returned as an *ExitError.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	defer s.log.Sync() //nolint:errcheck

	// the app context outlives start, and is cancelled once the app stopped
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	app := s.createFxApp(appCtx, options...)
	if err := app.Err(); err != nil {
		s.log.Error("failed to build application", zap.Error(err))
		return NewExitError(1)
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		s.log.Error("failed to start application", zap.Error(err))
		return NewExitError(1)
	}

	sig := <-app.Wait()

	s.log.Debug("stopping application", zap.Int("exit_code", sig.ExitCode))

	stopCtx, cancelStop := context.WithTimeout(ctx, app.StopTimeout())
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil {
		s.log.Error("failed to stop application", zap.Error(err))
		return NewExitError(1)
	}

	if sig.ExitCode != 0 {
		return NewExitError(sig.ExitCode)
	}

	return nil
}

func (s *Shell) createFxApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(s.log),

		// use the logger also for fx' logs
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: s.log.Named("fx")}
		}),

		// shell options
		fx.Options(s.options...),

		// run options
		fx.Options(options...),
	)
}
