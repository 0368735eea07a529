package main

import (
	"context"
	"errors"

	"github.com/genricoloni/musicard/internal/card"
	"github.com/genricoloni/musicard/internal/config"
	"github.com/genricoloni/musicard/internal/domain"
	"github.com/genricoloni/musicard/internal/engine"
	"github.com/genricoloni/musicard/internal/executor"
	"github.com/genricoloni/musicard/internal/fetcher"
	"github.com/genricoloni/musicard/internal/fonts"
	"github.com/genricoloni/musicard/internal/imageio"
	"github.com/genricoloni/musicard/internal/monitor"
	"github.com/genricoloni/musicard/internal/processor"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions wires configuration and everything a render needs
var AppOptions = fx.Options(
	fx.Provide(
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		fx.Annotate(fetcher.NewHTTPFetcher, fx.As(new(domain.Fetcher))),
		fx.Annotate(imageio.NewLoader, fx.As(new(domain.ImageLoader))),
		fx.Annotate(fonts.NewCatalogFromConfig, fx.As(new(domain.FontCatalog))),
		fx.Annotate(card.NewCompositor, fx.As(new(domain.CardRenderer))),
	),
)

// WatchOptions adds the player monitor and the engine on top of AppOptions
var WatchOptions = fx.Options(
	fx.Provide(
		fx.Annotate(monitor.NewMprisMonitor, fx.As(new(domain.Monitor))),
		fx.Annotate(processor.NewBlurProcessor, fx.As(new(domain.ArtProcessor))),
		fx.Annotate(executor.NewHookExecutor, fx.As(new(domain.CardPublisher))),
		engine.NewEngine,
	),
	fx.Invoke(registerWatchHooks),
)

// loggerOptions provides the logger and routes fx events through it
func loggerOptions(debug bool) fx.Option {
	return fx.Options(
		fx.Provide(func() (*zap.Logger, error) {
			return newLogger(debug)
		}),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			if debug {
				return &fxevent.ZapLogger{Logger: log}
			}
			// Keep the graph wiring out of normal output
			return &fxevent.ZapLogger{Logger: log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
	)
}

// newLogger creates a production logger, or a development one when debug is set
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// registerWatchHooks runs the monitor and the engine for the lifetime of the app
func registerWatchHooks(lc fx.Lifecycle, logger *zap.Logger, mon domain.Monitor, eng *engine.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := eng.Start(ctx); err != nil {
				return err
			}
			// Start blocks until Stop
			go func() {
				if err := mon.Start(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("Player monitor failed", zap.Error(err))
				}
			}()
			logger.Info("Musicard watcher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			if err := mon.Stop(ctx); err != nil {
				logger.Warn("Failed to stop player monitor", zap.Error(err))
			}
			return eng.Stop(ctx)
		},
	})
}
