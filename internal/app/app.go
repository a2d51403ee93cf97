package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"SignalScanner/internal/config"
	"SignalScanner/internal/domain"
	"SignalScanner/internal/infrastructure/httpapi"
	"SignalScanner/internal/infrastructure/parser"
	"SignalScanner/internal/infrastructure/telegram"
	"SignalScanner/internal/logging"
	"SignalScanner/internal/ports"
	"SignalScanner/internal/scanner"
	"SignalScanner/internal/usecase"
)

// ErrNotifierDisabled is returned by Notify when no Telegram credentials are configured.
var ErrNotifierDisabled = errors.New("telegram notifications are not configured")

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	notifier ports.Notifier
}

// New builds a runnable application instance from validated configuration.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	fetcher := cfg.Fetcher
	client := parser.NewHTTPClient(
		&http.Client{Timeout: fetcher.RequestTimeout.Std()},
		parser.NewHeaderRotator(nil),
		fetcher.HostInterval.Std(),
	)
	backendLogger := func(name string) *slog.Logger {
		return baseLogger.With("component", "backend."+name)
	}

	registry := scanner.NewRegistry()
	registry.Register(parser.NewDuckDuckGo(client, fetcher.Endpoints["duckduckgo"], backendLogger("duckduckgo")))
	registry.Register(parser.NewBing(client, fetcher.Endpoints["bing"], backendLogger("bing")))
	registry.Register(parser.NewGoogle(client, fetcher.Endpoints["google"], backendLogger("google")))
	registry.Register(parser.NewGoogleNews(client, fetcher.Endpoints["googlenews"], backendLogger("googlenews")))

	backends, err := registry.Ordered(fetcher.Backends)
	if err != nil {
		return nil, err
	}

	pacer := usecase.NewRandomPacer(fetcher.PauseMin.Std(), fetcher.PauseMax.Std(), nil)
	source := parser.NewFallbackSource(backends, pacer, baseLogger.With("component", "source"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:   source,
		Logger:   baseLogger.With("component", "pipeline"),
		Deadline: fetcher.Deadline.Std(),
	})

	a := &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
	if tg := cfg.Notifications.Telegram; tg.Enabled() {
		a.notifier = telegram.NewNotifier(tg.BotToken, tg.ChatID)
	}
	return a, nil
}

// Scan runs one discovery pass for company.
func (a *Application) Scan(ctx context.Context, company string) (domain.Report, error) {
	return a.pipeline.Run(ctx, company)
}

// Notify pushes a digest of the top limit signals to the configured chat.
func (a *Application) Notify(ctx context.Context, report domain.Report, limit int) error {
	if a.notifier == nil {
		return ErrNotifierDisabled
	}
	return a.notifier.PublishDigest(ctx, usecase.BuildDigest(report, limit))
}

// Serve exposes the pipeline over HTTP until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	e := httpapi.NewServer(httpapi.NewHandler(a.pipeline, a.cfg.Server.SignalLimit, a.logger.With("component", "http")))

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.cfg.Server.Addr)
		errCh <- e.Start(a.cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	a.logger.Info("http server shutting down")
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
