package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"detective/cmd/detective/ui"
	"detective/internal/config"
	"detective/internal/debug"
	"detective/internal/errors"
	"detective/internal/game"
	"detective/internal/game/explore"
	"detective/internal/game/session"
	"detective/internal/logging"
	"detective/internal/observability"
	"detective/internal/text"
)

type app struct {
	session *session.Session
	logger  *slog.Logger
	cleanup func()
}

func createApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	logger, closeLog := debug.NewLogger(cfg.Debug)
	text.Configure(cfg.LocaleDir, cfg.Locale)

	tracerProvider, err := observability.InitTracing(ctx, observability.Config{
		Enabled:     cfg.TracesEnabled,
		Endpoint:    cfg.OTLPEndpoint,
		Environment: cfg.Environment,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to initialize tracing", errors.SlogError(err))
	} else if tracerProvider.IsEnabled() {
		logger.InfoContext(ctx, "tracing enabled", slog.String("endpoint", cfg.OTLPEndpoint))
	} else {
		logger.DebugContext(ctx, "tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	c, err := game.NewDefaultCase()
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	deps := session.Deps{
		Case:    c,
		Options: explore.Options{AutoCollect: cfg.AutoCollect},
		Logger:  logger,
		Tracer:  tracerProvider.GetTracer("detective/session"),
	}

	var journal *logging.Journal
	if cfg.Journal != "" {
		if journal, err = logging.NewJournal(cfg.Journal); err != nil {
			_ = closeLog()
			return nil, err
		}
		deps.Journal = journal
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracing", errors.SlogError(err))
		}
		if journal != nil {
			if err := journal.Close(); err != nil {
				logger.Error("failed to close journal", errors.SlogError(err))
			}
		}
		_ = closeLog()
	}

	return &app{
		session: session.New(deps),
		logger:  logger,
		cleanup: cleanup,
	}, nil
}

func play(ctx context.Context, plain bool, in io.Reader, out io.Writer) error {
	a, err := createApp(ctx)
	if err != nil {
		return err
	}
	defer a.cleanup()

	a.logger.InfoContext(a.session.Context(ctx), "starting game", slog.Bool("plain", plain))

	defer logOutcome(ctx, a)

	if plain {
		return session.Run(ctx, a.session, in, out)
	}

	p := tea.NewProgram(ui.NewModel(ctx, a.session), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "run interface")
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func logOutcome(ctx context.Context, a *app) {
	attrs := []any{
		slog.String("session", a.session.ID()),
		slog.String("phase", a.session.Phase().String()),
	}
	if v, ok := a.session.Verdict(); ok {
		attrs = append(attrs,
			slog.String("accused", v.Accused),
			slog.Int("votes", v.Votes),
			slog.String("verdict", v.Class.String()),
		)
	}
	a.logger.InfoContext(ctx, "game over", attrs...)
}
