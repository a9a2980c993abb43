package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/conveyor/core"
	"github.com/katalvlaran/conveyor/internal/baggage"
	"github.com/katalvlaran/conveyor/internal/cli"
	"github.com/katalvlaran/conveyor/internal/config"
	"github.com/katalvlaran/conveyor/internal/ctxlog"
	"github.com/katalvlaran/conveyor/internal/loader"
	"github.com/katalvlaran/conveyor/internal/server"
)

// ErrProblems is returned by check mode when the manifest had rejected lines
// or bags without a route.
var ErrProblems = errors.New("app: manifest has problems")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    config.Config
}

// NewApp returns an App writing results to outW and logs to logW. An invalid
// cfg is rejected before anything is logged.
func NewApp(outW, logW io.Writer, cfg config.Config) (*App, error) {
	logger, err := newLogger(cfg, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")

	return &App{outW: outW, logger: logger, cfg: cfg}, nil
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Run executes the invocation's mode.
func (a *App) Run(ctx context.Context, inv *cli.Invocation) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if inv.Mode == cli.ModeGenerate {
		return a.generate(inv)
	}

	m, router, err := a.load(ctx)
	if err != nil {
		return err
	}

	switch inv.Mode {
	case cli.ModeCheck:
		return a.check(ctx, m, router)
	case cli.ModeServe:
		return server.New(router, m, a.logger).ListenAndServe(ctx, a.cfg.Listen)
	default:
		rep := router.Run(ctx, m)
		if _, err := rep.WriteTo(a.outW); err != nil {
			return errors.Wrap(err, "app: write routes")
		}
		a.logger.Info("Bags routed.", "bags", len(rep.Outcomes), "failed", len(rep.Failed()))
		return nil
	}
}

// load parses the manifest, logs its problems and builds the router.
func (a *App) load(ctx context.Context) (*loader.Manifest, *baggage.Router, error) {
	m, err := loader.ParseFile(a.cfg.Input, loader.WithMarker(a.cfg.SectionMarker))
	if err != nil {
		return nil, nil, err
	}
	for _, p := range m.Problems {
		a.logger.Warn("Input line rejected.", "section", p.Section.String(), "line", p.Line, "text", p.Text, "error", p.Err)
	}

	var opts []core.GraphOption
	if a.cfg.ParallelLinks == config.ParallelReject {
		opts = append(opts, core.WithRejectParallel())
	}
	g, err := m.Graph(opts...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "app: build network from %s", a.cfg.Input)
	}
	stats := g.Stats()
	a.logger.Debug("Network built.", "junctions", stats.Junctions, "connections", stats.Connections, "isolated", stats.Isolated)

	router := baggage.NewRouter(g,
		baggage.WithClaimJunction(a.cfg.ClaimJunction),
		baggage.WithArrivalTag(a.cfg.ArrivalTag),
		baggage.WithWorkers(a.cfg.Workers),
		baggage.WithCacheSize(a.cfg.CacheSize),
		baggage.WithLogger(ctxlog.FromContext(ctx)),
	)

	return m, router, nil
}

// check prints diagnostics without routing output.
func (a *App) check(ctx context.Context, m *loader.Manifest, router *baggage.Router) error {
	d := Diagnose(ctx, m, router)
	if _, err := d.WriteTo(a.outW); err != nil {
		return errors.Wrap(err, "app: write diagnostics")
	}
	if d.Clean() {
		return nil
	}

	return fmt.Errorf("%w: %d rejected lines, %d unrouted bags", ErrProblems, len(d.Problems), len(d.Unrouted))
}
