package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/internal/config"
	"github.com/aretw0/fabricmock/internal/logging"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/observability"
	"github.com/aretw0/fabricmock/pkg/scenario"
	"github.com/prometheus/client_golang/prometheus"
)

// Options contains the flags shared by every command.
type Options struct {
	ConfigPath string
	// ConfigExplicit is true when the user passed --config, making a missing file an error.
	ConfigExplicit bool
	LogLevel       string
	ScenarioPath   string
	// LogOutput defaults to os.Stderr.
	LogOutput io.Writer
}

// Session is a manager with a scenario already applied.
// Scenario and Report are nil when no scenario was given.
type Session struct {
	Config   config.Config
	Logger   *slog.Logger
	Manager  *fabricmock.Manager
	Registry *prometheus.Registry
	Metrics  *observability.Metrics
	Scenario *scenario.Scenario
	Report   *scenario.Report
}

// Open loads configuration, builds the manager and runs the scenario.
// An empty ScenarioPath leaves the manager empty.
// A failing scenario still returns the session so callers can show the
// partial tree; the error is a *scenario.StepError.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.ConfigExplicit)
	if err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logging.NewWithWriter(out, level)

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	hooks := metrics.Hooks()
	if level <= slog.LevelDebug {
		hooks = domain.Combine(hooks, createDebugHooks(logger))
	}

	m := fabricmock.New(
		fabricmock.WithLogger(logger),
		fabricmock.WithHooks(hooks),
	)

	s := &Session{
		Config:   cfg,
		Logger:   logger,
		Manager:  m,
		Registry: registry,
		Metrics:  metrics,
	}
	if opts.ScenarioPath == "" {
		return s, nil
	}

	sc, err := scenario.Load(opts.ScenarioPath)
	if err != nil {
		return nil, err
	}
	s.Scenario = sc
	s.Logger = logger.With("scenario", sc.Name)

	s.Report, err = scenario.Run(m, sc)
	if err != nil {
		return s, fmt.Errorf("scenario %q failed: %w", sc.Name, err)
	}
	s.Logger.Info("Scenario Completed", "steps", s.Report.Steps, "assertions", s.Report.Assertions)
	return s, nil
}

// Snapshots captures every committed root of the session.
func (s *Session) Snapshots() ([]*domain.TreeSnapshot, error) {
	roots := s.Manager.Roots()
	snaps := make([]*domain.TreeSnapshot, 0, len(roots))
	for _, root := range roots {
		snap, err := s.Manager.Snapshot(root)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
