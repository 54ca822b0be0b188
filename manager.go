package fabricmock

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/observability"
)

// Manager is the tree emulator. It holds the root registry and the set of
// allocated tags. A Manager is meant for one test context at a time and is
// not safe for concurrent use.
type Manager struct {
	roots     map[domain.RootTag]*domain.ChildSet
	allocated map[int]struct{}

	recorder *observability.Recorder
	hooks    domain.Hooks
	logger   *slog.Logger
	clock    func() time.Time
}

// Option defines a functional option for configuring the Manager.
type Option func(*Manager)

// WithLogger sets a custom structured logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// WithClock overrides the time source used to stamp recorded calls.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

// New creates an empty emulator.
func New(opts ...Option) *Manager {
	m := &Manager{
		roots:     make(map[domain.RootTag]*domain.ChildSet),
		allocated: make(map[int]struct{}),
		recorder:  observability.NewRecorder(),
		clock:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return m
}

// Reset drops every committed root, allocated tag and recorded call.
func (m *Manager) Reset() {
	m.roots = make(map[domain.RootTag]*domain.ChildSet)
	m.allocated = make(map[int]struct{})
	m.recorder.Clear()
	m.logger.Debug("manager reset")
}

// Recorder returns the log of calls made against m.
func (m *Manager) Recorder() *observability.Recorder {
	return m.recorder
}

// Calls returns the recorded calls of op. An empty op returns every call.
func (m *Manager) Calls(op string) []domain.Call {
	return m.recorder.Calls(op)
}

func (m *Manager) record(op string, err error, args ...any) {
	call := &domain.Call{
		Timestamp: m.clock(),
		Op:        op,
		Args:      args,
		Err:       err,
	}
	m.recorder.Record(call)
	m.hooks.Fire(call)

	if err != nil {
		m.logger.Debug("fabric call failed", "op", op, "error", err)
		return
	}
	m.logger.Debug("fabric call", "op", op)
}
