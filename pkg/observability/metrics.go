package observability

import (
	"errors"
	"fmt"

	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports emulator activity as Prometheus collectors.
type Metrics struct {
	Calls   *prometheus.CounterVec
	Errors  *prometheus.CounterVec
	Nodes   prometheus.Counter
	Commits *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fabricmock_calls_total",
				Help: "Total number of emulator operations invoked",
			},
			[]string{"op"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fabricmock_errors_total",
				Help: "Total number of failed emulator operations",
			},
			[]string{"op", "kind"},
		),
		Nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fabricmock_nodes_created_total",
			Help: "Total number of host nodes created",
		}),
		Commits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fabricmock_root_commits_total",
				Help: "Total number of completeRoot calls per root",
			},
			[]string{"root"},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Calls, m.Errors, m.Nodes, m.Commits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns hooks that update the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnCall: func(c *domain.Call) {
			m.Calls.WithLabelValues(c.Op).Inc()
			if c.Err != nil {
				return
			}
			switch c.Op {
			case domain.OpCreateNode:
				m.Nodes.Inc()
			case domain.OpCompleteRoot:
				if len(c.Args) > 0 {
					m.Commits.WithLabelValues(fmt.Sprint(c.Args[0])).Inc()
				}
			}
		},
		OnError: func(c *domain.Call) {
			m.Errors.WithLabelValues(c.Op, ErrorKind(c.Err)).Inc()
		},
	}
}

// ErrorKind classifies err for metric labels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateTag):
		return "duplicate_tag"
	case errors.Is(err, domain.ErrNotHostNode):
		return "not_host_node"
	default:
		return "other"
	}
}
