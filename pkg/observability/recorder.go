package observability

import "github.com/aretw0/fabricmock/pkg/domain"

// Recorder keeps the ordered log of calls made against a Manager.
// It is not safe for concurrent use, matching the emulator it observes.
type Recorder struct {
	calls []domain.Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Hooks returns hooks that append every call to the recorder.
func (r *Recorder) Hooks() domain.Hooks {
	return domain.Hooks{OnCall: r.Record}
}

// Record appends c to the log.
func (r *Recorder) Record(c *domain.Call) {
	r.calls = append(r.calls, *c)
}

// Calls returns the recorded calls of op, in order. An empty op returns every call.
func (r *Recorder) Calls(op string) []domain.Call {
	out := make([]domain.Call, 0)
	for _, c := range r.calls {
		if op == "" || c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.calls {
		if op == "" || c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent call of op.
func (r *Recorder) Last(op string) (domain.Call, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if op == "" || r.calls[i].Op == op {
			return r.calls[i], true
		}
	}
	return domain.Call{}, false
}

// Clear drops all recorded calls.
func (r *Recorder) Clear() {
	r.calls = nil
}
