package domain

import "time"

// Call records one invocation of an emulator operation.
type Call struct {
	Timestamp time.Time `json:"timestamp"`
	Op        string    `json:"op"`
	Args      []any     `json:"-"`
	Err       error     `json:"-"`
}

// Hooks defines callbacks for emulator observability.
// They run synchronously, inside the operation that triggered them.
type Hooks struct {
	OnCall  func(*Call)
	OnError func(*Call)
}

// Fire dispatches c to the matching hooks.
func (h Hooks) Fire(c *Call) {
	if h.OnCall != nil {
		h.OnCall(c)
	}
	if c.Err != nil && h.OnError != nil {
		h.OnError(c)
	}
}

// Combine returns hooks that invoke every given set in order.
func Combine(all ...Hooks) Hooks {
	return Hooks{
		OnCall: func(c *Call) {
			for _, h := range all {
				if h.OnCall != nil {
					h.OnCall(c)
				}
			}
		},
		OnError: func(c *Call) {
			for _, h := range all {
				if h.OnError != nil {
					h.OnError(c)
				}
			}
		},
	}
}

// LayoutAnimationConfig is accepted by ConfigureNextLayoutAnimation and otherwise ignored.
type LayoutAnimationConfig struct {
	Duration float64        `json:"duration"`
	Create   map[string]any `json:"create,omitempty"`
	Update   map[string]any `json:"update,omitempty"`
	Delete   map[string]any `json:"delete,omitempty"`
}
