// Package notify turns projector snapshots into scheduled, cancellable
// reminder firings. The planner is the only stateful piece of the core:
// it holds the outstanding timers and replaces all of them on every plan.
package notify

import "time"

// Clock supplies the current instant. Injected so plans are deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the real local time.
var SystemClock Clock = ClockFunc(time.Now)

// Notification is the payload handed to a Sink when a reminder fires.
// The sink renders it; the planner only decides content and timing.
type Notification struct {
	Title        string        `json:"title"`
	Body         string        `json:"body"`
	Tag          string        `json:"tag"`
	Urgent       bool          `json:"urgent"`
	Sound        bool          `json:"sound"`
	Vibrate      bool          `json:"vibrate"`
	DismissAfter time.Duration `json:"dismiss_after"` // 0 means keep until interaction
}

// Sink receives fired notifications. Implementations must be safe for
// concurrent calls; timers fire on their own goroutines.
type Sink interface {
	Show(n Notification)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n Notification)

func (f SinkFunc) Show(n Notification) { f(n) }
