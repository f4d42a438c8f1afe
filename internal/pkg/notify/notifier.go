// internal/pkg/notify/notifier.go
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Kind classifies a user-facing notification event.
type Kind string

const (
	KindAdded       Kind = "added"
	KindRemoved     Kind = "removed"
	KindFavorited   Kind = "favorited"
	KindUnfavorited Kind = "unfavorited"
	KindError       Kind = "error"
)

// Event is a fire-and-forget user feedback signal. Rendering and timing
// are entirely the collaborator's concern.
type Event struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives notification events emitted by the stores.
type Notifier interface {
	Notify(event Event)
}

// LogNotifier writes events to a logrus logger.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the event.
func (n *LogNotifier) Notify(event Event) {
	entry := n.logger.WithFields(logrus.Fields{
		"kind":    event.Kind,
		"message": event.Message,
	})
	if event.Kind == KindError {
		entry.Warn("notification")
		return
	}
	entry.Info("notification")
}

// Recorder captures events in memory for inspection in tests and for
// returning the events raised by a mutation to an HTTP client.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify appends the event.
func (r *Recorder) Notify(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the captured events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards captured events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Multi fans an event out to several notifiers.
type Multi []Notifier

// Notify delivers the event to every notifier in order.
func (m Multi) Notify(event Event) {
	for _, n := range m {
		n.Notify(event)
	}
}
