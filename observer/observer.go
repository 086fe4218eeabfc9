package observer

import (
	"io"
	"reflect"

	"github.com/rs/zerolog"
)

// Event is the value delivered to observers.
type Event struct {
	// Topic names the event stream, e.g. "order.created".
	Topic string

	// Payload is the event body, opaque to the subject.
	Payload string
}

// Observer receives published events.
type Observer interface {
	// Notify is invoked synchronously for every published event.
	Notify(e Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(e Event)

// Notify implements Observer.
func (f ObserverFunc) Notify(e Event) { f(e) }

// Subject maintains an ordered observer list and fans events out to it.
// The zero value is ready to use.
type Subject struct {
	observers []Observer
}

// Subscribe appends o to the notification list. Duplicate subscriptions are
// legal and receive the event once per subscription.
// Complexity: O(1) amortized.
func (s *Subject) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Unsubscribe removes the first subscription of o, preserving the order of
// the rest. Unknown observers are ignored. Only comparable observers
// (pointer or struct observers, not ObserverFunc) can be unsubscribed;
// non-comparable values are ignored.
// Complexity: O(K) for K observers.
func (s *Subject) Unsubscribe(o Observer) {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return
	}
	var i int
	var cur Observer
	for i, cur = range s.observers {
		if reflect.TypeOf(cur).Comparable() && cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)

			return
		}
	}
}

// Publish delivers e to every observer in subscription order and returns
// when the last one has run.
// Complexity: O(K) plus observer work.
func (s *Subject) Publish(e Event) {
	var o Observer
	for _, o = range s.observers {
		o.Notify(e)
	}
}

// Len returns the number of active subscriptions.
func (s *Subject) Len() int { return len(s.observers) }

// LogObserver writes each event as one structured zerolog line.
type LogObserver struct {
	logger zerolog.Logger
}

// NewLogObserver creates a LogObserver emitting to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: zerolog.New(w)}
}

// Notify implements Observer: one info-level line per event, with the
// topic and payload as structured fields.
func (l *LogObserver) Notify(e Event) {
	l.logger.Info().
		Str("topic", e.Topic).
		Str("payload", e.Payload).
		Msg("event")
}
