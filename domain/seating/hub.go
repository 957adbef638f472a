package seating

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"wedding-planner/errors"
)

// Hub is the observer registry of a table. It holds no lock: callers
// serialize access to a table, and so to its hub.
type Hub struct {
	log       *slog.Logger
	observers []Observer
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{log: log}
}

// Attach registers an observer once. Attaching it again is ignored,
// so an observer is never notified twice for the same event.
func (h *Hub) Attach(observer Observer) bool {
	if observer == nil || h.indexOf(observer) >= 0 {
		return false
	}
	h.observers = append(h.observers, observer)
	return true
}

func (h *Hub) Detach(observer Observer) bool {
	i := h.indexOf(observer)
	if i < 0 {
		return false
	}
	h.observers = slices.Delete(h.observers, i, i+1)
	return true
}

func (h *Hub) Len() int { return len(h.observers) }

// Broadcast delivers the event to every observer in attach order.
// A failing or panicking observer is logged and skipped: the remaining
// observers still receive the event.
func (h *Hub) Broadcast(evt Event) {
	for _, observer := range slices.Clone(h.observers) {
		if err := deliver(observer, evt); err != nil {
			h.log.Warn("observer failed to handle seating event",
				"observer", fmt.Sprintf("%T", observer),
				"event", evt.Type,
				"event_id", evt.ID,
				"error", err,
			)
		}
	}
	h.log.Debug("seating event broadcast", "event", evt.Type, "observers", len(h.observers))
}

func deliver(observer Observer, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrObserverPanic, r)
		}
	}()
	return observer.Handle(evt)
}

func (h *Hub) indexOf(observer Observer) int {
	return slices.IndexFunc(h.observers, func(o Observer) bool {
		return sameObserver(o, observer)
	})
}

// sameObserver compares identities without panicking on observers
// whose dynamic type is not comparable.
func sameObserver(a, b Observer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
