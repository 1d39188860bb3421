package store

import (
	"context"

	"github.com/frahmantamala/finance-tracker/internal/core/events"
)

const EventTypeChanged = "store.changed"

// ChangedEvent is published after every state transition with the state it
// produced.
type ChangedEvent struct {
	events.BaseEvent
	Actions []string `json:"actions"`
	State   State    `json:"state"`
}

func newChangedEvent(actions []Action, state State) *ChangedEvent {
	kinds := make([]string, 0, len(actions))
	for _, a := range actions {
		kinds = append(kinds, a.Kind())
	}
	return &ChangedEvent{
		BaseEvent: events.NewBaseEvent(EventTypeChanged, map[string]interface{}{
			"actions":      kinds,
			"transactions": len(state.Transactions),
			"budgets":      len(state.Budgets),
			"loading":      state.Loading,
		}),
		Actions: kinds,
		State:   state,
	}
}

// Listener is notified of every change. It runs on the goroutine that
// performed the mutation.
type Listener func(ctx context.Context, event *ChangedEvent) error

// Subscribe registers l for change notifications.
func (s *Store) Subscribe(l Listener) {
	s.bus.Subscribe(EventTypeChanged, func(ctx context.Context, e events.Event) error {
		changed, ok := e.(*ChangedEvent)
		if !ok {
			return nil
		}
		return l(ctx, changed)
	})
}
