package domain

import (
	"context"
	"time"
)

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventPathStart      EventType = "path_start"
	EventActionExecuted EventType = "action_executed"
	EventTransition     EventType = "transition"
	EventPathEnd        EventType = "path_end"
)

// EventBase contains common fields for all lifecycle events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	GraphName string    `json:"graph"`
	PathName  string    `json:"path"`
	ObjectID  string    `json:"object_id"`
}

// PathEvent marks the start or end of one ExecutePath call.
type PathEvent struct {
	EventBase
	Actor string `json:"actor"`

	// Duration and Err are only set on EventPathEnd: total execution time
	// and the failure that ended the execution (nil on success).
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// ActionEvent marks the completion of one pre- or post-action.
type ActionEvent struct {
	EventBase
	ActionKey string `json:"action"`
	Phase     Phase  `json:"phase"`
	IsError   bool   `json:"is_error,omitempty"`
}

// TransitionEvent marks the persistence of a new StateTransition.
type TransitionEvent struct {
	EventBase
	TransitionID string `json:"transition_id"`
	FromState    string `json:"from_state"`
	ToState      string `json:"to_state"`
	Actor        string `json:"actor"`
}

// LifecycleHooks defines optional callbacks for engine observability.
// Nil callbacks are skipped. Hooks run synchronously on the execution path
// and must not block.
type LifecycleHooks struct {
	OnPathStart      func(context.Context, *PathEvent)
	OnActionExecuted func(context.Context, *ActionEvent)
	OnTransition     func(context.Context, *TransitionEvent)
	OnPathEnd        func(context.Context, *PathEvent)
}
