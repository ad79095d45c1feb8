package domain

import (
	"time"

	"github.com/google/uuid"
)

// StateTransition is the immutable record created exactly once per
// successful execution of a state path against a stateful object. It is
// owned by the object's history and never deleted by this layer.
type StateTransition struct {
	ID        string    `json:"id"`
	GraphName string    `json:"graph"`
	PathName  string    `json:"path"`
	ObjectID  string    `json:"object_id"`
	FromState string    `json:"from_state"`
	ToState   string    `json:"to_state"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name,omitempty"`
	At        time.Time `json:"at"`
}

// NewStateTransition builds the transition record for one execution of path
// against obj, attributed to actor at the current UTC instant.
func NewStateTransition(path StatePath, obj StatefulObject, actor Identity) *StateTransition {
	return &StateTransition{
		ID:        uuid.New().String(),
		GraphName: path.GraphName,
		PathName:  path.Name,
		ObjectID:  obj.ObjectID(),
		FromState: path.From,
		ToState:   path.To,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		At:        time.Now().UTC(),
	}
}
