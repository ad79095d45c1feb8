package domain

// StatefulObject is any entity whose lifecycle is governed by a workflow
// graph. The engine requires only the minimal capability set: an identifier,
// the current state, and the ability to accept a new transition record.
// Entity lifecycle and storage remain the host's concern.
type StatefulObject interface {
	// ObjectID returns a stable identifier for the entity.
	ObjectID() string

	// CurrentState returns the code name of the entity's current state.
	CurrentState() string

	// ApplyTransition appends tr to the entity's history and moves it to
	// tr.ToState. Called exactly once per successful path execution.
	ApplyTransition(tr *StateTransition)
}
