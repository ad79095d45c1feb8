// Package domain contains the core value objects of the process execution
// layer: state paths, state transitions, stateful objects, acting identities,
// lifecycle events, and the typed error taxonomy surfaced by the engine.
//
// The package has no dependencies on the rest of the module so that adapters
// and host applications can consume it freely.
package domain
