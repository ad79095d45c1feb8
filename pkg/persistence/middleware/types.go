// Package middleware provides decorators around ports.TransitionStore so
// hosts can layer cross-cutting behavior (logging, metrics) over any store
// adapter without the engine knowing.
package middleware

import "github.com/grammophone/domos/pkg/ports"

// Middleware allows wrapping a TransitionStore to add behavior.
type Middleware func(ports.TransitionStore) ports.TransitionStore

// Chain applies middlewares right-to-left, so the first listed wraps
// outermost.
func Chain(store ports.TransitionStore, middlewares ...Middleware) ports.TransitionStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
