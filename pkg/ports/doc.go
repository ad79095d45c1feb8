// Package ports declares the narrow interfaces through which the engine
// consumes its external collaborators: transition persistence and access
// checking. The engine stays agnostic to the implementations behind them;
// reference adapters live under pkg/adapters.
package ports
