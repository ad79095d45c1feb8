// Package workflow defines the configuration-time model of the process
// execution layer: the Action contract, the binding of ordered pre-
// and post-actions to a state path, and the graph aggregate the engine
// resolves paths from.
//
// Everything here is built at bootstrap and read-only during execution.
package workflow
