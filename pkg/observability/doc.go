// Package observability turns engine lifecycle events into Prometheus
// metrics and provides composition helpers for lifecycle hooks.
package observability
