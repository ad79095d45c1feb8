// Package schema defines parameter specifications: the named, typed,
// optionally-required arguments a workflow action declares, together with
// the validation rules applied to supplied argument bags.
//
// Validation never stops at the first problem; every violation is collected
// into an ErrorSet keyed by parameter so callers can render all problems at
// once.
package schema
