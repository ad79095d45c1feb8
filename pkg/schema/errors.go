package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorSet maps parameter keys to the ordered list of violation messages
// collected for that key. It implements error and is always surfaced in
// full, never truncated to the first problem.
type ErrorSet map[string][]string

// Add appends a violation message for key, preserving insertion order.
func (s ErrorSet) Add(key, message string) {
	s[key] = append(s[key], message)
}

// Keys returns the violated parameter keys in sorted order.
func (s ErrorSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether no violations were collected.
func (s ErrorSet) IsEmpty() bool {
	return len(s) == 0
}

func (s ErrorSet) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d invalid parameter(s):", len(s))
	for _, key := range s.Keys() {
		for _, msg := range s[key] {
			fmt.Fprintf(&sb, "\n  %s: %s", key, msg)
		}
	}
	return sb.String()
}

// AsErrorSet extracts an ErrorSet from err, unwrapping as needed.
// The second result is false when err carries no validation violations.
func AsErrorSet(err error) (ErrorSet, bool) {
	var set ErrorSet
	if errors.As(err, &set) {
		return set, true
	}
	return nil, false
}
