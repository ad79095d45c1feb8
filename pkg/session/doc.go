// Package session holds the acting-identity register and the two privilege
// scoping primitives gating access checks during a transition: the nesting
// elevated-access scope, which suspends security enforcement while at least
// one scope is open, and the impersonation scope, which substitutes the
// acting identity and restores the previous one on close.
//
// A Session models one logical call chain and is not safe for concurrent
// use. Scopes follow the acquire-and-defer-Close discipline so release
// always runs, including on error paths.
package session
