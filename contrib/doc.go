// Package contrib provides additional functionality and utilities
// for the SEI Go client.
//
// Everything in this package builds on the core client with features that are
// not part of it: command-line tools, agent integrations and other conveniences.
//
// Note that this package is outside of the backward compatibility guarantees
// provided by the core client. Changes to this package may
// introduce breaking changes without following semantic versioning.
//
// [github.com/sei-ia/sei.go/contrib/seictl] runs a single SEI operation and prints the
// decoded result as JSON. [github.com/sei-ia/sei.go/contrib/seitools] exposes read-only
// lookups as JSON-in, JSON-out tools for LLM agents.
package contrib
