// Package flow provides a minimal fluent Chain[T] for synchronous
// composition of duo.Result[T] values with a context attached.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Or/And, While/RepeatUntil: combine and repeat steps
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
// - Switch/Try/MapTo: package-level hops to a new payload type
//
// Every operation short-circuits on a failed result and produces a fresh
// chain; nothing is mutated in place.
package flow
