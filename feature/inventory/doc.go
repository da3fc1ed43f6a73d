// Package inventory implements the line-oriented inventory commands:
// ADD PRODUCT, ADD WAREHOUSE, STOCK, UNSTOCK and the LIST family.
//
// The Dispatcher tokenizes a raw input line, validates argument types and
// routes to the Service, which runs each command's read-then-write sequence
// against the store and the reconcile logic. Recoverable problems surface as
// *Failure values with fixed user-facing messages; anything else is a fatal
// storage fault and propagates to the caller, which is expected to stop the
// command loop.
//
// Rendering is injected through the Display interface so the command loop,
// one-shot execution and tests can all share the same dispatch path.
package inventory
