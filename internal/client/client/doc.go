// Package client contains the client-side building blocks that talk to the
// outside world: the storefront HTTP API and the local state file.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with one
//     method per server operation: signup/login/logout, items, cart, orders.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     bearer token from a TokenSource, tags each call with an X-Request-ID,
//     throttles outbound traffic and bounds every call with a timeout.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite file and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are returned as *APIError values that wrap one of the sentinel
// errors from package common (ErrUnauthorized, ErrNotFound, ErrConflict,
// ErrEmptyCart, ErrValidation, ErrUnavailable, ErrUnexpected), so callers
// match them with errors.Is. ServerMessage extracts the human-readable
// message the server put in its {"error": "..."} body.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
