// Package client contains the remote side of the post list client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for listing
//     the caller's posts page by page, searching posts, deleting a post and
//     updating the profile.
//  2. An HTTP implementation (see HTTPClient) that injects the bearer
//     credential from a TokenSource, tags every request with an
//     X-Request-ID, and maps HTTP status codes to sentinel errors.
//  3. A prometheus decorator (see Instrument) counting calls and observing
//     their latency per operation.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable for transport failures, timeouts and unexpected statuses,
// ErrUnauthorized for 401/403 and for a missing or expired credential.
// A *StatusError carries the server message and still matches
// ErrUnavailable.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation and deadlines.
package client
