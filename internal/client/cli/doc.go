// Package cli provides the interactive postkeeper command-line client.
//
// It wires configuration, local credential storage, the HTTP post client and
// the list controller, then runs a REPL on top of them.
//
// Key features:
//   - Browse your posts page by page (list, more)
//   - Incremental search over posts (search, clear)
//   - Delete a post (delete)
//   - Update profile settings (profile)
//   - Store or drop the bearer token (login, logout)
//   - Per-operation request statistics (stats), optionally exported on
//     /metrics for prometheus
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
