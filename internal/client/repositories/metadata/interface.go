// Package metadata stores small client-held values (the bearer credential,
// the server it was issued for) in the local SQLite database.
package metadata

import "context"

// Repository is a key/value store. Get returns common.ErrorNotFound for an
// unknown key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
