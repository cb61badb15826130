// Package credentials stores the two persisted session values (token and
// identity) as key/value rows in the local SQLite database.
package credentials

import "context"

// Well-known keys for the persisted session values.
const (
	KeyToken    = "token"
	KeyIdentity = "identity"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
