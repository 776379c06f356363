package ports

import "context"

// KeyValueStore is the persistence layer behind the account store. Get
// returns domain.ErrKeyNotFound when the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
