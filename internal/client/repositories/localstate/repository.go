// Package localstate persists small key/value blobs (session token, cached
// profile) in a local database. It is the durable-storage analogue of the
// browser localStorage the backend's web client uses.
package localstate

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all given keys in one atomic step.
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
