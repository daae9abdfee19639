// Package kv is the persistence boundary for the stores: a handful of
// opaque JSON blobs addressed by string keys, the way the original site
// used browser local storage.
package kv

import "context"

// Store loads and saves whole values. Load returns ok=false when the key
// has never been written; errors are reserved for backend failures.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
