// Package kv is the storage substrate: a persistent string-keyed store of
// UTF-8 text blobs. Every collection the record stores manage lives under
// one key as one whole document.
package kv

import "context"

type Store interface {
	// Get returns the blob under key. The second return is false when the
	// key has never been written (not an error).
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
