// Package storage implements the persistence channel: a synchronous
// string-keyed, string-valued store holding the serialized shadow copy
// of every collection. Backends are interchangeable; the in-memory one
// is the default for tests and local runs.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Channel is the persistence channel contract. Values are opaque to
// the channel; callers serialize whole collections into them.
type Channel interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
