// Package store owns the canonical in-memory state: one ordered
// collection per entity kind, mirrored to the persistence channel as a
// whole-collection JSON document after every successful mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"

	"go-erp/internal/events"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// Persisted documents carry plain JSON numbers, the same shape the
	// frontend writes and exports.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrRecordNotFound is returned by Replace when no record carries the
// given identifier. Callers map it to their slice's NOT_FOUND error.
var ErrRecordNotFound = errors.New("store: record not found")

// Record is any entity that knows its own identifier.
type Record interface {
	RecordID() string
}

// Collection binds one entity kind to its channel key and seed
// generator. All mutations are write-through: the full collection is
// reserialized and persisted before the in-memory state is committed,
// so the shadow copy never diverges.
type Collection[T Record] struct {
	mu      sync.RWMutex
	key     string
	topic   string
	channel storage.Channel
	bus     *events.Bus
	seed    func() []T
	logger  *zap.Logger

	items  []T
	loaded bool
}

func NewCollection[T Record](
	key, topic string,
	channel storage.Channel,
	bus *events.Bus,
	seed func() []T,
	logger *zap.Logger,
) *Collection[T] {
	if logger == nil {
		logger = zap.L()
	}
	return &Collection[T]{
		key:     key,
		topic:   topic,
		channel: channel,
		bus:     bus,
		seed:    seed,
		logger:  logger.Named("store").With(zap.String("key", key)),
	}
}

// Load restores the collection from the channel, seeding the demo
// dataset on first run. A value that fails to parse is replaced by the
// seed dataset; recovered reports that fallback so callers can surface
// a warning.
func (c *Collection[T]) Load(ctx context.Context) (recovered bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.channel.Get(ctx, c.key)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		c.items = c.seed()
		if err := c.persistLocked(ctx); err != nil {
			return false, err
		}
		c.loaded = true
		c.logger.Info("collection seeded", zap.Int("records", len(c.items)))
		return false, nil
	case err != nil:
		return false, apperror.Wrap(err, apperror.CodeStorageError, "Failed to read persisted collection", apperror.ErrStorage.HTTPStatus)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("persisted collection is corrupt, falling back to seed data", zap.Error(err))
		c.items = c.seed()
		if perr := c.persistLocked(ctx); perr != nil {
			return false, perr
		}
		c.loaded = true
		return true, nil
	}

	c.items = items
	c.loaded = true
	return false, nil
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := c.Load(ctx)
	return err
}

// Snapshot returns a copy of the collection in insertion order.
func (c *Collection[T]) Snapshot(ctx context.Context) ([]T, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Find returns the record with the given identifier, if any.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Append adds a new record to the end of the collection.
func (c *Collection[T]) Append(ctx context.Context, rec T) error {
	if err := c.ensureLoaded(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	prev := c.items
	c.items = append(append([]T{}, c.items...), rec)
	if err := c.persistLocked(ctx); err != nil {
		c.items = prev
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	c.publish("created", rec.RecordID())
	return nil
}

// Replace swaps the record with the same identifier in place. Position
// and every other record are untouched.
func (c *Collection[T]) Replace(ctx context.Context, rec T) error {
	if err := c.ensureLoaded(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	idx := -1
	for i, it := range c.items {
		if it.RecordID() == rec.RecordID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return ErrRecordNotFound
	}
	prev := c.items
	next := append([]T{}, c.items...)
	next[idx] = rec
	c.items = next
	if err := c.persistLocked(ctx); err != nil {
		c.items = prev
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	c.publish("updated", rec.RecordID())
	return nil
}

// ReplaceAll overwrites the whole collection, e.g. on import.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	prev := c.items
	if items == nil {
		items = []T{}
	}
	c.items = append([]T{}, items...)
	c.loaded = true
	if err := c.persistLocked(ctx); err != nil {
		c.items = prev
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	c.publish("replaced", "")
	return nil
}

// Reseed drops the current contents and restores the demo dataset.
func (c *Collection[T]) Reseed(ctx context.Context) error {
	c.mu.Lock()
	prev := c.items
	c.items = c.seed()
	c.loaded = true
	if err := c.persistLocked(ctx); err != nil {
		c.items = prev
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	c.publish("reseeded", "")
	return nil
}

// Len reports the number of records.
func (c *Collection[T]) Len(ctx context.Context) (int, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}

// MaxSequence scans identifiers of the form <prefix><digits> and
// returns the highest numeric suffix. Used to seed the id counter so
// generated identifiers never collide with existing records.
func (c *Collection[T]) MaxSequence(ctx context.Context, prefix string) (int64, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var max int64
	for _, it := range c.items {
		id := it.RecordID()
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.ParseInt(id[len(prefix):], 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (c *Collection[T]) persistLocked(ctx context.Context) error {
	if c.items == nil {
		c.items = []T{}
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to serialize collection", apperror.ErrInternal.HTTPStatus)
	}
	if err := c.channel.Set(ctx, c.key, string(raw)); err != nil {
		c.logger.Error("persist failed", zap.Error(err))
		return apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}
	return nil
}

func (c *Collection[T]) publish(action, recordID string) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(c.topic, events.Change{
		Collection: c.key,
		Action:     action,
		RecordID:   recordID,
	})
}
