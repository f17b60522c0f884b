// Package counter issues monotonically increasing sequence numbers per
// identifier prefix, persisted in the channel under their own key.
// Sequences only move forward, so identifiers are never reassigned even
// after an import or a data reset.
package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go-erp/internal/shared/apperror"
	"go-erp/internal/storage"
)

const CountersKey = "erpCounters"

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	// Next returns the next sequence for the prefix. floor is the
	// highest sequence visible in the collection; the returned value is
	// always greater than both floor and every previously issued value.
	Next(ctx context.Context, prefix string, floor int64) (int64, error)
}

type repository struct {
	mu      sync.Mutex
	channel storage.Channel
}

func NewRepository(channel storage.Channel) Repository {
	return &repository{channel: channel}
}

func (r *repository) Next(ctx context.Context, prefix string, floor int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counters, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	last := counters[prefix]
	if floor > last {
		last = floor
	}
	next := last + 1
	counters[prefix] = next

	raw, err := json.Marshal(counters)
	if err != nil {
		return 0, fmt.Errorf("marshal counters: %w", err)
	}
	if err := r.channel.Set(ctx, CountersKey, string(raw)); err != nil {
		return 0, apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}
	return next, nil
}

func (r *repository) load(ctx context.Context) (map[string]int64, error) {
	raw, err := r.channel.Get(ctx, CountersKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return map[string]int64{}, nil
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}

	counters := map[string]int64{}
	if err := json.Unmarshal([]byte(raw), &counters); err != nil {
		// A corrupt counter document is recoverable: floors passed by
		// callers keep sequences ahead of every visible identifier.
		return map[string]int64{}, nil
	}
	return counters, nil
}
