package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-erp/internal/events"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/storage"
	"go-erp/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (w widget) RecordID() string { return w.ID }

func seedWidgets() []widget {
	return []widget{
		{ID: "W0001", Name: "first"},
		{ID: "W0002", Name: "second"},
	}
}

func newTestCollection(channel storage.Channel, bus *events.Bus) *store.Collection[widget] {
	return store.NewCollection("testWidgets", "widgets.changed", channel, bus, seedWidgets, nil)
}

func TestCollection_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("empty channel seeds and persists", func(t *testing.T) {
		channel := storage.NewMemoryChannel()
		coll := newTestCollection(channel, nil)

		recovered, err := coll.Load(ctx)
		require.NoError(t, err)
		assert.False(t, recovered)

		items, err := coll.Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)

		raw, err := channel.Get(ctx, "testWidgets")
		require.NoError(t, err)
		var persisted []widget
		require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
		assert.Equal(t, items, persisted)
	})

	t.Run("existing value wins over seed", func(t *testing.T) {
		channel := storage.NewMemoryChannel()
		require.NoError(t, channel.Set(ctx, "testWidgets", `[{"id":"W0009","name":"kept"}]`))
		coll := newTestCollection(channel, nil)

		recovered, err := coll.Load(ctx)
		require.NoError(t, err)
		assert.False(t, recovered)

		items, _ := coll.Snapshot(ctx)
		require.Len(t, items, 1)
		assert.Equal(t, "W0009", items[0].ID)
	})

	t.Run("corrupt value falls back to seed", func(t *testing.T) {
		channel := storage.NewMemoryChannel()
		require.NoError(t, channel.Set(ctx, "testWidgets", `{not json`))
		coll := newTestCollection(channel, nil)

		recovered, err := coll.Load(ctx)
		require.NoError(t, err)
		assert.True(t, recovered)

		items, _ := coll.Snapshot(ctx)
		assert.Len(t, items, 2)

		// The seed replaces the corrupt value in the channel too.
		raw, err := channel.Get(ctx, "testWidgets")
		require.NoError(t, err)
		var persisted []widget
		assert.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	})
}

func TestCollection_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("append keeps order and persists", func(t *testing.T) {
		channel := storage.NewMemoryChannel()
		coll := newTestCollection(channel, nil)

		require.NoError(t, coll.Append(ctx, widget{ID: "W0003", Name: "third"}))

		items, _ := coll.Snapshot(ctx)
		require.Len(t, items, 3)
		assert.Equal(t, "W0003", items[2].ID)
	})

	t.Run("replace swaps in place", func(t *testing.T) {
		channel := storage.NewMemoryChannel()
		coll := newTestCollection(channel, nil)

		require.NoError(t, coll.Replace(ctx, widget{ID: "W0001", Name: "renamed"}))

		items, _ := coll.Snapshot(ctx)
		require.Len(t, items, 2)
		assert.Equal(t, "renamed", items[0].Name)
		assert.Equal(t, "second", items[1].Name)
	})

	t.Run("replace unknown id", func(t *testing.T) {
		coll := newTestCollection(storage.NewMemoryChannel(), nil)

		err := coll.Replace(ctx, widget{ID: "W9999"})
		assert.ErrorIs(t, err, store.ErrRecordNotFound)
	})

	t.Run("reseed restores demo data", func(t *testing.T) {
		coll := newTestCollection(storage.NewMemoryChannel(), nil)
		require.NoError(t, coll.ReplaceAll(ctx, []widget{{ID: "W0100"}}))

		require.NoError(t, coll.Reseed(ctx))
		items, _ := coll.Snapshot(ctx)
		assert.Len(t, items, 2)
	})
}

func TestCollection_MaxSequence(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(storage.NewMemoryChannel(), nil)
	require.NoError(t, coll.ReplaceAll(ctx, []widget{
		{ID: "W0002"},
		{ID: "W0042"},
		{ID: "other"},
		{ID: "W12x4"},
	}))

	max, err := coll.MaxSequence(ctx, "W")
	require.NoError(t, err)
	assert.Equal(t, int64(42), max)
}

type failingChannel struct {
	*storage.MemoryChannel
	failSet bool
}

func (f *failingChannel) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.MemoryChannel.Set(ctx, key, value)
}

func TestCollection_PersistFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	channel := &failingChannel{MemoryChannel: storage.NewMemoryChannel()}
	coll := newTestCollection(channel, nil)

	_, err := coll.Load(ctx)
	require.NoError(t, err)

	channel.failSet = true
	err = coll.Append(ctx, widget{ID: "W0003"})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeStorageError, appErr.Code)

	// Memory state is unchanged, so a retry can succeed.
	channel.failSet = false
	items, _ := coll.Snapshot(ctx)
	assert.Len(t, items, 2)
	require.NoError(t, coll.Append(ctx, widget{ID: "W0003"}))
}

func TestCollection_PublishesChanges(t *testing.T) {
	ctx := context.Background()
	bus := events.NewBus()

	var actions []string
	bus.Subscribe("widgets.changed", func(ch events.Change) {
		actions = append(actions, ch.Action)
	})
	var statsHits int
	bus.Subscribe(events.TopicStatsChanged, func(events.Change) { statsHits++ })

	coll := newTestCollection(storage.NewMemoryChannel(), bus)
	require.NoError(t, coll.Append(ctx, widget{ID: "W0003"}))
	require.NoError(t, coll.Replace(ctx, widget{ID: "W0003", Name: "x"}))
	require.NoError(t, coll.Reseed(ctx))

	assert.Equal(t, []string{"created", "updated", "reseeded"}, actions)
	assert.Equal(t, 3, statsHits)
}
