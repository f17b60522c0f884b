package storage_test

import (
	"context"
	"errors"
	"testing"

	"go-erp/internal/storage"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisChannel_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		ch := storage.NewRedisChannel(db)

		mock.ExpectGet("erpEmployees").SetVal(`[]`)

		v, err := ch.Get(ctx, "erpEmployees")
		require.NoError(t, err)
		assert.Equal(t, `[]`, v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key maps to the channel sentinel", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		ch := storage.NewRedisChannel(db)

		mock.ExpectGet("erpEmployees").RedisNil()

		_, err := ch.Get(ctx, "erpEmployees")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("transport errors are wrapped", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		ch := storage.NewRedisChannel(db)

		mock.ExpectGet("erpEmployees").SetErr(errors.New("connection reset"))

		_, err := ch.Get(ctx, "erpEmployees")
		require.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrKeyNotFound)
	})
}

func TestRedisChannel_SetAndDelete(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	ch := storage.NewRedisChannel(db)

	mock.ExpectSet("erpCounters", `{"EMP":16}`, 0).SetVal("OK")
	mock.ExpectDel("erpUser").SetVal(1)

	require.NoError(t, ch.Set(ctx, "erpCounters", `{"EMP":16}`))
	require.NoError(t, ch.Delete(ctx, "erpUser"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
