package storage

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Open selects a channel backend from STORAGE_BACKEND:
// memory (default), sqlite, redis, or dynamodb.
func Open(ctx context.Context, logger *zap.Logger) (Channel, error) {
	backend := getenvDefault("STORAGE_BACKEND", "memory")

	switch backend {
	case "memory":
		logger.Warn("using in-memory storage backend; data is lost on restart")
		return NewMemoryChannel(), nil
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		ch, err := NewSQLiteChannel(path)
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite storage backend ready", zap.String("path", ch.path))
		return ch, nil
	case "redis":
		addr := getenvDefault("REDIS_ADDR", "localhost:6379")
		ch, err := ConnectRedisChannel(addr, 5)
		if err != nil {
			return nil, err
		}
		logger.Info("redis storage backend ready", zap.String("addr", addr))
		return ch, nil
	case "dynamodb":
		ch, err := ConnectDynamoChannel(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("dynamodb storage backend ready", zap.String("table", ch.tableName))
		return ch, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
