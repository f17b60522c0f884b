package equipment

import (
	"context"

	"go-erp/internal/events"
	"go-erp/internal/storage"
	"go-erp/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=equipment_repo.go -destination=mock/equipment_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context) (recovered bool, err error)
	All(ctx context.Context) ([]Equipment, error)
	FindByID(ctx context.Context, id string) (Equipment, bool, error)
	Append(ctx context.Context, e Equipment) error
	Replace(ctx context.Context, e Equipment) error
	ReplaceAll(ctx context.Context, items []Equipment) error
	MaxSequence(ctx context.Context) (int64, error)
	Reseed(ctx context.Context) error
}

type repository struct {
	coll *store.Collection[Equipment]
}

func NewRepository(channel storage.Channel, bus *events.Bus, seed func() []Equipment, logger *zap.Logger) Repository {
	return &repository{
		coll: store.NewCollection(CollectionKey, events.TopicEquipmentChanged, channel, bus, seed, logger),
	}
}

func (r *repository) Load(ctx context.Context) (bool, error) {
	return r.coll.Load(ctx)
}

func (r *repository) All(ctx context.Context) ([]Equipment, error) {
	return r.coll.Snapshot(ctx)
}

func (r *repository) FindByID(ctx context.Context, id string) (Equipment, bool, error) {
	return r.coll.Find(ctx, id)
}

func (r *repository) Append(ctx context.Context, e Equipment) error {
	return r.coll.Append(ctx, e)
}

func (r *repository) Replace(ctx context.Context, e Equipment) error {
	return r.coll.Replace(ctx, e)
}

func (r *repository) ReplaceAll(ctx context.Context, items []Equipment) error {
	return r.coll.ReplaceAll(ctx, items)
}

func (r *repository) MaxSequence(ctx context.Context) (int64, error) {
	return r.coll.MaxSequence(ctx, IDPrefix)
}

func (r *repository) Reseed(ctx context.Context) error {
	return r.coll.Reseed(ctx)
}
