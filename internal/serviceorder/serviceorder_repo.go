package serviceorder

import (
	"context"

	"go-erp/internal/events"
	"go-erp/internal/storage"
	"go-erp/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=serviceorder_repo.go -destination=mock/serviceorder_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context) (recovered bool, err error)
	All(ctx context.Context) ([]ServiceOrder, error)
	FindByID(ctx context.Context, id string) (ServiceOrder, bool, error)
	Append(ctx context.Context, o ServiceOrder) error
	Replace(ctx context.Context, o ServiceOrder) error
	ReplaceAll(ctx context.Context, items []ServiceOrder) error
	MaxSequence(ctx context.Context) (int64, error)
	Reseed(ctx context.Context) error
}

type repository struct {
	coll *store.Collection[ServiceOrder]
}

func NewRepository(channel storage.Channel, bus *events.Bus, seed func() []ServiceOrder, logger *zap.Logger) Repository {
	return &repository{
		coll: store.NewCollection(CollectionKey, events.TopicServiceOrdersChanged, channel, bus, seed, logger),
	}
}

func (r *repository) Load(ctx context.Context) (bool, error) {
	return r.coll.Load(ctx)
}

func (r *repository) All(ctx context.Context) ([]ServiceOrder, error) {
	return r.coll.Snapshot(ctx)
}

func (r *repository) FindByID(ctx context.Context, id string) (ServiceOrder, bool, error) {
	return r.coll.Find(ctx, id)
}

func (r *repository) Append(ctx context.Context, o ServiceOrder) error {
	return r.coll.Append(ctx, o)
}

func (r *repository) Replace(ctx context.Context, o ServiceOrder) error {
	return r.coll.Replace(ctx, o)
}

func (r *repository) ReplaceAll(ctx context.Context, items []ServiceOrder) error {
	return r.coll.ReplaceAll(ctx, items)
}

func (r *repository) MaxSequence(ctx context.Context) (int64, error) {
	return r.coll.MaxSequence(ctx, IDPrefix)
}

func (r *repository) Reseed(ctx context.Context) error {
	return r.coll.Reseed(ctx)
}
