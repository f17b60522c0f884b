package employee

import (
	"context"

	"go-erp/internal/events"
	"go-erp/internal/storage"
	"go-erp/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context) (recovered bool, err error)
	All(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (Employee, bool, error)
	Append(ctx context.Context, e Employee) error
	Replace(ctx context.Context, e Employee) error
	ReplaceAll(ctx context.Context, items []Employee) error
	MaxSequence(ctx context.Context) (int64, error)
	Reseed(ctx context.Context) error
}

type repository struct {
	coll *store.Collection[Employee]
}

func NewRepository(channel storage.Channel, bus *events.Bus, seed func() []Employee, logger *zap.Logger) Repository {
	return &repository{
		coll: store.NewCollection(CollectionKey, events.TopicEmployeesChanged, channel, bus, seed, logger),
	}
}

func (r *repository) Load(ctx context.Context) (bool, error) {
	return r.coll.Load(ctx)
}

func (r *repository) All(ctx context.Context) ([]Employee, error) {
	return r.coll.Snapshot(ctx)
}

func (r *repository) FindByID(ctx context.Context, id string) (Employee, bool, error) {
	return r.coll.Find(ctx, id)
}

func (r *repository) Append(ctx context.Context, e Employee) error {
	return r.coll.Append(ctx, e)
}

func (r *repository) Replace(ctx context.Context, e Employee) error {
	return r.coll.Replace(ctx, e)
}

func (r *repository) ReplaceAll(ctx context.Context, items []Employee) error {
	return r.coll.ReplaceAll(ctx, items)
}

func (r *repository) MaxSequence(ctx context.Context) (int64, error) {
	return r.coll.MaxSequence(ctx, IDPrefix)
}

func (r *repository) Reseed(ctx context.Context) error {
	return r.coll.Reseed(ctx)
}
