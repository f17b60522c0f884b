package auth

import (
	"context"
	"encoding/json"
	"errors"

	"go-erp/internal/events"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/storage"
	"go-erp/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Load(ctx context.Context) (recovered bool, err error)
	All(ctx context.Context) ([]User, error)
	FindByUsername(ctx context.Context, username string) (User, bool, error)
	Append(ctx context.Context, u User) error
	Replace(ctx context.Context, u User) error

	SetSession(ctx context.Context, s Session) error
	ClearSession(ctx context.Context) error
	Session(ctx context.Context) (Session, bool, error)
}

type repository struct {
	coll    *store.Collection[User]
	channel storage.Channel
}

func NewRepository(channel storage.Channel, bus *events.Bus, seed func() []User, logger *zap.Logger) Repository {
	return &repository{
		coll:    store.NewCollection(UsersKey, events.TopicUsersChanged, channel, bus, seed, logger),
		channel: channel,
	}
}

func (r *repository) Load(ctx context.Context) (bool, error) {
	return r.coll.Load(ctx)
}

func (r *repository) All(ctx context.Context) ([]User, error) {
	return r.coll.Snapshot(ctx)
}

func (r *repository) FindByUsername(ctx context.Context, username string) (User, bool, error) {
	return r.coll.Find(ctx, username)
}

func (r *repository) Append(ctx context.Context, u User) error {
	return r.coll.Append(ctx, u)
}

func (r *repository) Replace(ctx context.Context, u User) error {
	return r.coll.Replace(ctx, u)
}

func (r *repository) SetSession(ctx context.Context, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Failed to serialize session", apperror.ErrInternal.HTTPStatus)
	}
	if err := r.channel.Set(ctx, SessionKey, string(raw)); err != nil {
		return apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}
	return nil
}

func (r *repository) ClearSession(ctx context.Context) error {
	err := r.channel.Delete(ctx, SessionKey)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}
	return nil
}

func (r *repository) Session(ctx context.Context) (Session, bool, error) {
	raw, err := r.channel.Get(ctx, SessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, apperror.Wrap(err, apperror.CodeStorageError, apperror.ErrStorage.Message, apperror.ErrStorage.HTTPStatus)
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// A corrupt marker just means no usable session.
		return Session{}, false, nil
	}
	return s, true, nil
}
