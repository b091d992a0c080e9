package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// Store определяет контракт хранилища ссылок.
// Все операции атомарны относительно одного кода: условное создание
// выполняется по принципу check-then-act внутри хранилища, инкремент
// счётчика - атомарным примитивом хранилища, не read-modify-write.
type Store interface {
	CreateLink(ctx context.Context, code model.Code, res model.Resolution, link model.Link) error
	GetResolution(ctx context.Context, code model.Code) (model.Resolution, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	IncrementClick(ctx context.Context, ownerID string, code model.Code) error
	Ping(ctx context.Context) error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) CreateLink(ctx context.Context, code model.Code, res model.Resolution, link model.Link) error {
	err := r.underlying.CreateLink(ctx, code, res, link)
	if err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

func (r *Repository) GetResolution(ctx context.Context, code model.Code) (model.Resolution, error) {
	res, err := r.underlying.GetResolution(ctx, code)
	if err != nil {
		return model.Resolution{}, fmt.Errorf("failed to get resolution: %w", err)
	}
	return res, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	links, err := r.underlying.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links by owner: %w", err)
	}
	return links, nil
}

func (r *Repository) IncrementClick(ctx context.Context, ownerID string, code model.Code) error {
	err := r.underlying.IncrementClick(ctx, ownerID, code)
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.underlying.Ping(ctx)
}
