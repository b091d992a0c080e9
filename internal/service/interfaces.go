package service

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

// LinkRepository определяет методы хранилища, нужные для создания ссылок
type LinkRepository interface {
	// CreateLink записывает Resolution и Link одной логической операцией.
	// Возвращает ошибку store.ErrAlreadyExists если код уже занят.
	CreateLink(ctx context.Context, code model.Code, res model.Resolution, link model.Link) error
}

// ClickRepository определяет методы хранилища, нужные для учёта кликов
type ClickRepository interface {
	// IncrementClick атомарно увеличивает счётчик кликов ссылки на единицу
	IncrementClick(ctx context.Context, ownerID string, code model.Code) error
}

// Generator определяет генератор коротких кодов
type Generator interface {
	GenerateCode() (model.Code, error)
}
