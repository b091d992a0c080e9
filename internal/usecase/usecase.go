package usecase

import (
	"context"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// LinkRepository определяет интерфейс для чтения из хранилища ссылок
type LinkRepository interface {
	GetResolution(ctx context.Context, code model.Code) (model.Resolution, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error)
	Ping(ctx context.Context) error
}

// LinkService определяет интерфейс сервиса создания коротких ссылок
type LinkService interface {
	CreateLink(ctx context.Context, originalURL model.URL, owner model.Owner, customAlias string) (*model.Link, error)
}

// ClickSink принимает события кликов для фонового учёта
type ClickSink interface {
	Record(ownerID string, code model.Code)
}

// LinkUsecase содержит сценарии работы с короткими ссылками
type LinkUsecase struct {
	repo    LinkRepository
	service LinkService
	clicks  ClickSink
	cfg     *config.Config
	logger  *zap.Logger
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, service LinkService, clicks ClickSink, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:    repo,
		service: service,
		clicks:  clicks,
		cfg:     cfg,
		logger:  logger,
	}
}

// PingStore проверяет доступность хранилища
func (u *LinkUsecase) PingStore(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
