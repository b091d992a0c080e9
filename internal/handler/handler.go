package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

// LinkUsecase определяет сценарии, нужные HTTP-слою
type LinkUsecase interface {
	CreateLink(ctx context.Context, rawURL, customAlias string, owner model.Owner) (*model.Link, string, error)
	Resolve(ctx context.Context, code string) (string, error)
	ListLinks(ctx context.Context, ownerID string) ([]model.UserLinkResponse, error)
	PingStore(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase LinkUsecase
	cfg     *config.Config
	logger  *zap.Logger
}

// New создает новый экземпляр Handler
func New(uc LinkUsecase, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: uc,
		cfg:     cfg,
		logger:  logger,
	}
}

// getOwnerFromRequest извлекает владельца из контекста запроса
func (h *Handler) getOwnerFromRequest(r *http.Request) (model.Owner, bool) {
	return middleware.GetOwnerFromContext(r.Context())
}

// handleError переводит ошибки usecase-слоя в HTTP статусы API-эндпоинтов
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL),
		errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrInvalidAlias):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAliasTaken):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, usecase.ErrLinkNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		h.logger.Error("internal error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
