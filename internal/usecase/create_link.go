package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// CreateLink создает короткую ссылку из строки оригинального URL.
// Выполняет валидацию URL до любого обращения к хранилищу,
// затем делегирует создание сервису и собирает полный короткий URL.
func (u *LinkUsecase) CreateLink(ctx context.Context, rawURL, customAlias string, owner model.Owner) (*model.Link, string, error) {
	rawURL = strings.TrimSpace(rawURL)
	rawURL = strings.Trim(rawURL, `"'`)

	if rawURL == "" {
		return nil, "", ErrEmptyURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	link, err := u.service.CreateLink(ctx, model.URL(rawURL), owner, customAlias)
	if err != nil {
		return nil, "", u.mapCreateError(err, rawURL, customAlias)
	}

	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(link.ShortCode))
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", string(link.ShortCode)),
			zap.Error(err),
		)
		return nil, "", fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return link, shortURL, nil
}

// mapCreateError переводит ошибки сервиса в таксономию usecase-слоя
func (u *LinkUsecase) mapCreateError(err error, rawURL, customAlias string) error {
	switch {
	case errors.Is(err, service.ErrInvalidAlias):
		return fmt.Errorf("%w: %s", ErrInvalidAlias, customAlias)
	case errors.Is(err, service.ErrAliasTaken):
		return fmt.Errorf("%w: %s", ErrAliasTaken, customAlias)
	case errors.Is(err, service.ErrMaxRetriesExceeded):
		u.logger.Error("code space exhausted", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrCodeSpaceExhausted, err)
	default:
		u.logger.Error("failed to create link",
			zap.String("original_url", rawURL),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
}
