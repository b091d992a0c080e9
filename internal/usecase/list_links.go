package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// ListLinks возвращает все ссылки владельца, новые первыми.
// Отсутствие ссылок - пустой список, не ошибка.
func (u *LinkUsecase) ListLinks(ctx context.Context, ownerID string) ([]model.UserLinkResponse, error) {
	links, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		u.logger.Error("failed to list links by owner",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	responses := make([]model.UserLinkResponse, 0, len(links))
	for _, link := range links {
		shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), string(link.ShortCode))
		if err != nil {
			u.logger.Error("failed to build short URL",
				zap.String("code", string(link.ShortCode)),
				zap.Error(err),
			)
			continue
		}

		responses = append(responses, model.UserLinkResponse{
			ShortURL:    shortURL,
			OriginalURL: string(link.OriginalURL),
			ShortCode:   string(link.ShortCode),
			CustomAlias: string(link.CustomAlias),
			ClickCount:  link.ClickCount,
			CreatedAt:   link.CreatedAt,
		})
	}

	return responses, nil
}
