package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/google/uuid"
)

// LinkService содержит бизнес-логику создания коротких ссылок
type LinkService struct {
	repo          LinkRepository
	codeGenerator Generator
	cfg           *config.Config
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo LinkRepository, cfg *config.Config) *LinkService {
	return &LinkService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(cfg.CodeLength),
		cfg:           cfg,
	}
}

// CreateLink создает короткую ссылку для владельца.
// С пользовательским алиасом выполняется ровно одна условная запись:
// занятый алиас - ErrAliasTaken. Без алиаса код генерируется случайно,
// коллизия (статистически почти невозможная) приводит к повторной генерации
// в пределах cfg.Retry.MaxAttempts попыток.
func (s *LinkService) CreateLink(ctx context.Context, originalURL model.URL, owner model.Owner, customAlias string) (*model.Link, error) {
	if customAlias != "" {
		if err := ValidateAlias(customAlias); err != nil {
			return nil, err
		}

		link := s.buildLink(originalURL, owner, model.Code(customAlias), true)
		if err := s.createOnce(ctx, link); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return nil, fmt.Errorf("alias %s: %w", customAlias, ErrAliasTaken)
			}
			return nil, fmt.Errorf("failed to create link: %w", err)
		}

		return link, nil
	}

	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code, err := s.codeGenerator.GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		link := s.buildLink(originalURL, owner, code, false)

		err = s.createOnce(ctx, link)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Коллизия случайного кода - пробуем другой
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}

		return link, nil
	}

	return nil, fmt.Errorf("failed to create link after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

// buildLink собирает новую запись ссылки с нулевым счётчиком кликов
func (s *LinkService) buildLink(originalURL model.URL, owner model.Owner, code model.Code, isAlias bool) *model.Link {
	link := &model.Link{
		ID:          uuid.New().String(),
		OriginalURL: originalURL,
		ShortCode:   code,
		ClickCount:  0,
		CreatedAt:   time.Now(),
		OwnerID:     owner.ID,
		OwnerEmail:  owner.Email,
	}

	if isAlias {
		link.CustomAlias = code
	}

	return link
}

// createOnce записывает Resolution и Link одной логической операцией.
// Оба документа собираются из одних и тех же значений, поэтому
// код, URL и владелец между ними не расходятся.
func (s *LinkService) createOnce(ctx context.Context, link *model.Link) error {
	res := model.Resolution{
		OriginalURL: link.OriginalURL,
		OwnerID:     link.OwnerID,
		CreatedAt:   link.CreatedAt,
	}

	return s.repo.CreateLink(ctx, link.ShortCode, res, *link)
}
