package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

type ownerCode struct {
	ownerID string
	code    model.Code
}

// MemoryStore хранит ссылки в памяти.
// Вся мутация идёт под одним мьютексом, поэтому условное создание
// и инкремент счётчика атомарны относительно конкурентных запросов.
type MemoryStore struct {
	mutex       sync.Mutex
	resolutions map[model.Code]model.Resolution
	byOwner     map[string][]*model.Link
	byOwnerCode map[ownerCode]*model.Link
}

// NewMemoryStore создает новое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		resolutions: make(map[model.Code]model.Resolution),
		byOwner:     make(map[string][]*model.Link),
		byOwnerCode: make(map[ownerCode]*model.Link),
	}
}

// CreateLink записывает Resolution и Link только если код ещё не занят.
// Проверка и запись выполняются под одним мьютексом: при гонке за один
// и тот же код побеждает ровно один вызов, остальные получают ErrAlreadyExists.
func (s *MemoryStore) CreateLink(_ context.Context, code model.Code, res model.Resolution, link model.Link) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.resolutions[code]; exists {
		return fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
	}

	s.resolutions[code] = res

	stored := link
	s.byOwner[link.OwnerID] = append(s.byOwner[link.OwnerID], &stored)
	s.byOwnerCode[ownerCode{ownerID: link.OwnerID, code: code}] = &stored

	return nil
}

// GetResolution читает публичную запись по короткому коду
func (s *MemoryStore) GetResolution(_ context.Context, code model.Code) (model.Resolution, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	res, ok := s.resolutions[code]
	if !ok {
		return model.Resolution{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return res, nil
}

// ListByOwner возвращает снимок ссылок владельца, отсортированный по дате создания (новые первыми)
func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) ([]model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	links := make([]model.Link, 0, len(s.byOwner[ownerID]))
	for _, link := range s.byOwner[ownerID] {
		links = append(links, *link)
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})

	return links, nil
}

// IncrementClick атомарно увеличивает счётчик кликов ссылки на единицу
func (s *MemoryStore) IncrementClick(_ context.Context, ownerID string, code model.Code) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.byOwnerCode[ownerCode{ownerID: ownerID, code: code}]
	if !ok {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	link.ClickCount++

	return nil
}

// Ping всегда успешен для in-memory хранилища
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// snapshot возвращает копии всех ссылок (для персистентности FileStore)
func (s *MemoryStore) snapshot() []model.Link {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var links []model.Link
	for _, ownerLinks := range s.byOwner {
		for _, link := range ownerLinks {
			links = append(links, *link)
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})

	return links
}

// restore загружает ссылки в хранилище без проверки занятости кодов.
// Используется при старте для загрузки данных из файла.
func (s *MemoryStore) restore(links []model.Link) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, link := range links {
		stored := link
		s.resolutions[link.ShortCode] = model.Resolution{
			OriginalURL: link.OriginalURL,
			OwnerID:     link.OwnerID,
			CreatedAt:   link.CreatedAt,
		}
		s.byOwner[link.OwnerID] = append(s.byOwner[link.OwnerID], &stored)
		s.byOwnerCode[ownerCode{ownerID: link.OwnerID, code: link.ShortCode}] = &stored
	}
}
