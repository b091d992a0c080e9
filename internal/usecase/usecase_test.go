package usecase

import (
	"context"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

// MockRepository реализует LinkRepository для тестов
type MockRepository struct {
	GetResolutionFunc func(ctx context.Context, code model.Code) (model.Resolution, error)
	ListByOwnerFunc   func(ctx context.Context, ownerID string) ([]model.Link, error)
	PingFunc          func(ctx context.Context) error

	GetResolutionCalls int
}

func (m *MockRepository) GetResolution(ctx context.Context, code model.Code) (model.Resolution, error) {
	m.GetResolutionCalls++
	return m.GetResolutionFunc(ctx, code)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockService реализует LinkService для тестов
type MockService struct {
	CreateLinkFunc func(ctx context.Context, originalURL model.URL, owner model.Owner, customAlias string) (*model.Link, error)
	Calls          int
}

func (m *MockService) CreateLink(ctx context.Context, originalURL model.URL, owner model.Owner, customAlias string) (*model.Link, error) {
	m.Calls++
	return m.CreateLinkFunc(ctx, originalURL, owner, customAlias)
}

// MockClickSink реализует ClickSink для тестов
type MockClickSink struct {
	mu     sync.Mutex
	events []string
}

func (m *MockClickSink) Record(ownerID string, code model.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ownerID+"/"+string(code))
}

func (m *MockClickSink) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.events...)
}
