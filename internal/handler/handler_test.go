package handler

import (
	"context"
	"net/http"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// MockUsecase реализует LinkUsecase для тестов
type MockUsecase struct {
	CreateLinkFunc func(ctx context.Context, rawURL, customAlias string, owner model.Owner) (*model.Link, string, error)
	ResolveFunc    func(ctx context.Context, code string) (string, error)
	ListLinksFunc  func(ctx context.Context, ownerID string) ([]model.UserLinkResponse, error)
	PingStoreFunc  func(ctx context.Context) error
}

func (m *MockUsecase) CreateLink(ctx context.Context, rawURL, customAlias string, owner model.Owner) (*model.Link, string, error) {
	return m.CreateLinkFunc(ctx, rawURL, customAlias, owner)
}

func (m *MockUsecase) Resolve(ctx context.Context, code string) (string, error) {
	return m.ResolveFunc(ctx, code)
}

func (m *MockUsecase) ListLinks(ctx context.Context, ownerID string) ([]model.UserLinkResponse, error) {
	return m.ListLinksFunc(ctx, ownerID)
}

func (m *MockUsecase) PingStore(ctx context.Context) error {
	if m.PingStoreFunc != nil {
		return m.PingStoreFunc(ctx)
	}
	return nil
}

func newTestHandler(uc LinkUsecase) *Handler {
	return New(uc, config.NewDefaultConfig(), zap.NewNop())
}

// withOwner добавляет владельца в контекст запроса (как это делает auth middleware)
func withOwner(req *http.Request, owner model.Owner) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.OwnerContextKey, owner)
	return req.WithContext(ctx)
}
