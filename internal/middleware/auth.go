package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// OwnerKey is the key type used to store owner identity in context
type OwnerKey string

const (
	// OwnerContextKey is the context key for owner identity
	OwnerContextKey OwnerKey = "owner"
)

// AuthMiddleware представляет миддлвар для аутентификации владельцев ссылок
type AuthMiddleware struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(authService *service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// authenticate извлекает владельца из куки (или выдаёт новую идентичность)
// и кладёт его в контекст запроса
func (am *AuthMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, err := am.authService.GetOrCreateOwnerFromCookie(r, w)
		if err != nil {
			am.logger.Error("failed to authenticate owner", zap.Error(err))
			http.Error(w, "Authentication failed", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), OwnerContextKey, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth возвращает миддлвар, который требует аутентификации.
// Всегда устанавливает идентичность владельца (создает если нужно)
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return am.authenticate(next)
}

// OptionalAuth возвращает миддлвар для опциональной аутентификации.
// Всегда устанавливает идентичность владельца (создает если нужно)
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return am.authenticate(next)
}

// GetOwnerFromContext извлекает владельца из контекста запроса
func GetOwnerFromContext(ctx context.Context) (model.Owner, bool) {
	owner, ok := ctx.Value(OwnerContextKey).(model.Owner)
	return owner, ok
}
