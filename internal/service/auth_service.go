package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService предоставляет функциональность для аутентификации владельцев ссылок
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
	}
}

// NewOwner генерирует нового анонимного владельца
func (a *AuthService) NewOwner() model.Owner {
	id := uuid.New().String()
	return model.Owner{
		ID:    id,
		Email: fmt.Sprintf("%s@anonymous.local", id[:8]),
	}
}

// GenerateJWT создает JWT токен для владельца
func (a *AuthService) GenerateJWT(owner model.Owner) (string, error) {
	claims := jwt.MapClaims{
		"user_id": owner.ID,
		"email":   owner.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет JWT токен и извлекает владельца
func (a *AuthService) ValidateJWT(tokenString string) (model.Owner, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return model.Owner{}, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return model.Owner{}, fmt.Errorf("invalid token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return model.Owner{}, fmt.Errorf("user_id not found in token")
	}

	owner := model.Owner{ID: userID}
	if email, ok := claims["email"].(string); ok {
		owner.Email = email
	}

	return owner, nil
}

// GetOrCreateOwnerFromCookie извлекает владельца из куки или создает нового
func (a *AuthService) GetOrCreateOwnerFromCookie(r *http.Request, w http.ResponseWriter) (model.Owner, error) {
	cookie, err := r.Cookie("user_token")
	if err == nil && cookie.Value != "" {
		owner, err := a.ValidateJWT(cookie.Value)
		if err == nil {
			return owner, nil
		}
		// Токен недействителен - выдаём новую идентичность
	}

	owner := a.NewOwner()
	token, err := a.GenerateJWT(owner)
	if err != nil {
		return model.Owner{}, fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "user_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // для разработки, в продакшене должен быть true
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})

	return owner, nil
}
