package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOwner = model.Owner{ID: "owner-1", Email: "owner@example.com"}

func shortenRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return withOwner(req, testOwner)
}

// TestCreateLink_Success проверяет создание ссылки через JSON API
func TestCreateLink_Success(t *testing.T) {
	// Arrange
	created := &model.Link{
		ID:          "link-1",
		OriginalURL: "https://example.com/a/b",
		ShortCode:   "abc12345",
		OwnerID:     testOwner.ID,
		OwnerEmail:  testOwner.Email,
	}

	h := newTestHandler(&MockUsecase{
		CreateLinkFunc: func(_ context.Context, rawURL, customAlias string, owner model.Owner) (*model.Link, string, error) {
			assert.Equal(t, "https://example.com/a/b", rawURL)
			assert.Empty(t, customAlias)
			assert.Equal(t, testOwner, owner)
			return created, "http://localhost:8080/abc12345", nil
		},
	})

	w := httptest.NewRecorder()

	// Act
	h.CreateLink(w, shortenRequest(`{"url":"https://example.com/a/b"}`))

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var response ShortenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "http://localhost:8080/abc12345", response.Result)
	assert.Equal(t, model.Code("abc12345"), response.Link.ShortCode)
}

// TestCreateLink_CustomAlias проверяет передачу пользовательского алиаса в usecase
func TestCreateLink_CustomAlias(t *testing.T) {
	// Arrange
	h := newTestHandler(&MockUsecase{
		CreateLinkFunc: func(_ context.Context, _, customAlias string, _ model.Owner) (*model.Link, string, error) {
			assert.Equal(t, "my-link", customAlias)
			return &model.Link{ShortCode: "my-link", CustomAlias: "my-link"}, "http://localhost:8080/my-link", nil
		},
	})

	w := httptest.NewRecorder()

	// Act
	h.CreateLink(w, shortenRequest(`{"url":"https://example.com","custom_alias":"my-link"}`))

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// TestCreateLink_Unauthorized проверяет отказ без владельца в контексте
func TestCreateLink_Unauthorized(t *testing.T) {
	// Arrange
	h := newTestHandler(&MockUsecase{
		CreateLinkFunc: func(_ context.Context, _, _ string, _ model.Owner) (*model.Link, string, error) {
			t.Fatal("usecase must not be called without owner")
			return nil, "", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(`{"url":"https://example.com"}`))
	w := httptest.NewRecorder()

	// Act
	h.CreateLink(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestCreateLink_BadJSON проверяет отказ на невалидном теле запроса
func TestCreateLink_BadJSON(t *testing.T) {
	// Arrange
	h := newTestHandler(&MockUsecase{
		CreateLinkFunc: func(_ context.Context, _, _ string, _ model.Owner) (*model.Link, string, error) {
			t.Fatal("usecase must not be called for malformed JSON")
			return nil, "", nil
		},
	})

	w := httptest.NewRecorder()

	// Act
	h.CreateLink(w, shortenRequest(`{"url": not json`))

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestCreateLink_ErrorStatuses проверяет перевод ошибок usecase в HTTP статусы
func TestCreateLink_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{
			name:       "Empty URL",
			usecaseErr: usecase.ErrEmptyURL,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid URL",
			usecaseErr: usecase.ErrInvalidURL,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid alias",
			usecaseErr: usecase.ErrInvalidAlias,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Alias taken",
			usecaseErr: usecase.ErrAliasTaken,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Code space exhausted",
			usecaseErr: usecase.ErrCodeSpaceExhausted,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Service unavailable",
			usecaseErr: usecase.ErrServiceUnavailable,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := newTestHandler(&MockUsecase{
				CreateLinkFunc: func(_ context.Context, _, _ string, _ model.Owner) (*model.Link, string, error) {
					return nil, "", tt.usecaseErr
				},
			})

			w := httptest.NewRecorder()

			// Act
			h.CreateLink(w, shortenRequest(`{"url":"https://example.com"}`))

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
