package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_PersistsAcrossRestart проверяет, что ссылки и счётчики кликов
// переживают перезапуск хранилища
func TestFileStore_PersistsAcrossRestart(t *testing.T) {
	// Arrange
	filePath := filepath.Join(t.TempDir(), "links.json")

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	res, link := newTestLink("abc12345", "https://example.com/a/b", "owner-1", time.Now().Truncate(time.Second))
	require.NoError(t, fs.CreateLink(context.Background(), "abc12345", res, link))
	require.NoError(t, fs.IncrementClick(context.Background(), "owner-1", "abc12345"))

	// Act - "перезапускаем" хранилище из того же файла
	reopened, err := NewFileStore(filePath)
	require.NoError(t, err)

	// Assert
	got, err := reopened.GetResolution(context.Background(), "abc12345")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com/a/b"), got.OriginalURL)
	assert.Equal(t, "owner-1", got.OwnerID)

	links, err := reopened.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, int64(1), links[0].ClickCount)
}

// TestFileStore_MissingFile проверяет запуск с отсутствующим файлом
func TestFileStore_MissingFile(t *testing.T) {
	// Arrange
	filePath := filepath.Join(t.TempDir(), "does-not-exist.json")

	// Act
	fs, err := NewFileStore(filePath)

	// Assert
	require.NoError(t, err)

	links, err := fs.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Empty(t, links)
}

// TestFileStore_AlreadyExists проверяет, что занятый код отклоняется и файл не растёт
func TestFileStore_AlreadyExists(t *testing.T) {
	// Arrange
	filePath := filepath.Join(t.TempDir(), "links.json")

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	res, link := newTestLink("my-link", "https://first.example.com", "owner-1", time.Now())
	require.NoError(t, fs.CreateLink(context.Background(), "my-link", res, link))

	// Act
	res2, link2 := newTestLink("my-link", "https://second.example.com", "owner-2", time.Now())
	err = fs.CreateLink(context.Background(), "my-link", res2, link2)

	// Assert
	require.ErrorIs(t, err, ErrAlreadyExists)

	storage := NewFileStorage(filePath)
	saved, err := storage.Load()
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}
