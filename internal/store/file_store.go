package store

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// FileStore декоратор над MemoryStore, который добавляет персистентность через файл.
// Чтения и инкременты идут в память, каждая мутация сбрасывает снимок в файл.
type FileStore struct {
	store       *MemoryStore
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewMemoryStore(),
		fileStorage: NewFileStorage(filePath),
	}

	links, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}
	fs.store.restore(links)

	return fs, nil
}

// CreateLink создает записи в памяти и сохраняет снимок в файл
func (fs *FileStore) CreateLink(ctx context.Context, code model.Code, res model.Resolution, link model.Link) error {
	if err := fs.store.CreateLink(ctx, code, res, link); err != nil {
		return err
	}

	if err := fs.fileStorage.Save(fs.store.snapshot()); err != nil {
		return fmt.Errorf("failed to persist links: %w", err)
	}

	return nil
}

// GetResolution читает публичную запись из памяти
func (fs *FileStore) GetResolution(ctx context.Context, code model.Code) (model.Resolution, error) {
	return fs.store.GetResolution(ctx, code)
}

// ListByOwner возвращает ссылки владельца из памяти
func (fs *FileStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	return fs.store.ListByOwner(ctx, ownerID)
}

// IncrementClick увеличивает счётчик в памяти и сохраняет снимок в файл
func (fs *FileStore) IncrementClick(ctx context.Context, ownerID string, code model.Code) error {
	if err := fs.store.IncrementClick(ctx, ownerID, code); err != nil {
		return err
	}

	if err := fs.fileStorage.Save(fs.store.snapshot()); err != nil {
		return fmt.Errorf("failed to persist links: %w", err)
	}

	return nil
}

// Ping всегда успешен для файлового хранилища
func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}
