package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockClickRepository реализует ClickRepository для тестов
type MockClickRepository struct {
	mu     sync.Mutex
	counts map[string]int
	err    error
}

func NewMockClickRepository(err error) *MockClickRepository {
	return &MockClickRepository{
		counts: make(map[string]int),
		err:    err,
	}
}

func (m *MockClickRepository) IncrementClick(_ context.Context, ownerID string, code model.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.counts[ownerID+"/"+string(code)]++
	return nil
}

func (m *MockClickRepository) Count(ownerID string, code model.Code) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[ownerID+"/"+string(code)]
}

// TestClickRecorder_RecordsAllEvents проверяет, что N событий дают ровно N инкрементов
func TestClickRecorder_RecordsAllEvents(t *testing.T) {
	// Arrange
	repo := NewMockClickRepository(nil)
	recorder := NewClickRecorder(repo, zap.NewNop(), 4, 256)

	const clicks = 100

	// Act
	for i := 0; i < clicks; i++ {
		recorder.Record("owner-1", "abc12345")
	}
	recorder.Close()

	// Assert
	assert.Equal(t, clicks, repo.Count("owner-1", "abc12345"))
}

// TestClickRecorder_SwallowsFailures проверяет, что ошибка инкремента
// не паникует и не блокирует очередь
func TestClickRecorder_SwallowsFailures(t *testing.T) {
	// Arrange
	repo := NewMockClickRepository(errors.New("store unavailable"))
	recorder := NewClickRecorder(repo, zap.NewNop(), 2, 16)

	// Act
	require.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			recorder.Record("owner-1", "abc12345")
		}
		recorder.Close()
	})

	// Assert
	assert.Equal(t, 0, repo.Count("owner-1", "abc12345"))
}

// TestClickRecorder_DropsWhenQueueFull проверяет, что переполненная очередь
// не блокирует вызывающего
func TestClickRecorder_DropsWhenQueueFull(t *testing.T) {
	// Arrange
	repo := NewMockClickRepository(nil)

	// Один воркер и крошечная очередь: часть событий будет отброшена,
	// но Record не должен блокироваться
	recorder := NewClickRecorder(repo, zap.NewNop(), 1, 1)

	// Act
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			recorder.Record("owner-1", "abc12345")
		}
	}()
	<-done
	recorder.Close()

	// Assert - недоучёт допустим, переучёт - нет
	assert.LessOrEqual(t, repo.Count("owner-1", "abc12345"), 1000)
}
