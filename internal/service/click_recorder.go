package service

import (
	"context"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

const clickTimeout = 5 * time.Second

type clickEvent struct {
	ownerID string
	code    model.Code
}

// ClickRecorder выполняет учёт кликов в фоне, отдельно от пути редиректа.
// События кладутся в буферизованный канал и обрабатываются пулом воркеров.
// Ошибки инкремента логируются и поглощаются: учёт кликов best-effort
// и никогда не влияет на результат резолва.
type ClickRecorder struct {
	repo   ClickRepository
	logger *zap.Logger
	events chan clickEvent
	wg     sync.WaitGroup
}

// NewClickRecorder создает ClickRecorder и запускает воркеров
func NewClickRecorder(repo ClickRepository, logger *zap.Logger, workers, queueSize int) *ClickRecorder {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	r := &ClickRecorder{
		repo:   repo,
		logger: logger,
		events: make(chan clickEvent, queueSize),
	}

	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

// Record ставит клик в очередь и сразу возвращает управление.
// При переполненной очереди событие отбрасывается: недоучёт допустим,
// блокировать редирект - нет.
func (r *ClickRecorder) Record(ownerID string, code model.Code) {
	select {
	case r.events <- clickEvent{ownerID: ownerID, code: code}:
	default:
		r.logger.Warn("click queue full, dropping event",
			zap.String("code", string(code)),
		)
	}
}

// Close закрывает очередь и дожидается обработки оставшихся событий
func (r *ClickRecorder) Close() {
	close(r.events)
	r.wg.Wait()
}

func (r *ClickRecorder) worker() {
	defer r.wg.Done()

	for event := range r.events {
		r.record(event)
	}
}

func (r *ClickRecorder) record(event clickEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), clickTimeout)
	defer cancel()

	if err := r.repo.IncrementClick(ctx, event.ownerID, event.code); err != nil {
		r.logger.Error("failed to record click",
			zap.String("code", string(event.code)),
			zap.String("owner_id", event.ownerID),
			zap.Error(err),
		)
	}
}
