package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// Resolve возвращает оригинальный URL по короткому коду и ставит клик
// на фоновый учёт. Учёт клика не задерживает ответ и не меняет результат:
// резолв завершается ровно одним из двух исходов - URL или "не найдено".
func (u *LinkUsecase) Resolve(ctx context.Context, code string) (string, error) {
	// Пустые коды и имена статических файлов (favicon.ico и прочие
	// коды с точкой) отсекаются до обращения к хранилищу
	if code == "" || strings.Contains(code, ".") {
		return "", fmt.Errorf("%w: %s", ErrLinkNotFound, code)
	}

	res, err := u.repo.GetResolution(ctx, model.Code(code))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrLinkNotFound, code)
		}

		u.logger.Error("failed to resolve short code",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.clicks.Record(res.OwnerID, model.Code(code))

	return res.OriginalURL.String(), nil
}
