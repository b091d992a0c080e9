package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// DatabaseStore реализует хранилище ссылок поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

// CreateLink записывает Resolution и Link в одной транзакции.
// Условная вставка (ON CONFLICT DO NOTHING) гарантирует, что при гонке
// за один код ровно один вызов создаёт записи, остальные получают ErrAlreadyExists.
func (ds *DatabaseStore) CreateLink(ctx context.Context, code model.Code, res model.Resolution, link model.Link) error {
	tx, err := ds.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO resolutions (code, original_url, owner_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING
	`, string(code), string(res.OriginalURL), res.OwnerID, res.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert resolution: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
	}

	var alias *string
	if link.CustomAlias != "" {
		a := string(link.CustomAlias)
		alias = &a
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO links (id, owner_id, code, original_url, custom_alias, click_count, owner_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, link.ID, link.OwnerID, string(link.ShortCode), string(link.OriginalURL), alias, link.ClickCount, link.OwnerEmail, link.CreatedAt)
	if err != nil {
		// UNIQUE(code) на links страхует инвариант "не более одной записи на код"
		if isUniqueViolation(err) {
			return fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetResolution читает публичную запись по короткому коду
func (ds *DatabaseStore) GetResolution(ctx context.Context, code model.Code) (model.Resolution, error) {
	var res model.Resolution

	err := ds.pool.QueryRow(ctx, `
		SELECT original_url, owner_id, created_at
		FROM resolutions
		WHERE code = $1
	`, string(code)).Scan(&res.OriginalURL, &res.OwnerID, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resolution{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Resolution{}, fmt.Errorf("failed to read resolution: %w", err)
	}

	return res, nil
}

// ListByOwner возвращает ссылки владельца, отсортированные по дате создания (новые первыми)
func (ds *DatabaseStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	rows, err := ds.pool.Query(ctx, `
		SELECT id, owner_id, code, original_url, custom_alias, click_count, owner_email, created_at
		FROM links
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		var link model.Link
		var alias *string

		err := rows.Scan(&link.ID, &link.OwnerID, &link.ShortCode, &link.OriginalURL,
			&alias, &link.ClickCount, &link.OwnerEmail, &link.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}

		if alias != nil {
			link.CustomAlias = model.Code(*alias)
		}

		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// IncrementClick атомарно увеличивает счётчик кликов на стороне базы
func (ds *DatabaseStore) IncrementClick(ctx context.Context, ownerID string, code model.Code) error {
	tag, err := ds.pool.Exec(ctx, `
		UPDATE links
		SET click_count = click_count + 1
		WHERE owner_id = $1 AND code = $2
	`, ownerID, string(code))
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return nil
}

// Ping проверяет доступность базы данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}
