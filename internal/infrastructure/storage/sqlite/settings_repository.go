package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/errs"
)

// SettingsRepository - таблица settings(key, value)
type SettingsRepository struct {
	db  *DB
	log *slog.Logger
}

func NewSettingsRepository(db *DB, log *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:  db,
		log: log.With("component", "settings_repository"),
	}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.Reader.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w: %w", key, errs.ErrUnavailable, err)
	}
	return value, nil
}

// Put записывает все значения атомарно
func (r *SettingsRepository) Put(ctx context.Context, values map[string]string) (err error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings: %w: %w", errs.ErrUnavailable, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("failed to rollback settings", "error", rbErr)
			}
		}
	}()

	for key, value := range values {
		const query = `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("put setting %q: %w: %w", key, errs.ErrUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings: %w: %w", errs.ErrUnavailable, err)
	}
	return nil
}
