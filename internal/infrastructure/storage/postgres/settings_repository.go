package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/errs"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSettingsRepository(pool *pgxpool.Pool, log *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		pool: pool,
		log:  log.With("component", "settings_repository"),
	}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errs.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w: %w", key, errs.ErrUnavailable, err)
	}
	return value, nil
}

func (r *SettingsRepository) Put(ctx context.Context, values map[string]string) error {
	const query = `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for key, value := range values {
			if _, err := tx.Exec(ctx, query, key, value); err != nil {
				return fmt.Errorf("put setting %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to put settings", "error", err)
		return fmt.Errorf("put settings: %w: %w", errs.ErrUnavailable, err)
	}
	return nil
}
