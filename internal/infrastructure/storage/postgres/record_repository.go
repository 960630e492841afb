package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

const insertCredential = `
	INSERT INTO passwords (name, username, password, email, note, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

func (r *RecordRepository) Create(ctx context.Context, cred *record.Credential) (int64, error) {
	err := r.pool.QueryRow(ctx, insertCredential,
		cred.Name, cred.Username, cred.Password, cred.Email, cred.Note, cred.CreatedAt,
	).Scan(&cred.ID)
	if err != nil {
		r.log.Error("failed to create credential", "error", err)
		return 0, fmt.Errorf("insert credential: %w: %w", errs.ErrUnavailable, err)
	}
	return cred.ID, nil
}

// CreateBatch отправляет все вставки одним пакетом внутри транзакции
func (r *RecordRepository) CreateBatch(ctx context.Context, creds []*record.Credential) ([]int64, error) {
	ids := make([]int64, 0, len(creds))

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, cred := range creds {
			batch.Queue(insertCredential,
				cred.Name, cred.Username, cred.Password, cred.Email, cred.Note, cred.CreatedAt)
		}

		results := tx.SendBatch(ctx, batch)
		for _, cred := range creds {
			if err := results.QueryRow().Scan(&cred.ID); err != nil {
				_ = results.Close()
				return err
			}
			ids = append(ids, cred.ID)
		}
		return results.Close()
	})
	if err != nil {
		r.log.Error("failed to create credentials batch", "count", len(creds), "error", err)
		return nil, fmt.Errorf("insert batch: %w: %w", errs.ErrUnavailable, err)
	}

	return ids, nil
}

const selectCredential = `
	SELECT id, name, username, password, email, note, created_at
	FROM passwords`

func (r *RecordRepository) List(ctx context.Context) ([]record.Credential, error) {
	rows, err := r.pool.Query(ctx, selectCredential+` ORDER BY created_at ASC, id ASC`)
	if err != nil {
		r.log.Error("failed to list credentials", "error", err)
		return nil, fmt.Errorf("list credentials: %w: %w", errs.ErrUnavailable, err)
	}

	creds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (record.Credential, error) {
		return scanCredential(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan credentials: %w: %w", errs.ErrUnavailable, err)
	}
	return creds, nil
}

func (r *RecordRepository) Get(ctx context.Context, id int64) (*record.Credential, error) {
	c, err := scanCredential(r.pool.QueryRow(ctx, selectCredential+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to get credential", "id", id, "error", err)
		return nil, fmt.Errorf("get credential: %w: %w", errs.ErrUnavailable, err)
	}
	return &c, nil
}

func (r *RecordRepository) Update(ctx context.Context, id int64, fields record.NewCredential) error {
	const query = `
		UPDATE passwords
		SET name = $1, username = $2, password = $3, email = $4, note = $5
		WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		fields.Name, fields.Username, fields.Password, fields.Email, fields.Note, id)
	if err != nil {
		r.log.Error("failed to update credential", "id", id, "error", err)
		return fmt.Errorf("update credential: %w: %w", errs.ErrUnavailable, err)
	}

	if result.RowsAffected() == 0 {
		return record.ErrNotFound
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM passwords WHERE id = $1`, id); err != nil {
		r.log.Error("failed to delete credential", "id", id, "error", err)
		return fmt.Errorf("delete credential: %w: %w", errs.ErrUnavailable, err)
	}
	return nil
}

func scanCredential(row pgx.Row) (record.Credential, error) {
	var c record.Credential
	err := row.Scan(&c.ID, &c.Name, &c.Username, &c.Password, &c.Email, &c.Note, &c.CreatedAt)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, err
}
