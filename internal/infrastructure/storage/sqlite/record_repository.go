package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
)

type RecordRepository struct {
	db  *DB
	log *slog.Logger
}

func NewRecordRepository(db *DB, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		db:  db,
		log: log.With("component", "record_repository"),
	}
}

const insertCredential = `
	INSERT INTO passwords (name, username, password, email, note, createdAt)
	VALUES (?, ?, ?, ?, ?, ?)`

func (r *RecordRepository) Create(ctx context.Context, cred *record.Credential) (int64, error) {
	res, err := r.db.Writer.ExecContext(ctx, insertCredential,
		cred.Name, cred.Username, cred.Password, cred.Email, cred.Note,
		record.FormatTime(cred.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert credential: %w: %w", errs.ErrUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert credential id: %w: %w", errs.ErrUnavailable, err)
	}

	cred.ID = id
	return id, nil
}

// CreateBatch вставляет все записи в одной транзакции
func (r *RecordRepository) CreateBatch(ctx context.Context, creds []*record.Credential) (ids []int64, err error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w: %w", errs.ErrUnavailable, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("failed to rollback batch", "error", rbErr)
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertCredential)
	if err != nil {
		return nil, fmt.Errorf("prepare batch: %w: %w", errs.ErrUnavailable, err)
	}
	defer stmt.Close()

	ids = make([]int64, 0, len(creds))
	for _, cred := range creds {
		res, err := stmt.ExecContext(ctx,
			cred.Name, cred.Username, cred.Password, cred.Email, cred.Note,
			record.FormatTime(cred.CreatedAt))
		if err != nil {
			return nil, fmt.Errorf("insert batch credential: %w: %w", errs.ErrUnavailable, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("insert batch credential id: %w: %w", errs.ErrUnavailable, err)
		}
		cred.ID = id
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w: %w", errs.ErrUnavailable, err)
	}
	return ids, nil
}

const selectCredential = `
	SELECT id, name, username, password, COALESCE(email, ''), COALESCE(note, ''), createdAt
	FROM passwords`

func (r *RecordRepository) List(ctx context.Context) ([]record.Credential, error) {
	rows, err := r.db.Reader.QueryContext(ctx, selectCredential+` ORDER BY createdAt ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w: %w", errs.ErrUnavailable, err)
	}
	defer rows.Close()

	creds := []record.Credential{}
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		creds = append(creds, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w: %w", errs.ErrUnavailable, err)
	}

	return creds, nil
}

func (r *RecordRepository) Get(ctx context.Context, id int64) (*record.Credential, error) {
	row := r.db.Reader.QueryRowContext(ctx, selectCredential+` WHERE id = ?`, id)

	c, err := scanCredential(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, record.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *RecordRepository) Update(ctx context.Context, id int64, fields record.NewCredential) error {
	const query = `
		UPDATE passwords
		SET name = ?, username = ?, password = ?, email = ?, note = ?
		WHERE id = ?`

	res, err := r.db.Writer.ExecContext(ctx, query,
		fields.Name, fields.Username, fields.Password, fields.Email, fields.Note, id)
	if err != nil {
		return fmt.Errorf("update credential: %w: %w", errs.ErrUnavailable, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update credential rows: %w: %w", errs.ErrUnavailable, err)
	}
	if n == 0 {
		return record.ErrNotFound
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Writer.ExecContext(ctx, `DELETE FROM passwords WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete credential: %w: %w", errs.ErrUnavailable, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(s scanner) (*record.Credential, error) {
	var (
		c         record.Credential
		createdAt string
	)
	err := s.Scan(&c.ID, &c.Name, &c.Username, &c.Password, &c.Email, &c.Note, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan credential: %w: %w", errs.ErrUnavailable, err)
	}

	c.CreatedAt, err = record.ParseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse createdAt of credential %d: %w", c.ID, err)
	}
	return &c, nil
}
