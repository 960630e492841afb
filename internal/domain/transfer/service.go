package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/slog"

	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/record"
)

type Servicer interface {
	Export(ctx context.Context, w io.Writer, passphrase string) (int, error)
	ExportFile(ctx context.Context, dir, label, passphrase string) (string, int, error)
	Import(ctx context.Context, r io.Reader) ([]int64, error)
}

type Service struct {
	records record.Servicer
	gate    access.Servicer
	log     *slog.Logger
	now     func() time.Time
}

func NewService(records record.Servicer, gate access.Servicer, log *slog.Logger) *Service {
	return &Service{
		records: records,
		gate:    gate,
		log:     log.With("component", "transfer_service"),
		now:     time.Now,
	}
}

// Export повторно проверяет пароль доступа и пишет все записи в w.
// Возвращает число выгруженных записей.
func (s *Service) Export(ctx context.Context, w io.Writer, passphrase string) (int, error) {
	creds, err := s.unlockedList(ctx, passphrase)
	if err != nil {
		return 0, err
	}

	if err := Export(w, creds); err != nil {
		s.log.Error("failed to write export", "error", err)
		return 0, fmt.Errorf("export credentials: %w", err)
	}

	s.log.Info("credentials exported", "count", len(creds))
	return len(creds), nil
}

// ExportFile создает в dir файл <label>_<epoch-millis>.csv и возвращает его путь.
func (s *Service) ExportFile(ctx context.Context, dir, label, passphrase string) (string, int, error) {
	creds, err := s.unlockedList(ctx, passphrase)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(label, s.now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", 0, fmt.Errorf("create export file: %w", err)
	}

	if err := Export(f, creds); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		s.log.Error("failed to write export file", "path", path, "error", err)
		return "", 0, fmt.Errorf("export credentials: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("close export file: %w", err)
	}

	s.log.Info("credentials exported", "path", path, "count", len(creds))
	return path, len(creds), nil
}

func (s *Service) unlockedList(ctx context.Context, passphrase string) ([]record.Credential, error) {
	ok, err := s.gate.Verify(ctx, passphrase)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, access.ErrWrongPassphrase
	}
	return s.records.List(ctx)
}

// Import разбирает CSV и сохраняет все записи одной транзакцией.
// При любой ошибке хранилище не меняется.
func (s *Service) Import(ctx context.Context, r io.Reader) ([]int64, error) {
	items, err := Parse(r)
	if err != nil {
		s.log.Debug("import rejected", "error", err)
		return nil, err
	}

	ids, err := s.records.AddBatch(ctx, items)
	if err != nil {
		return nil, err
	}

	s.log.Info("credentials imported", "count", len(ids))
	return ids, nil
}
