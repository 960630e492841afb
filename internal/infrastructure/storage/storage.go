// Package storage открывает выбранное хранилище в фоне и выдает репозитории,
// которые ждут окончания инициализации.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slog"

	"passkeeper/internal/config"
	"passkeeper/internal/domain/access"
	"passkeeper/internal/domain/errs"
	"passkeeper/internal/domain/record"
	"passkeeper/internal/infrastructure/migration"
	"passkeeper/internal/infrastructure/storage/memory"
	"passkeeper/internal/infrastructure/storage/postgres"
	"passkeeper/internal/infrastructure/storage/sqlite"
)

const openTimeout = 30 * time.Second

type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

type Storage struct {
	cfg    config.Storage
	log    *slog.Logger
	engine migration.MigrationEngine

	state atomic.Int32
	ready chan struct{}

	// Заполняются до закрытия ready и после этого не меняются
	err      error
	records  record.Repository
	settings access.Repository
	closer   func() error
}

type Option func(*Storage)

// WithMigrationEngine подменяет движок миграций (для тестов).
func WithMigrationEngine(engine migration.MigrationEngine) Option {
	return func(s *Storage) {
		s.engine = engine
	}
}

// Open возвращает хранилище сразу, в состоянии StateUninitialized.
// Подключение и миграции выполняются в отдельной горутине.
func Open(cfg config.Storage, log *slog.Logger, opts ...Option) *Storage {
	s := &Storage{
		cfg:    cfg,
		log:    log.With("component", "storage", "driver", cfg.Driver),
		engine: migration.DefaultEngine,
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.init()
	return s
}

func (s *Storage) init() {
	defer close(s.ready)

	start := time.Now()
	if err := s.open(); err != nil {
		s.err = err
		s.state.Store(int32(StateFailed))
		s.log.Error("storage initialization failed", "error", err)
		return
	}

	s.state.Store(int32(StateReady))
	s.log.Debug("storage ready", "elapsed", time.Since(start))
}

func (s *Storage) open() error {
	switch s.cfg.Driver {
	case config.DriverMemory:
		m := memory.New()
		s.records, s.settings, s.closer = m.Records(), m.Settings(), m.Close
		return nil

	case config.DriverSQLite3, config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(s.cfg.DataPath), 0o700); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		dsn, err := sqlite.DSN(s.cfg.Driver, s.cfg.DataPath)
		if err != nil {
			return err
		}
		db, err := sqlite.NewDB(s.cfg.Driver, dsn)
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		if err := migration.NewMigration(migration.Dialect(s.cfg.Driver), dsn, s.engine).Up(); err != nil {
			_ = db.Close()
			return fmt.Errorf("migrate: %w", err)
		}
		s.records = sqlite.NewRecordRepository(db, s.log)
		s.settings = sqlite.NewSettingsRepository(db, s.log)
		s.closer = db.Close
		return nil

	case config.DriverPostgres:
		if err := migration.NewMigration(migration.DialectPostgres, s.cfg.DatabaseURI, s.engine).Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		pg, err := postgres.New(ctx, s.cfg.DatabaseURI)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		s.records = postgres.NewRecordRepository(pg.Pool(), s.log)
		s.settings = postgres.NewSettingsRepository(pg.Pool(), s.log)
		s.closer = pg.Close
		return nil
	}

	return fmt.Errorf("unknown storage driver %q", s.cfg.Driver)
}

func (s *Storage) State() State {
	return State(s.state.Load())
}

// Wait блокируется до завершения инициализации или отмены ctx.
// После неудачной инициализации всегда возвращает errs.ErrUnavailable.
func (s *Storage) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnavailable, s.err)
	}
	return nil
}

// Close дожидается инициализации и освобождает соединения.
func (s *Storage) Close() error {
	<-s.ready
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

func (s *Storage) Records() record.Repository {
	return &records{s: s}
}

func (s *Storage) Settings() access.Repository {
	return &settings{s: s}
}

type records struct {
	s *Storage
}

func (r *records) Create(ctx context.Context, cred *record.Credential) (int64, error) {
	if err := r.s.Wait(ctx); err != nil {
		return 0, err
	}
	return r.s.records.Create(ctx, cred)
}

func (r *records) CreateBatch(ctx context.Context, creds []*record.Credential) ([]int64, error) {
	if err := r.s.Wait(ctx); err != nil {
		return nil, err
	}
	return r.s.records.CreateBatch(ctx, creds)
}

func (r *records) List(ctx context.Context) ([]record.Credential, error) {
	if err := r.s.Wait(ctx); err != nil {
		return nil, err
	}
	return r.s.records.List(ctx)
}

func (r *records) Get(ctx context.Context, id int64) (*record.Credential, error) {
	if err := r.s.Wait(ctx); err != nil {
		return nil, err
	}
	return r.s.records.Get(ctx, id)
}

func (r *records) Update(ctx context.Context, id int64, fields record.NewCredential) error {
	if err := r.s.Wait(ctx); err != nil {
		return err
	}
	return r.s.records.Update(ctx, id, fields)
}

func (r *records) Delete(ctx context.Context, id int64) error {
	if err := r.s.Wait(ctx); err != nil {
		return err
	}
	return r.s.records.Delete(ctx, id)
}

type settings struct {
	s *Storage
}

func (r *settings) Get(ctx context.Context, key string) (string, error) {
	if err := r.s.Wait(ctx); err != nil {
		return "", err
	}
	return r.s.settings.Get(ctx, key)
}

func (r *settings) Put(ctx context.Context, values map[string]string) error {
	if err := r.s.Wait(ctx); err != nil {
		return err
	}
	return r.s.settings.Put(ctx, values)
}
