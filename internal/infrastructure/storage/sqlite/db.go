// Package sqlite - хранилище учетных записей во встроенной базе SQLite.
package sqlite

import (
	"database/sql"
	"fmt"

	// Драйвер sqlite3 (cgo), используется по умолчанию
	_ "github.com/mattn/go-sqlite3"
	// Драйвер sqlite на чистом Go
	_ "modernc.org/sqlite"
)

const (
	DriverCgo  = "sqlite3"
	DriverPure = "sqlite"
)

// DB provides dual reader/writer connections.
// The writer is limited to a single connection to avoid "database is locked" errors.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
}

// DSN строит строку подключения к файлу path. Синтаксис прагм у драйверов разный.
func DSN(driver, path string) (string, error) {
	switch driver {
	case DriverCgo:
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path), nil
	case DriverPure:
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", path), nil
	}
	return "", fmt.Errorf("unknown sqlite driver %q", driver)
}

// NewDB opens writer and reader pools for dsn and pings both.
func NewDB(driver, dsn string) (*DB, error) {
	writer, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	if err := writer.Ping(); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("ping writer: %w", err)
	}

	reader, err := sql.Open(driver, dsn)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(4)

	if err := reader.Ping(); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return nil, fmt.Errorf("ping reader: %w", err)
	}

	return &DB{Writer: writer, Reader: reader}, nil
}

// Close closes both pools and returns the first error encountered.
func (db *DB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}
	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
