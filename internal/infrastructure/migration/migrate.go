package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

// Dialect - имя драйвера database/sql, для которого применяются миграции
type Dialect string

const (
	DialectSQLite3  Dialect = "sqlite3"  // mattn/go-sqlite3
	DialectSQLite   Dialect = "sqlite"   // modernc.org/sqlite
	DialectPostgres Dialect = "postgres" // pgx
)

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(dialect Dialect, dsn string) (Migrator, error)

type Migration struct {
	dialect Dialect
	dsn     string
	engine  MigrationEngine
}

func NewMigration(dialect Dialect, dsn string, engine MigrationEngine) *Migration {
	return &Migration{
		dialect: dialect,
		dsn:     dsn,
		engine:  engine,
	}
}

// DefaultEngine — реальная реализация: встроенные SQL-файлы и отдельное
// соединение с базой, которое закрывается вместе с мигратором
func DefaultEngine(dialect Dialect, dsn string) (Migrator, error) {
	dir, err := sourceDir(dialect)
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	if dialect == DialectPostgres {
		return migrate.NewWithSourceInstance("iofs", src, dsn)
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration db: %w", err)
	}

	var drv database.Driver
	switch dialect {
	case DialectSQLite3:
		drv, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case DialectSQLite:
		drv, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create migration db driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, string(dialect), drv)
}

func sourceDir(dialect Dialect) (string, error) {
	switch dialect {
	case DialectSQLite3, DialectSQLite:
		return "sqlite", nil
	case DialectPostgres:
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported migration dialect %q", dialect)
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.dialect, mg.dsn)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
