// Package config содержит общие для клиента и сервера настройки.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	DriverSQLite3  = "sqlite3"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const (
	defaultEnv       = EnvLocal
	defaultConfigDir = "~/.passkeeper"
	defaultDriver    = DriverSQLite3
	defaultDBFile    = "myapp.db"
)

// Storage - выбор и параметры хранилища
type Storage struct {
	Driver      string
	DataPath    string
	DatabaseURI string
}

// Gate - параметры шлюза доступа
type Gate struct {
	HashPassphrase bool
}

type Common struct {
	Env       string
	ConfigDir string
	Storage   Storage
	Gate      Gate
}

// LoadDotEnv загружает первый найденный .env. Отсутствие файла не ошибка.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		return nil
	}
	return nil
}

// NewViper возвращает viper, читающий переменные окружения и, если задан,
// файл конфигурации. Ключи файла совпадают с именами переменных в нижнем регистре.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("STORAGE_DRIVER", defaultDriver)
	v.SetDefault("GATE_HASH_PASSPHRASE", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return v, nil
}

// ReadCommon собирает общие настройки и проверяет их.
func ReadCommon(v *viper.Viper) (Common, error) {
	configDir, err := ExpandHome(v.GetString("CONFIG_DIR"))
	if err != nil {
		return Common{}, err
	}

	dataPath := v.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDBFile)
	}
	dataPath, err = ExpandHome(dataPath)
	if err != nil {
		return Common{}, err
	}

	c := Common{
		Env:       strings.ToLower(v.GetString("APP_ENV")),
		ConfigDir: configDir,
		Storage: Storage{
			Driver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
			DataPath:    dataPath,
			DatabaseURI: v.GetString("DATABASE_URI"),
		},
		Gate: Gate{
			HashPassphrase: v.GetBool("GATE_HASH_PASSPHRASE"),
		},
	}

	return c, c.validate()
}

func (c Common) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.Env)
	}

	switch c.Storage.Driver {
	case DriverSQLite3, DriverSQLite, DriverMemory:
	case DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI is required for driver %q", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

// ExpandHome заменяет ведущий ~ на домашнюю директорию пользователя.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
