package config

import (
	"fmt"
	"path/filepath"
	"time"

	common "passkeeper/internal/config"
)

const (
	defaultExportLabel      = "passwords_backup"
	defaultClipboardTimeout = 30
	defaultExportDir        = "exports"
)

type Config struct {
	common.Common
	ExportDir        string
	ExportLabel      string
	ClipboardTimeout time.Duration
	// Passphrase берется из PASSKEEPER_PASSPHRASE для неинтерактивного запуска
	Passphrase string
}

// Load загружает конфигурацию клиента: .env, переменные окружения и,
// если задан, файл configFile.
func Load(configFile string) (*Config, error) {
	if err := common.LoadDotEnv(".env", "../.env"); err != nil {
		return nil, err
	}

	v, err := common.NewViper(configFile)
	if err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию
	v.SetDefault("EXPORT_LABEL", defaultExportLabel)
	v.SetDefault("CLIPBOARD_TIMEOUT_SECONDS", defaultClipboardTimeout)

	c, err := common.ReadCommon(v)
	if err != nil {
		return nil, err
	}

	exportDir := v.GetString("EXPORT_DIR")
	if exportDir == "" {
		exportDir = filepath.Join(c.ConfigDir, defaultExportDir)
	}
	exportDir, err = common.ExpandHome(exportDir)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Common:           c,
		ExportDir:        exportDir,
		ExportLabel:      v.GetString("EXPORT_LABEL"),
		ClipboardTimeout: time.Duration(v.GetInt("CLIPBOARD_TIMEOUT_SECONDS")) * time.Second,
		Passphrase:       v.GetString("PASSKEEPER_PASSPHRASE"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.ExportLabel == "" {
		return fmt.Errorf("export_label не может быть пустым")
	}
	if c.ClipboardTimeout < 0 {
		return fmt.Errorf("clipboard_timeout_seconds не может быть отрицательным")
	}
	return nil
}

