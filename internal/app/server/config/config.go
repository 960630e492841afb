package config

import (
	"fmt"
	"net"
	"time"

	common "passkeeper/internal/config"
)

const (
	defaultRunAddress = "127.0.0.1:8080"
	defaultSessionTTL = 24 * 60
)

type Config struct {
	common.Common
	RunAddress string
	SessionTTL time.Duration
}

// Load собирает настройки сервера из .env, окружения и файла configFile.
func Load(configFile string) (*Config, error) {
	if err := common.LoadDotEnv(".env", "../../.env"); err != nil {
		return nil, err
	}

	v, err := common.NewViper(configFile)
	if err != nil {
		return nil, err
	}
	v.SetDefault("RUN_ADDRESS", defaultRunAddress)
	v.SetDefault("SESSION_TTL_MINUTES", defaultSessionTTL)

	c, err := common.ReadCommon(v)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Common:     c,
		RunAddress: v.GetString("RUN_ADDRESS"),
		SessionTTL: time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// validate пропускает только loopback-адреса: API не предназначен для сети.
func (c *Config) validate() error {
	host, _, err := net.SplitHostPort(c.RunAddress)
	if err != nil {
		return fmt.Errorf("invalid RUN_ADDRESS %q: %w", c.RunAddress, err)
	}
	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			return fmt.Errorf("RUN_ADDRESS %q is not a loopback address", c.RunAddress)
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	return nil
}
