// Package config содержит логику чтения конфигурации шлюза магазина.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации шлюза магазина.
type Config struct {
	RunAddress           string        `env:"RUN_ADDRESS"`
	UpstreamAddress      string        `env:"UPSTREAM_ADDRESS"`
	CookieSecret         string        `env:"COOKIE_SECRET"`
	CredentialsFile      string        `env:"CREDENTIALS_FILE"`
	BoardRefreshInterval time.Duration `env:"BOARD_REFRESH_INTERVAL"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envUpstreamAddress := cfg.UpstreamAddress
	envCookieSecret := cfg.CookieSecret
	envCredentialsFile := cfg.CredentialsFile
	envBoardInterval := cfg.BoardRefreshInterval

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.UpstreamAddress, "r", "", "upstream API address")
	flag.StringVar(&cfg.CookieSecret, "s", "", "secret key for the credential cookie")
	flag.StringVar(&cfg.CredentialsFile, "c", "", "path to the credentials file")
	flag.DurationVar(&cfg.BoardRefreshInterval, "i", time.Minute, "price board refresh interval")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envUpstreamAddress != "" {
		cfg.UpstreamAddress = envUpstreamAddress
	}
	if envCookieSecret != "" {
		cfg.CookieSecret = envCookieSecret
	}
	if envCredentialsFile != "" {
		cfg.CredentialsFile = envCredentialsFile
	}
	if envBoardInterval != 0 {
		cfg.BoardRefreshInterval = envBoardInterval
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	if cfg.UpstreamAddress == "" {
		return nil, fmt.Errorf("upstream API address is required")
	}

	return cfg, nil
}
