package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RetryConfig содержит настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"CODE_GEN_MAX_ATTEMPTS" envDefault:"5"`
}

// ClicksConfig содержит настройки фонового учёта кликов
type ClicksConfig struct {
	Workers   int `env:"CLICK_WORKERS" envDefault:"4"`
	QueueSize int `env:"CLICK_QUEUE_SIZE" envDefault:"1024"`
}

// Config содержит конфигурацию приложения.
// Значения берутся из флагов, переменные окружения имеют приоритет.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FallbackURL     string         `env:"FALLBACK_URL" envDefault:"/"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	JWTSecret       string         `env:"JWT_SECRET" envDefault:"supersecret"`
	CodeLength      int            `env:"CODE_LENGTH" envDefault:"8"`
	Retry           RetryConfig
	Clicks          ClicksConfig
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию (без флагов и окружения)
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
		FallbackURL:   "/",
		JWTSecret:     "supersecret",
		CodeLength:    8,
		Retry:         RetryConfig{MaxAttempts: 5},
		Clicks:        ClicksConfig{Workers: 4, QueueSize: 1024},
	}
}

// Load читает конфигурацию из флагов командной строки и переменных окружения
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	flag.StringVar(&cfg.FileStoragePath, "f", "", "path to file storage")
	flag.StringVar(&cfg.DatabaseDSN, "d", "", "database DSN")
	flag.Parse()

	// Переменные окружения перекрывают флаги
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
