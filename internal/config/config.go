package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvBookingAPIURL   = "BOOKING_API_URL"
	EnvBookingAPIToken = "BOOKING_API_TOKEN"
	EnvLogLevel        = "LOG_LEVEL"
)

// Config конфигурация агента бронирования переговорных
type Config struct {
	Server     ServerConfig     `toml:"server"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Session    SessionConfig    `toml:"session"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

// ServerConfig параметры локального HTTP API (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// BookingAPIConfig параметры внешнего Booking API
type BookingAPIConfig struct {
	URL               string  `toml:"url"`
	Token             string  `toml:"token"`
	Timeout           int     `toml:"timeout"` // секунды
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// SessionConfig параметры сессии пользователя (секунды)
type SessionConfig struct {
	// WarmupTimeout ограничивает первичную загрузку комнат и бронирований при старте
	WarmupTimeout int `toml:"warmup_timeout"`
	// FetchTimeout ограничивает фоновую загрузку сетки при открытии комнаты
	FetchTimeout int `toml:"fetch_timeout"`
}

// RateLimitConfig ограничение запросов к локальному API
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8085,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		BookingAPI: BookingAPIConfig{
			Timeout:           10,
			RequestsPerSecond: 10,
			Burst:             5,
		},
		Session: SessionConfig{
			WarmupTimeout: 20,
			FetchTimeout:  30,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 600,
			Burst:             60,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_room_booking",
		},
	}
}

// Load читает .env (если есть), затем TOML файл поверх значений по умолчанию,
// затем применяет переменные окружения и валидирует результат.
// Отсутствующий файл конфигурации не является ошибкой.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBookingAPIURL); v != "" {
		cfg.BookingAPI.URL = v
	}
	if v := os.Getenv(EnvBookingAPIToken); v != "" {
		cfg.BookingAPI.Token = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logs.Level = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.BookingAPI.URL == "" {
		return fmt.Errorf("%w: booking_api.url is required", ErrInvalidConfig)
	}
	c.BookingAPI.URL = strings.TrimRight(c.BookingAPI.URL, "/")

	if c.BookingAPI.Token == "" {
		return fmt.Errorf("%w: booking_api.token is required (or %s)", ErrInvalidConfig, EnvBookingAPIToken)
	}

	if c.BookingAPI.Timeout <= 0 {
		return fmt.Errorf("%w: booking_api.timeout must be positive", ErrInvalidConfig)
	}

	if c.BookingAPI.RequestsPerSecond <= 0 || c.BookingAPI.Burst <= 0 {
		return fmt.Errorf("%w: booking_api rate limit must be positive", ErrInvalidConfig)
	}

	if c.Session.WarmupTimeout <= 0 || c.Session.FetchTimeout <= 0 {
		return fmt.Errorf("%w: session timeouts must be positive", ErrInvalidConfig)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	return nil
}
