package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig      `toml:"server"`
	Database       DatabaseConfig    `toml:"database"`
	Logs           LogsConfig        `toml:"logs"`
	Metrics        MetricsConfig     `toml:"metrics"`
	CatalogService IntegrationConfig `toml:"catalog_service"`
	OrderService   IntegrationConfig `toml:"order_service"`
	Drafts         DraftsConfig      `toml:"drafts"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пустая строка - только stdout
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig параметры внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	File    string `toml:"file"`    // только для catalog_service: локальный YAML каталог вместо HTTP
}

// DraftsConfig параметры хранения черновиков
type DraftsConfig struct {
	TTLHours             int `toml:"ttl_hours"`              // черновики старше удаляются
	PurgeIntervalMinutes int `toml:"purge_interval_minutes"` // 0 - очистка выключена
}

// Load читает конфигурацию из TOML файла.
// Перед этим подгружает .env (если есть); переменные окружения
// DB_HOST, DB_PASSWORD, CATALOG_SERVICE_URL, ORDER_SERVICE_URL, HTTP_PORT
// перекрывают значения из файла.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrLoad, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("CATALOG_SERVICE_URL"); ok {
		c.CatalogService.URL = v
	}
	if v, ok := os.LookupEnv("ORDER_SERVICE_URL"); ok {
		c.OrderService.URL = v
	}
	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidValue, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = DefaultHTTPPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultServerTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultServerTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = DefaultIdleTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = DefaultMaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = DefaultMaxIdleConns
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = DefaultServiceName
	}
	if c.CatalogService.Timeout == 0 {
		c.CatalogService.Timeout = DefaultIntegrationTimeout
	}
	if c.OrderService.Timeout == 0 {
		c.OrderService.Timeout = DefaultIntegrationTimeout
	}
	if c.Drafts.TTLHours == 0 {
		c.Drafts.TTLHours = DefaultDraftTTLHours
	}
}

// Validate проверяет, что значения конфигурации допустимы
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidValue, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidValue)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidValue)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns exceeds max_open_conns", ErrInvalidValue)
	}
	if c.CatalogService.URL == "" && c.CatalogService.File == "" {
		return fmt.Errorf("%w: catalog_service.url or catalog_service.file is required", ErrInvalidValue)
	}
	if c.OrderService.URL == "" {
		return fmt.Errorf("%w: order_service.url is required", ErrInvalidValue)
	}
	if c.Drafts.TTLHours < 0 || c.Drafts.PurgeIntervalMinutes < 0 {
		return fmt.Errorf("%w: drafts settings must not be negative", ErrInvalidValue)
	}
	return nil
}
