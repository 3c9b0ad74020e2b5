package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jtricerolph/newbook-twin-optomiser-table/internal/domain"
)

// Источники данных о бронированиях
const (
	SourceAPI      = "api"
	SourceDatabase = "database"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Grid     GridConfig     `toml:"grid"`
	Source   SourceConfig   `toml:"source"`
	Newbook  NewbookConfig  `toml:"newbook"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GridConfig настройки сетки бронирований
type GridConfig struct {
	DefaultDays int    `toml:"default_days"`
	Title       string `toml:"title"`
}

// SourceConfig выбор источника данных о бронированиях
type SourceConfig struct {
	Type string `toml:"type"` // "api" или "database"
}

// NewbookConfig настройки клиента Booking Match API
type NewbookConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из TOML-файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "twin-optomiser-table"
	}
	if c.Grid.DefaultDays == 0 {
		c.Grid.DefaultDays = domain.DefaultDays
	}
	if c.Grid.Title == "" {
		c.Grid.Title = "Twin Booking Optimizer"
	}
	if c.Source.Type == "" {
		c.Source.Type = SourceAPI
	}
	if c.Newbook.Timeout == 0 {
		c.Newbook.Timeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
}

func (c *Config) validate() error {
	switch c.Source.Type {
	case SourceAPI:
		if c.Newbook.URL == "" {
			return fmt.Errorf("config: newbook.url is required when source.type = %q", SourceAPI)
		}
	case SourceDatabase:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("config: database.host and database.dbname are required when source.type = %q", SourceDatabase)
		}
	default:
		return fmt.Errorf("config: unknown source.type %q", c.Source.Type)
	}

	if c.Grid.DefaultDays < domain.MinDays || c.Grid.DefaultDays > domain.MaxDays {
		return fmt.Errorf("config: grid.default_days must be between %d and %d", domain.MinDays, domain.MaxDays)
	}

	return nil
}
