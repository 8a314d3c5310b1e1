package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")
	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	BusinessService BusinessServiceConfig `toml:"business_service"`
	Cache           CacheConfig           `toml:"cache"`
	Engine          EngineConfig          `toml:"engine"`
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
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessServiceConfig параметры сервиса бизнесов
type BusinessServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CacheConfig параметры Redis кэша карточек бизнеса
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// EngineConfig параметры расчета доступности
type EngineConfig struct {
	GridStepMinutes int    `toml:"grid_step_minutes"`
	MinLeadMinutes  int    `toml:"min_lead_minutes"`
	MaxDatesDays    int    `toml:"max_dates_days"`
	Timezone        string `toml:"timezone"` // часовой пояс для "сейчас", пусто = локальный
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8083,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "smc_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "availability-service",
		},
		BusinessService: BusinessServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		Cache: CacheConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 60,
		},
		Engine: EngineConfig{
			GridStepMinutes: domain.GridStepMinutes,
			MinLeadMinutes:  domain.DefaultMinLeadMinutes,
			MaxDatesDays:    domain.DefaultAvailableDatesDays,
		},
	}
}

// Load читает конфигурацию из toml файла поверх значений по умолчанию и валидирует ее
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	return Parse(string(data))
}

// Parse разбирает toml поверх значений по умолчанию
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode toml: %v", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.BusinessService.URL == "" {
		return fmt.Errorf("%w: business_service.url is required", ErrInvalidConfig)
	}
	if c.BusinessService.Timeout <= 0 {
		return fmt.Errorf("%w: business_service.timeout must be positive", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("%w: cache.ttl_seconds must be positive when cache is enabled", ErrInvalidConfig)
	}
	if c.Engine.GridStepMinutes < domain.MinGridStepMinutes || c.Engine.GridStepMinutes > domain.MaxGridStepMinutes {
		return fmt.Errorf("%w: engine.grid_step_minutes must be in %d..%d, got %d",
			ErrInvalidConfig, domain.MinGridStepMinutes, domain.MaxGridStepMinutes, c.Engine.GridStepMinutes)
	}
	if c.Engine.MinLeadMinutes < 0 || c.Engine.MinLeadMinutes > domain.MaxMinLeadMinutes {
		return fmt.Errorf("%w: engine.min_lead_minutes must be in 0..%d, got %d",
			ErrInvalidConfig, domain.MaxMinLeadMinutes, c.Engine.MinLeadMinutes)
	}
	if c.Engine.MaxDatesDays <= 0 || c.Engine.MaxDatesDays > domain.MaxAvailableDatesDays {
		return fmt.Errorf("%w: engine.max_dates_days must be in 1..%d, got %d",
			ErrInvalidConfig, domain.MaxAvailableDatesDays, c.Engine.MaxDatesDays)
	}
	if c.Engine.Timezone != "" {
		if _, err := c.Engine.Location(); err != nil {
			return fmt.Errorf("%w: engine.timezone: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}
