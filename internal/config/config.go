package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	AIService AIServiceConfig `toml:"ai_service"`
	Payments  PaymentsConfig  `toml:"payments"`
	Messaging MessagingConfig `toml:"messaging"`
	Sessions  SessionsConfig  `toml:"sessions"`
	Reminders RemindersConfig `toml:"reminders"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// DSN возвращает строку подключения
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AIServiceConfig настройки клиента генеративной модели
type AIServiceConfig struct {
	URL        string `toml:"url"`
	APIKey     string `toml:"api_key"`
	TextModel  string `toml:"text_model"`
	ImageModel string `toml:"image_model"`
	Timeout    int    `toml:"timeout"` // секунды
}

// PaymentsConfig настройки мок-эквайринга
// Реальный платежный шлюз не подключен, задержка имитирует его латентность
type PaymentsConfig struct {
	AuthorizeDelayMS int `toml:"authorize_delay_ms"`
}

// MessagingConfig контракт доставки сообщений
// Доставка остается poll-based, интервал опроса - явная часть контракта
// и возвращается клиентам вместе с перепиской
type MessagingConfig struct {
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

// SessionsConfig время жизни сессий
type SessionsConfig struct {
	TTLHours int `toml:"ttl_hours"`
}

// RemindersConfig настройки SMS-напоминаний о записи
type RemindersConfig struct {
	Enabled          bool   `toml:"enabled"`
	CronSpec         string `toml:"cron_spec"`
	TwilioAccountSID string `toml:"twilio_account_sid"`
	TwilioAuthToken  string `toml:"twilio_auth_token"`
	FromNumber       string `toml:"from_number"`
	NotifyNumber     string `toml:"notify_number"` // номер для сводки о завтрашних записях
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Reminders.Enabled && c.Reminders.CronSpec == "" {
		return fmt.Errorf("config: reminders.cron_spec is required when reminders are enabled")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Messaging.PollIntervalSeconds <= 0 {
		c.Messaging.PollIntervalSeconds = 3
	}
	if c.Sessions.TTLHours <= 0 {
		c.Sessions.TTLHours = 24
	}
	if c.AIService.Timeout <= 0 {
		c.AIService.Timeout = 30
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}
