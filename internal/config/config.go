package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения с секретами, перекрывают значения из файла
const (
	EnvDBPassword   = "DB_PASSWORD"
	EnvSMTPUser     = "SMTP_USER"
	EnvSMTPPassword = "SMTP_PASSWORD"
	EnvHTTPPort     = "HTTP_PORT"

	defaultEnvFile = ".env"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Reminders RemindersConfig `toml:"reminders"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к Postgres
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логгера
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig часовой пояс и часы работы заведения
type ScheduleConfig struct {
	Timezone            string       `toml:"timezone"`
	SlotDurationMinutes int          `toml:"slot_duration_minutes"`
	PerBarber           bool         `toml:"per_barber"` // Учитывать barber_schedules
	Hours               *HoursConfig `toml:"hours"`      // nil - часы по умолчанию
}

// HoursConfig интервалы "HH:MM-HH:MM" по категориям дней
// Пустой список - выходной
type HoursConfig struct {
	Weekday  []string `toml:"weekday"`
	Saturday []string `toml:"saturday"`
	Sunday   []string `toml:"sunday"`
}

// SMTPConfig параметры отправки писем
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	FromName string `toml:"from_name"`
}

// RemindersConfig ежедневная рассылка напоминаний
type RemindersConfig struct {
	Enabled bool   `toml:"enabled"`
	Spec    string `toml:"spec"`    // cron, по времени заведения
	Timeout int    `toml:"timeout"` // секунды на один прогон
}

// Load читает конфигурацию из TOML файла, секреты берутся из окружения и .env
func Load(path string) (*Config, error) {
	return LoadFiles(path, defaultEnvFile)
}

// LoadFiles читает конфигурацию из TOML файла и указанных .env файлов
// Отсутствующие .env файлы пропускаются, уже заданные переменные не перезаписываются
func LoadFiles(path string, envFiles ...string) (*Config, error) {
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrEnvFile, envFile, err)
		}
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location часовой пояс заведения
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Schedule.Timezone, err)
	}
	return loc, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvSMTPUser); ok {
		c.SMTP.Username = v
	}
	if v, ok := os.LookupEnv(EnvSMTPPassword); ok {
		c.SMTP.Password = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber_booking",
		},
		Schedule: ScheduleConfig{
			Timezone:            "UTC",
			SlotDurationMinutes: 30,
		},
		SMTP: SMTPConfig{
			Port:     587,
			FromName: "Barbería Citas",
		},
		Reminders: RemindersConfig{
			Spec:    "0 7 * * *",
			Timeout: 300,
		},
	}
}
