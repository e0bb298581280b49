package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DatabaseConfig конфигурация БД
type DatabaseConfig struct {
	Driver   string // postgres или sqlite
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
	Path     string // файл для sqlite
}

// Load загружает конфигурацию из окружения (и .env, если он есть)
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Environment: env,
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Bot: BotConfig{
			Token: getEnv("BOT_TOKEN", ""),
			Debug: getEnvAsBool("BOT_DEBUG", env != "production"),
		},
		Database: loadDatabase(env),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase - только настройки БД, для утилиты setup
func LoadDatabase() DatabaseConfig {
	_ = godotenv.Load()
	return loadDatabase(getEnv("APP_ENV", "development"))
}

func loadDatabase(env string) DatabaseConfig {
	return DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", "postgres"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvAsInt("DB_PORT", 5432),
		Username: getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "schedule"),
		SSLMode:  getSSLMode(env),
		Path:     getEnv("DB_PATH", "schedule.db"),
	}
}

// validate проверяет обязательные параметры
func (c *Config) validate() error {
	var errors []string

	if c.Bot.Token == "" {
		errors = append(errors, "BOT_TOKEN is required")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Username == "" {
			errors = append(errors, "DB_USER is required")
		}
		if c.Database.Password == "" && c.IsProduction() {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	case "sqlite":
		if c.Database.Path == "" {
			errors = append(errors, "DB_PATH is required for sqlite")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q", c.Database.Driver))
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path + "?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Name, d.SSLMode,
	)
}

// getSSLMode возвращает режим SSL в зависимости от окружения
func getSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
