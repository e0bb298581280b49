package config

// Config основной конфиг
type Config struct {
	Environment string
	HTTPPort    string
	LogLevel    string
	Bot         BotConfig
	Database    DatabaseConfig
}

type BotConfig struct {
	Token string
	Debug bool
}

// IsProduction - для логгера и SSL
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
