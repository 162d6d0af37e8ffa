package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del cliente.
type Config struct {
	APIBaseURL       string        `env:"API_BASE_URL"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	RequestRateLimit float64       `env:"REQUEST_RATE_LIMIT" envDefault:"0"`
	RequestRateBurst int           `env:"REQUEST_RATE_BURST" envDefault:"1"`
	TokenStore       string        `env:"TOKEN_STORE" envDefault:"file"`
	TokenFile        string        `env:"TOKEN_FILE" envDefault:".localitybay/token"`
	TokenPassphrase  string        `env:"TOKEN_PASSPHRASE"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig carga la configuración desde variables de entorno.
// La URL base se lee una sola vez; vacía significa rutas relativas.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
