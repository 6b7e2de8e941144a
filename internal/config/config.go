// Package config loads application configuration from .env files and the
// process environment.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DatabaseURL    string `mapstructure:"POSTGRES_URL"`
	DBDriver       string `mapstructure:"DB_DRIVER"`
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	Env            string `mapstructure:"APP_ENV"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	GinMode        string `mapstructure:"GIN_MODE"`
}

var keys = []string{
	"POSTGRES_URL",
	"DB_DRIVER",
	"PORT",
	"ALLOWED_ORIGINS",
	"APP_ENV",
	"LOG_LEVEL",
	"GIN_MODE",
}

// Load reads .env (if present) and then the environment. Environment
// variables already set win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	v := viper.New()
	v.AutomaticEnv()
	for _, k := range keys {
		// Unmarshal only sees AutomaticEnv values for bound keys.
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "debug")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown drivers. A missing POSTGRES_URL is not an error
// here: the server still starts and reports the failure per request.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
