package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string `env:"HTTP_PORT"        envDefault:"8080"`
	DBHost          string `env:"DB_HOST"          envDefault:"localhost"`
	DBPort          string `env:"DB_PORT"          envDefault:"5432"`
	DBUser          string `env:"DB_USER,required"`
	DBPassword      string `env:"DB_PASSWORD"`
	DBName          string `env:"DB_NAME,required"`
	DBSslMode       string `env:"DB_SSLMODE"       envDefault:"disable"`
	LogLevel        string `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT"       envDefault:"json"`
	LeaderboardCron string `env:"LEADERBOARD_CRON" envDefault:"0 * * * * *"`
}

// LoadConfig reads the environment, optionally seeded from envFile. A missing
// file is not an error; values already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
