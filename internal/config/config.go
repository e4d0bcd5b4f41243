package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	StartingSymbol string  `yaml:"starting-symbol" env:"TICTACTOE_STARTING_SYMBOL" env-default:"X"`
	History        History `yaml:"history"`
	Redis          Redis   `yaml:"redis"`
}

type History struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_HISTORY_ENABLED" env-default:"false"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_HISTORY_TTL" env-default:"168h"`
	Limit   int           `yaml:"limit" env:"TICTACTOE_HISTORY_LIMIT" env-default:"100"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations from the config file, or from the environment if there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to access config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
