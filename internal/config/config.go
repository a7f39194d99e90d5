package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Mode          string        `yaml:"mode" env:"TICTACTOE_MODE" validate:"omitempty,oneof=human-vs-computer computer-vs-computer"`
	Players       Players       `yaml:"players"`
	Seed          uint64        `yaml:"seed" env:"TICTACTOE_SEED"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"TICTACTOE_COMPUTER_DELAY" env-default:"1s" validate:"gte=0"`
}

// Players preset the names; empty names are asked for at startup.
type Players struct {
	First  string `yaml:"first" env:"TICTACTOE_FIRST_PLAYER" validate:"max=32"`
	Second string `yaml:"second" env:"TICTACTOE_SECOND_PLAYER" validate:"max=32"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path when it exists and the environment otherwise, then validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
