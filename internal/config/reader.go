package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrUnknownEnv         = errors.New("unknown env")
	ErrNonPositiveSetting = errors.New("setting must be positive")
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEnv, c.Env)
	}

	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: HTTP_SHUTDOWN_TIMEOUT", ErrNonPositiveSetting)
	}
	if c.Session.IdleTTL <= 0 {
		return fmt.Errorf("%w: SESSION_IDLE_TTL", ErrNonPositiveSetting)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("%w: SESSION_SWEEP_INTERVAL", ErrNonPositiveSetting)
	}
	return nil
}
