package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-default:"local"`
	HTTP    HTTPConfig
	Session SessionConfig
	TUI     TUIConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"localhost"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type SessionConfig struct {
	CookieName    string        `env:"SESSION_COOKIE_NAME" env-default:"tasklist_session"`
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" env-default:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

type TUIConfig struct {
	// LogFile receives the terminal frontend's logs.
	// Logs are discarded when it is empty.
	LogFile string `env:"TUI_LOG_FILE"`
}
