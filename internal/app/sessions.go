package app

import (
	"context"

	"github.com/adanyl0v/go-tasklist/internal/config"
	"github.com/adanyl0v/go-tasklist/internal/services"
)

var (
	globalSessionStore *services.SessionStore
	stopSessionSweeper context.CancelFunc
)

func MustStartSessions() {
	cfg := config.Global().Session

	globalSessionStore = services.NewSessionStore(
		globalLogger,
		cfg.IdleTTL,
		services.WithObservers(
			services.NewLoggingObserver(globalLogger),
			services.NewMetricsObserver(),
		),
	)

	var ctx context.Context
	ctx, stopSessionSweeper = context.WithCancel(context.Background())
	go globalSessionStore.Run(ctx, cfg.SweepInterval)

	globalLogger.Info().
		Dur("idle_ttl", cfg.IdleTTL).
		Msg("started session store")
}

func StopSessions() {
	if stopSessionSweeper != nil {
		stopSessionSweeper()
	}
	globalLogger.Info().Msg("stopped session store")
}
