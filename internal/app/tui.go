package app

import (
	"github.com/adanyl0v/go-tasklist/internal/delivery/tui"
	"github.com/adanyl0v/go-tasklist/internal/services"
)

func MustRunTUI() {
	list := services.NewTaskList(globalLogger)
	list.Subscribe(services.NewLoggingObserver(globalLogger))

	err := tui.Run(list)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to run terminal ui")
		panic(err)
	}
	globalLogger.Info().
		Int("total", list.Total()).
		Msg("terminal ui exited")
}
