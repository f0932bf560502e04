package v1

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasklist/internal/services"
)

type Handler interface {
	HandleSessionMiddleware(c *gin.Context)
	HandleMetricsMiddleware(c *gin.Context)

	HandleIndex(c *gin.Context)
	HandleAddTaskForm(c *gin.Context)
	HandleToggleTaskForm(c *gin.Context)
	HandleDeleteTaskForm(c *gin.Context)
	HandleClearCompletedForm(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleClearCompleted(c *gin.Context)
	HandleSetDraft(c *gin.Context)
	HandleEvents(c *gin.Context)

	// Shutdown ends open event streams. It is safe to call more than once.
	Shutdown()
}

type handlerImpl struct {
	logger     zerolog.Logger
	sessions   services.SessionService
	cookieName string

	done     chan struct{}
	doneOnce sync.Once
}

func New(
	logger zerolog.Logger,
	sessionService services.SessionService,
	cookieName string,
) Handler {
	return &handlerImpl{
		logger:     logger,
		sessions:   sessionService,
		cookieName: cookieName,
		done:       make(chan struct{}),
	}
}

func (h *handlerImpl) Shutdown() {
	h.doneOnce.Do(func() {
		close(h.done)
	})
}
