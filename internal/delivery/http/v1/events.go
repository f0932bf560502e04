package v1

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasklist/internal/models"
	"github.com/adanyl0v/go-tasklist/internal/services"
)

const snapshotEvent = "snapshot"

// HandleEvents streams the session's list as server-sent events:
// once on connect and again after every change. The session stays
// alive while the stream is open, and the stream ends on Shutdown.
func (h *handlerImpl) HandleEvents(c *gin.Context) {
	list, detach := h.sessions.Attach(c.GetString(sessionIDCtxKey))
	defer detach()

	// Only the newest snapshot matters to a slow reader.
	updates := make(chan models.Snapshot, 1)
	unsubscribe := list.Subscribe(func(e services.Event) {
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- e.Snapshot:
		default:
		}
	})
	defer unsubscribe()

	h.logger.Debug().
		Str("session_id", c.GetString(sessionIDCtxKey)).
		Msg("opened event stream")

	c.Header("Cache-Control", "no-cache")
	c.SSEvent(snapshotEvent, newSnapshotResponse(list.Snapshot()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-h.done:
			return false
		case s := <-updates:
			c.SSEvent(snapshotEvent, newSnapshotResponse(s))
			return true
		}
	})

	h.logger.Debug().
		Str("session_id", c.GetString(sessionIDCtxKey)).
		Msg("closed event stream")
}
