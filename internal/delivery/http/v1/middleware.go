package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adanyl0v/go-tasklist/internal/services"
)

const sessionIDCtxKey = "session_id"

// HandleSessionMiddleware makes sure every request carries a session id.
// The cookie has no Max-Age, so it ends with the browser session.
func (h *handlerImpl) HandleSessionMiddleware(c *gin.Context) {
	sessionID, err := c.Cookie(h.cookieName)
	if err != nil || uuid.Validate(sessionID) != nil {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookieName, sessionID, 0, "/", "", false, true)
		h.logger.Debug().
			Str("session_id", sessionID).
			Msg("started session")
	}

	c.Set(sessionIDCtxKey, sessionID)
	c.Next()
}

func (h *handlerImpl) taskList(c *gin.Context) services.TaskListController {
	return h.sessions.TaskList(c.GetString(sessionIDCtxKey))
}

func (h *handlerImpl) parseTaskID(c *gin.Context) (int64, bool) {
	param := c.Param("id")
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", param).
			Msg("failed to parse task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return id, true
}
