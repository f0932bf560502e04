package v1

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasklist/internal/view"
)

const (
	indexTemplate = "index.html"
	indexPath     = "/"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

func (h *handlerImpl) HandleIndex(c *gin.Context) {
	page := view.Project(h.taskList(c).Snapshot())
	c.HTML(http.StatusOK, indexTemplate, page)
}

type addTaskForm struct {
	Text string `form:"text"`
}

// HandleAddTaskForm adds the submitted text. A blank submission is kept
// as the draft, so the field shows what was typed.
func (h *handlerImpl) HandleAddTaskForm(c *gin.Context) {
	var req addTaskForm
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind form")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	list := h.taskList(c)
	_, ok := list.AddTask(req.Text)
	if !ok {
		list.SetDraft(req.Text)
	}
	c.Redirect(http.StatusSeeOther, indexPath)
}

func (h *handlerImpl) HandleToggleTaskForm(c *gin.Context) {
	id, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	h.taskList(c).ToggleTask(id)
	c.Redirect(http.StatusSeeOther, indexPath)
}

func (h *handlerImpl) HandleDeleteTaskForm(c *gin.Context) {
	id, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	h.taskList(c).DeleteTask(id)
	c.Redirect(http.StatusSeeOther, indexPath)
}

func (h *handlerImpl) HandleClearCompletedForm(c *gin.Context) {
	h.taskList(c).ClearCompleted()
	c.Redirect(http.StatusSeeOther, indexPath)
}
