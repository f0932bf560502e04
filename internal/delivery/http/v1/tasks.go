package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasklist/internal/models"
)

type taskResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func newTaskResponse(task models.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
}

type snapshotResponse struct {
	Tasks     []taskResponse `json:"tasks"`
	DraftText string         `json:"draft_text"`
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Active    int            `json:"active"`
}

func newSnapshotResponse(s models.Snapshot) snapshotResponse {
	tasks := make([]taskResponse, len(s.Tasks))
	for i, task := range s.Tasks {
		tasks[i] = newTaskResponse(task)
	}
	return snapshotResponse{
		Tasks:     tasks,
		DraftText: s.DraftText,
		Total:     s.Total,
		Completed: s.Completed,
		Active:    s.Active,
	}
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	c.JSON(http.StatusOK, newSnapshotResponse(h.taskList(c).Snapshot()))
}

type textRequest struct {
	Text string `json:"text"`
}

// HandleCreateTask answers 201 with the new task, or 200 with the
// unchanged list when the text is blank.
func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req textRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	list := h.taskList(c)
	task, ok := list.AddTask(req.Text)
	if !ok {
		c.JSON(http.StatusOK, newSnapshotResponse(list.Snapshot()))
		return
	}
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	id, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	list := h.taskList(c)
	list.ToggleTask(id)
	c.JSON(http.StatusOK, newSnapshotResponse(list.Snapshot()))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	h.taskList(c).DeleteTask(id)
	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleClearCompleted(c *gin.Context) {
	list := h.taskList(c)
	list.ClearCompleted()
	c.JSON(http.StatusOK, newSnapshotResponse(list.Snapshot()))
}

func (h *handlerImpl) HandleSetDraft(c *gin.Context) {
	var req textRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	list := h.taskList(c)
	list.SetDraft(req.Text)
	c.JSON(http.StatusOK, newSnapshotResponse(list.Snapshot()))
}
