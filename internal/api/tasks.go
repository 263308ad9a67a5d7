package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

// ListTasks returns tasks incomplete first, then by due date. The optional
// subjectId query narrows the list to one subject.
func (h *Handler) ListTasks(c *gin.Context) {
	subjectID := c.Query("subjectId")
	var list []storage.Task
	if err := h.do(c, func(context.Context) error {
		if subjectID != "" {
			list = h.svc.TasksForSubject(subjectID)
		} else {
			list = h.svc.Tasks()
		}
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.SortTasks(list))
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	var task *storage.Task
	err := h.do(c, func(ctx context.Context) error {
		var err error
		task, err = h.svc.AddTask(ctx, engine.AddTaskInput{
			Title:     req.Title,
			SubjectID: req.SubjectID,
			DueDate:   req.DueDate,
		})
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	var task *storage.Task
	err := h.do(c, func(ctx context.Context) error {
		var err error
		task, err = h.svc.UpdateTask(ctx, c.Param("id"), engine.UpdateTaskInput{
			Title:     req.Title,
			SubjectID: req.SubjectID,
			DueDate:   req.DueDate,
			Completed: req.Completed,
		})
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) ToggleTask(c *gin.Context) {
	var task *storage.Task
	err := h.do(c, func(ctx context.Context) error {
		var err error
		task, err = h.svc.ToggleTaskCompletion(ctx, c.Param("id"))
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.do(c, func(ctx context.Context) error {
		return h.svc.DeleteTask(ctx, c.Param("id"))
	}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
