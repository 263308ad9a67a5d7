package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

func (h *Handler) ListSubjects(c *gin.Context) {
	var list []storage.Subject
	if err := h.do(c, func(context.Context) error {
		list = h.svc.Subjects()
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	var subj *storage.Subject
	err := h.do(c, func(ctx context.Context) error {
		var err error
		subj, err = h.svc.AddSubject(ctx, engine.AddSubjectInput{
			Name:     req.Name,
			Color:    req.Color,
			Category: req.Category,
		})
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subj)
}

func (h *Handler) UpdateSubject(c *gin.Context) {
	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	var subj *storage.Subject
	err := h.do(c, func(ctx context.Context) error {
		var err error
		subj, err = h.svc.UpdateSubject(ctx, c.Param("id"), engine.UpdateSubjectInput{
			Name:     req.Name,
			Color:    req.Color,
			Category: req.Category,
		})
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subj)
}

func (h *Handler) DeleteSubject(c *gin.Context) {
	if err := h.do(c, func(ctx context.Context) error {
		return h.svc.DeleteSubject(ctx, c.Param("id"))
	}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
