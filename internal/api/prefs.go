package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytime/internal/storage"
)

func (h *Handler) preferences() PreferencesResponse {
	p := h.svc.Preferences()
	return PreferencesResponse{Theme: p.Theme, Profile: p.Profile, SidebarCollapsed: p.SidebarCollapsed}
}

func (h *Handler) GetPreferences(c *gin.Context) {
	var resp PreferencesResponse
	if err := h.do(c, func(context.Context) error {
		resp = h.preferences()
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	var resp PreferencesResponse
	if err := h.do(c, func(ctx context.Context) error {
		if err := h.svc.SetTheme(ctx, storage.Theme(req.Theme)); err != nil {
			return err
		}
		resp = h.preferences()
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	var resp PreferencesResponse
	if err := h.do(c, func(ctx context.Context) error {
		if _, err := h.svc.UpdateProfile(ctx, storage.UserProfile{Name: req.Name, Title: req.Title}); err != nil {
			return err
		}
		resp = h.preferences()
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
