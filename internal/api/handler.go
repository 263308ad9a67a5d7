// Package api serves the study tracker over a local JSON API.
//
// Handlers never touch the Service directly: every read and write is run on
// the engine Loop so HTTP requests, timer ticks and completions are
// serialized.
package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studytime/internal/engine"
	"studytime/internal/insight"
	"studytime/pkg/apierrors"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type Handler struct {
	svc      *engine.Service
	loop     *engine.Loop
	insights *insight.Service
	db       *sql.DB
	version  string
}

func NewHandler(svc *engine.Service, loop *engine.Loop, insights *insight.Service, version string) *Handler {
	return &Handler{svc: svc, loop: loop, insights: insights, db: svc.DB(), version: version}
}

// do runs fn on the loop. A request cancelled while queued is dropped before
// fn runs. Once started, fn runs to completion and its writes ignore the
// request's cancellation.
func (h *Handler) do(c *gin.Context, fn func(ctx context.Context) error) error {
	ctx := c.Request.Context()
	return h.loop.Do(ctx, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(context.WithoutCancel(ctx))
	})
}

type HealthResponse struct {
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Language          string `json:"language"`
	Store             string `json:"store"`
}

func (h *Handler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	store := StatusOk
	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		store = StatusDown
	}
	c.JSON(statusCode, HealthResponse{
		AppVersion:        h.version,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          GetLang(c),
		Store:             store,
	})
}

func (h *Handler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *Handler) GetDashboard(c *gin.Context) {
	var d engine.Dashboard
	if err := h.do(c, func(context.Context) error {
		d = h.svc.Dashboard()
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) GetAchievements(c *gin.Context) {
	var list []engine.Achievement
	if err := h.do(c, func(context.Context) error {
		list = h.svc.Achievements()
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetInsights(c *gin.Context) {
	var in insight.Input
	if err := h.do(c, func(context.Context) error {
		in = insight.Input{
			Subjects: h.svc.Subjects(),
			Tasks:    h.svc.Tasks(),
			Sessions: h.svc.Sessions(),
			Now:      h.svc.Clock().Now(),
		}
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	// Off the loop: the model call may take seconds.
	text := h.insights.Insights(c.Request.Context(), in)
	c.JSON(http.StatusOK, InsightsResponse{Insights: apierrors.InsightText(text, GetLang(c))})
}
