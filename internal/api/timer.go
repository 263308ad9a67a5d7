package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

// timerAction runs fn on the loop and answers with the resulting timer state.
func (h *Handler) timerAction(c *gin.Context, status int, fn func(ctx context.Context, t *engine.Timer) (*storage.StudySession, error)) {
	var resp TimerResponse
	err := h.do(c, func(ctx context.Context) error {
		t := h.svc.Timer()
		sess, err := fn(ctx, t)
		resp = TimerResponse{TimerSnapshot: t.Snapshot(), Session: sess}
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}

func (h *Handler) GetTimer(c *gin.Context) {
	h.timerAction(c, http.StatusOK, func(context.Context, *engine.Timer) (*storage.StudySession, error) {
		return nil, nil
	})
}

// StartTimer starts a session. Calling it while running pauses, matching the
// start/pause toggle of the board.
func (h *Handler) StartTimer(c *gin.Context) {
	h.timerAction(c, http.StatusOK, func(ctx context.Context, t *engine.Timer) (*storage.StudySession, error) {
		return nil, t.Start(context.WithoutCancel(ctx))
	})
}

func (h *Handler) PauseTimer(c *gin.Context) {
	h.timerAction(c, http.StatusOK, func(_ context.Context, t *engine.Timer) (*storage.StudySession, error) {
		t.Pause()
		return nil, nil
	})
}

func (h *Handler) StopTimer(c *gin.Context) {
	h.timerAction(c, http.StatusOK, func(ctx context.Context, t *engine.Timer) (*storage.StudySession, error) {
		return t.StopAndSave(ctx)
	})
}

func (h *Handler) SetTimerMode(c *gin.Context) {
	var req ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	h.timerAction(c, http.StatusOK, func(_ context.Context, t *engine.Timer) (*storage.StudySession, error) {
		m, err := engine.ParseMode(req.Mode)
		if err != nil {
			return nil, err
		}
		return nil, t.SetMode(m)
	})
}

func (h *Handler) SetTimerSubject(c *gin.Context) {
	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	h.timerAction(c, http.StatusOK, func(_ context.Context, t *engine.Timer) (*storage.StudySession, error) {
		return nil, t.SetActiveSubject(req.SubjectID)
	})
}
