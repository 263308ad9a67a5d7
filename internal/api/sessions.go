package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

// ListSessions returns sessions most recent first. subjectId and days
// narrow the result.
func (h *Handler) ListSessions(c *gin.Context) {
	var q struct {
		SubjectID string `form:"subjectId"`
		Days      int    `form:"days" binding:"gte=0"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c)
		return
	}

	var list []storage.StudySession
	if err := h.do(c, func(context.Context) error {
		ledger := h.svc.Ledger()
		if q.SubjectID != "" {
			list = ledger.SessionsForSubject(q.SubjectID)
		} else {
			list = ledger.All()
		}
		if q.Days > 0 {
			list = engine.LastDays(h.svc.Clock().Now(), q.Days).Filter(list)
		}
		return nil
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.RecentSessions(list, len(list)))
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	var sess *storage.StudySession
	err := h.do(c, func(ctx context.Context) error {
		var err error
		sess, err = h.svc.AddSession(ctx, engine.AddSessionInput{
			SubjectID: req.SubjectID,
			Start:     time.UnixMilli(req.StartTime),
			End:       time.UnixMilli(req.EndTime),
		})
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}
