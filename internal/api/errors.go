package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studytime/pkg/apierrors"
)

func respondError(c *gin.Context, err error) {
	code, key := apierrors.FromError(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(code, apierrors.CreateError(code, key, GetLang(c)))
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, GetLang(c)))
}
