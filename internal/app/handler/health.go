package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health проверка доступности сервиса и базы
// @Summary Проверка состояния
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,description=string}
// @Router /health [get]
func (h *Handler) Health(ctx *gin.Context) {
	if h.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Ping(pingCtx); err != nil {
			h.errorHandler(ctx, http.StatusServiceUnavailable, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
