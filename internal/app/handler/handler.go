package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/middleware"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Receiver *service.ReceiverService
	DB       Pinger
}

func NewHandler(receiver *service.ReceiverService, db Pinger) *Handler {
	return &Handler{
		Receiver: receiver,
		DB:       db,
	}
}

// RegisterHandler Функция, в которой мы отдельно регистрируем маршруты
func (h *Handler) RegisterHandler(router *gin.Engine) {
	router.GET("/health", h.Health)

	api := router.Group("/api/receiver")
	api.POST("/requests", middleware.RequireBearer(), h.ApiCreateRequest)
	api.GET("/requests", h.ApiListRequests)
	api.GET("/requests/:email", h.ApiGetMyRequests)
	api.PUT("/requests/:id", h.ApiUpdateRequest)
	api.DELETE("/requests/:id", h.ApiDeleteRequest)
	api.GET("/donors", h.ApiFindDonors)
	api.POST("/logout", middleware.RequireBearer(), h.ApiLogout)
}

// errorHandler для более удобного вывода ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"request_id": ctx.GetString(middleware.RequestIDKey),
		"status":     errorStatusCode,
	})
	if errorStatusCode >= http.StatusInternalServerError {
		entry.Error(err.Error())
	} else {
		entry.Warn(err.Error())
	}
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// serviceError maps workflow errors onto HTTP status codes.
func (h *Handler) serviceError(ctx *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		code = http.StatusUnauthorized
	case errors.Is(err, service.ErrReceiverNotFound), errors.Is(err, service.ErrRequestNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidAmountStatus):
		code = http.StatusBadRequest
	}
	h.errorHandler(ctx, code, err)
}
