package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/middleware"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/service"

	"github.com/gin-gonic/gin"
)

// ApiCreateRequest создание заявки на кровь от имени владельца токена
// @Summary Создание заявки на кровь
// @Tags receiver
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ds.BloodRequest true "Данные заявки"
// @Success 200 {object} ds.BloodRequest
// @Failure 400 {object} object{status=string,description=string}
// @Failure 401 {object} object{status=string,description=string}
// @Failure 404 {object} object{status=string,description=string}
// @Failure 500 {object} object{status=string,description=string}
// @Router /api/receiver/requests [post]
func (h *Handler) ApiCreateRequest(ctx *gin.Context) {
	var req ds.BloodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	token, _ := middleware.GetBearer(ctx)

	created, err := h.Receiver.CreateRequest(ctx.Request.Context(), req, token)
	if err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, created)
}

// ApiGetMyRequests заявки пользователя по email
// @Summary Заявки пользователя
// @Tags receiver
// @Produce json
// @Param email path string true "Email заявителя"
// @Success 200 {array} ds.BloodRequest
// @Failure 500 {object} object{status=string,description=string}
// @Router /api/receiver/requests/{email} [get]
func (h *Handler) ApiGetMyRequests(ctx *gin.Context) {
	list, err := h.Receiver.GetRequestsByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// ApiListRequests список заявок с фильтрами
// @Summary Список заявок с фильтрами
// @Tags receiver
// @Produce json
// @Param status query string false "Статус заявки"
// @Param amountStatus query string false "Статус оплаты"
// @Param donorId query int false "ID донора"
// @Success 200 {array} ds.BloodRequest
// @Failure 400 {object} object{status=string,description=string}
// @Failure 500 {object} object{status=string,description=string}
// @Router /api/receiver/requests [get]
func (h *Handler) ApiListRequests(ctx *gin.Context) {
	q := service.RequestQuery{
		Status:       ctx.Query("status"),
		AmountStatus: ctx.Query("amountStatus"),
	}
	if donor := ctx.Query("donorId"); donor != "" {
		id, err := strconv.ParseUint(donor, 10, 64)
		if err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		donorID := uint(id)
		q.DonorID = &donorID
	}

	list, err := h.Receiver.ListRequests(ctx.Request.Context(), q)
	if err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// ApiUpdateRequest обновление заявки, сумма пересчитывается по срочности
// @Summary Обновление заявки
// @Tags receiver
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body service.RequestUpdate true "Новые данные заявки"
// @Success 200 {object} ds.BloodRequest
// @Failure 400 {object} object{status=string,description=string}
// @Failure 404 {object} object{status=string,description=string}
// @Failure 500 {object} object{status=string,description=string}
// @Router /api/receiver/requests/{id} [put]
func (h *Handler) ApiUpdateRequest(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	var body service.RequestUpdate
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Receiver.UpdateRequest(ctx.Request.Context(), uint(id), body)
	if err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// ApiDeleteRequest удаление заявки
// @Summary Удаление заявки
// @Tags receiver
// @Param id path int true "ID заявки"
// @Success 200
// @Failure 400 {object} object{status=string,description=string}
// @Failure 500 {object} object{status=string,description=string}
// @Router /api/receiver/requests/{id} [delete]
func (h *Handler) ApiDeleteRequest(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if err := h.Receiver.DeleteRequest(ctx.Request.Context(), uint(id)); err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}

// ApiFindDonors email доноров с указанной группой крови
// @Summary Поиск доноров по группе крови
// @Tags receiver
// @Produce json
// @Param bloodGroup query string true "Группа крови"
// @Success 200 {array} string
// @Failure 400 {object} object{status=string,description=string}
// @Failure 500 {object} object{status=string,description=string}
// @Router /api/receiver/donors [get]
func (h *Handler) ApiFindDonors(ctx *gin.Context) {
	bloodGroup, ok := ctx.GetQuery("bloodGroup")
	if !ok {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("bloodGroup is required"))
		return
	}
	emails, err := h.Receiver.GetDonorsByBloodGroup(ctx.Request.Context(), bloodGroup)
	if err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emails)
}

// ApiLogout отзыв токена
// @Summary Выход пользователя
// @Tags receiver
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{status=string,description=string}
// @Router /api/receiver/logout [post]
func (h *Handler) ApiLogout(ctx *gin.Context) {
	token, _ := middleware.GetBearer(ctx)
	if err := h.Receiver.RevokeToken(ctx.Request.Context(), token); err != nil {
		h.serviceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
