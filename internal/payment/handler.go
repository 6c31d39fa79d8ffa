package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Freaksthegeeks/GymBook/internal/api"
	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) scope(c *gin.Context) (tenant.Scope, bool) {
	scope, ok := auth.GetScope(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "no active gym selected", Code: "no_active_gym"})
	}
	return scope, ok
}

func (h *Handler) paymentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("paymentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid payment id"})
		return 0, false
	}
	return id, true
}

// @Summary      Record payment
// @Description  Records a payment and returns the client's recomputed totals. A negative balance is flagged as an overpayment, not rejected.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.RecordPaymentRequest true "Payment payload"
// @Success      201 {object} payment.RecordPaymentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) Record(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Record(c.Request.Context(), scope, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrInvalidClient):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "client not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary      List payments
// @Description  All payments for the active gym, or one client's history with ?client_id=.
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        client_id query int false "Client ID"
// @Success      200 {array} payment.PaymentWithClient
// @Failure      403 {object} api.ErrorResponse
// @Router       /payments [get]
func (h *Handler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid client id"})
			return
		}
		payments, err := h.service.ListForClient(c.Request.Context(), scope, clientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	payments, err := h.service.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary      Update payment
// @Description  Corrects a ledger entry and returns the recomputed totals.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        paymentID path int true "Payment ID"
// @Param        request body payment.UpdatePaymentRequest true "Payment payload"
// @Success      200 {object} payment.LedgerResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{paymentID} [put]
func (h *Handler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, ok := h.paymentID(c)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Update(c.Request.Context(), scope, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "payment not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update payment"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Delete payment
// @Description  Removes a ledger entry and returns the recomputed totals.
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        paymentID path int true "Payment ID"
// @Success      200 {object} payment.LedgerResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{paymentID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, ok := h.paymentID(c)
	if !ok {
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), scope, id)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
