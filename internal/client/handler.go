package client

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

func (h *Handler) clientID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("clientID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid client id"})
		return 0, false
	}
	return id, true
}

// @Summary      Enroll client
// @Description  Creates a member on a plan; the end date and opening balance come from the plan.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body client.CreateClientRequest true "Client payload"
// @Success      201 {object} client.Client
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /clients [post]
func (h *Handler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	cl, err := h.service.Create(c.Request.Context(), scope, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "plan not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create client"})
		}
		return
	}

	c.JSON(http.StatusCreated, cl)
}

// @Summary      List clients
// @Description  Lists members with plan details; pass ?status=active|expiring|expired to filter.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Membership status filter"
// @Success      200 {array} client.ClientWithPlan
// @Failure      403 {object} api.ErrorResponse
// @Router       /clients [get]
func (h *Handler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	var (
		clients []ClientWithPlan
		err     error
	)
	if status := c.Query("status"); status != "" {
		clients, err = h.service.FilterByStatus(c.Request.Context(), scope, status)
	} else {
		clients, err = h.service.List(c.Request.Context(), scope)
	}
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "status must be one of active, expiring, expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientID path int true "Client ID"
// @Success      200 {object} client.ClientWithPlan
// @Failure      404 {object} api.ErrorResponse
// @Router       /clients/{clientID} [get]
func (h *Handler) GetByID(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, ok := h.clientID(c)
	if !ok {
		return
	}

	cl, err := h.service.GetByID(c.Request.Context(), scope, id)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load client"})
		return
	}

	c.JSON(http.StatusOK, cl)
}

// @Summary      Update client profile
// @Description  Profile fields only; membership dates and balances are untouched.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientID path int true "Client ID"
// @Param        request body client.UpdateProfileRequest true "Profile payload"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clients/{clientID} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, ok := h.clientID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), scope, id, req); err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "client not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update client"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "client updated successfully"})
}

// @Summary      Renew membership
// @Description  Starts a new billing cycle on the given plan; the previous cycle's payments no longer count toward the balance.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientID path int true "Client ID"
// @Param        request body client.RenewRequest true "Renewal payload"
// @Success      200 {object} client.RenewResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clients/{clientID}/renew [post]
func (h *Handler) Renew(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, ok := h.clientID(c)
	if !ok {
		return
	}

	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Renew(c.Request.Context(), scope, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "client not found"})
		case errors.Is(err, ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "plan not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to renew membership"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Delete client
// @Description  Removes the member and their payment history.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientID path int true "Client ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clients/{clientID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, ok := h.clientID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "client deleted successfully"})
}

// @Summary      Birthdays today
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} client.ClientWithPlan
// @Failure      403 {object} api.ErrorResponse
// @Router       /clients/birthdays [get]
func (h *Handler) Birthdays(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	clients, err := h.service.BirthdaysToday(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load birthdays"})
		return
	}

	c.JSON(http.StatusOK, clients)
}
