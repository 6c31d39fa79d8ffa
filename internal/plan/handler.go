package plan

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

// @Summary      Create plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body plan.PlanRequest true "Plan payload"
// @Success      201 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /plans [post]
func (h *Handler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), scope, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      List plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} plan.Plan
// @Failure      403 {object} api.ErrorResponse
// @Router       /plans [get]
func (h *Handler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	plans, err := h.service.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// @Summary      Get plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        planID path int true "Plan ID"
// @Success      200 {object} plan.Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /plans/{planID} [get]
func (h *Handler) GetByID(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid plan id"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), scope, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load plan"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Update plan
// @Description  Updates the template only; enrolled clients keep their computed end dates and balances.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        planID path int true "Plan ID"
// @Param        request body plan.PlanRequest true "Plan payload"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /plans/{planID} [put]
func (h *Handler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid plan id"})
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.Update(c.Request.Context(), scope, id, req); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "plan updated successfully"})
}

// @Summary      Delete plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        planID path int true "Plan ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /plans/{planID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid plan id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete plan"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "plan deleted successfully"})
}
