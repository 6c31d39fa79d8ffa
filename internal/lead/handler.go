package lead

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Freaksthegeeks/GymBook/internal/api"
	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) scope(c *gin.Context) (tenant.Scope, bool) {
	scope, ok := auth.GetScope(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "no active gym selected", Code: "no_active_gym"})
	}
	return scope, ok
}

// @Summary      Add lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body lead.LeadRequest true "Lead payload"
// @Success      201 {object} lead.Lead
// @Failure      400 {object} api.ErrorResponse
// @Router       /leads [post]
func (h *Handler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	l, err := h.repo.Create(c.Request.Context(), scope, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create lead"})
		return
	}

	c.JSON(http.StatusCreated, l)
}

// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} lead.Lead
// @Router       /leads [get]
func (h *Handler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	leads, err := h.repo.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load leads"})
		return
	}

	c.JSON(http.StatusOK, leads)
}

// @Summary      Get lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        leadID path int true "Lead ID"
// @Success      200 {object} lead.Lead
// @Failure      404 {object} api.ErrorResponse
// @Router       /leads/{leadID} [get]
func (h *Handler) GetByID(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("leadID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid lead id"})
		return
	}

	l, err := h.repo.GetByID(c.Request.Context(), scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load lead"})
		return
	}

	c.JSON(http.StatusOK, l)
}

// @Summary      Update lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        leadID path int true "Lead ID"
// @Param        request body lead.LeadRequest true "Lead payload"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /leads/{leadID} [put]
func (h *Handler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("leadID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid lead id"})
		return
	}

	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.repo.Update(c.Request.Context(), scope, id, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update lead"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "lead updated successfully"})
}

// @Summary      Delete lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        leadID path int true "Lead ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /leads/{leadID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("leadID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid lead id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), scope, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete lead"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "lead deleted successfully"})
}
