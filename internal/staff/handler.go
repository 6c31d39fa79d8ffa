package staff

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

// @Summary      Add staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body staff.StaffRequest true "Staff payload"
// @Success      201 {object} staff.Staff
// @Failure      400 {object} api.ErrorResponse
// @Router       /staff [post]
func (h *Handler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	s, err := h.repo.Create(c.Request.Context(), scope, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, s)
}

// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} staff.Staff
// @Router       /staff [get]
func (h *Handler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	staff, err := h.repo.List(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// @Summary      Get staff member
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        staffID path int true "Staff ID"
// @Success      200 {object} staff.Staff
// @Failure      404 {object} api.ErrorResponse
// @Router       /staff/{staffID} [get]
func (h *Handler) GetByID(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("staffID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid staff id"})
		return
	}

	s, err := h.repo.GetByID(c.Request.Context(), scope, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load staff member"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// @Summary      Update staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        staffID path int true "Staff ID"
// @Param        request body staff.StaffRequest true "Staff payload"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /staff/{staffID} [put]
func (h *Handler) Update(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("staffID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid staff id"})
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.repo.Update(c.Request.Context(), scope, id, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update staff member"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "staff member updated successfully"})
}

// @Summary      Delete staff member
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        staffID path int true "Staff ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /staff/{staffID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("staffID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid staff id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), scope, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete staff member"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "staff member deleted successfully"})
}
