package gym

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Freaksthegeeks/GymBook/internal/api"
	"github.com/Freaksthegeeks/GymBook/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Create a gym
// @Description  Creates a gym, makes the caller its owner and reissues tokens with the new gym active.
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.CreateGymRequest true "Gym payload"
// @Success      201 {object} gym.TokenGrant
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}
	username, _ := auth.GetUsername(c)

	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	grant, err := h.service.Create(c.Request.Context(), req, userID, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create gym"})
		return
	}

	c.JSON(http.StatusCreated, grant)
}

// @Summary      List my gyms
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	gyms, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Current gym
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gyms/current [get]
func (h *Handler) Current(c *gin.Context) {
	scope, ok := auth.GetScope(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "no active gym selected", Code: "no_active_gym"})
		return
	}

	gym, err := h.service.Current(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Current gym not found"})
		return
	}

	c.JSON(http.StatusOK, gym)
}

// @Summary      Switch active gym
// @Description  Verifies membership in the requested gym and reissues tokens bound to it.
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.SwitchGymRequest true "Target gym"
// @Success      200 {object} gym.TokenGrant
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms/switch [post]
func (h *Handler) Switch(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}
	username, _ := auth.GetUsername(c)

	var req SwitchGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	grant, err := h.service.Switch(c.Request.Context(), userID, username, req.GymID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrGymNotFound):
			// An unknown gym answers the same as a foreign one.
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You don't have access to this gym"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Gym switch failed"})
		}
		return
	}

	c.JSON(http.StatusOK, grant)
}
