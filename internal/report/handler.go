package report

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Freaksthegeeks/GymBook/internal/api"
	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

const dateFormat = "2006-01-02"

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

// @Summary      Dashboard stats
// @Description  Membership counts, outstanding balances, open leads and this month's revenue for the active gym.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} report.DashboardStats
// @Failure      403 {object} api.ErrorResponse
// @Router       /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	stats, err := h.repo.Dashboard(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary      Revenue by period
// @Description  Revenue bucketed by day, week, month or year. Defaults to the last 30 days, daily.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        period query string false "daily, weekly, monthly or yearly" default(daily)
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Success      200 {array} report.RevenueByBucket
// @Failure      400 {object} api.ErrorResponse
// @Router       /reports/revenue [get]
func (h *Handler) Revenue(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "daily")

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	buckets, err := h.repo.RevenueByPeriod(c.Request.Context(), scope, period, from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load revenue report"})
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// @Summary      Revenue by plan
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} report.RevenueByPlan
// @Failure      403 {object} api.ErrorResponse
// @Router       /reports/revenue/plans [get]
func (h *Handler) RevenueByPlan(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	rows, err := h.repo.RevenueByPlan(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load revenue report"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
