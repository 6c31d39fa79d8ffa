package report

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/tenant"
)

var ErrInvalidPeriod = errors.New("period must be one of daily, weekly, monthly, yearly")

// truncUnits whitelists the DATE_TRUNC argument; the period string from the
// query never reaches the SQL text directly.
var truncUnits = map[string]string{
	"daily":   "day",
	"weekly":  "week",
	"monthly": "month",
	"yearly":  "year",
}

type Repository interface {
	Dashboard(ctx context.Context, scope tenant.Scope) (*DashboardStats, error)
	RevenueByPeriod(ctx context.Context, scope tenant.Scope, period string, from, to time.Time) ([]RevenueByBucket, error)
	RevenueByPlan(ctx context.Context, scope tenant.Scope) ([]RevenueByPlan, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Dashboard(ctx context.Context, scope tenant.Scope) (*DashboardStats, error) {
	query := `
SELECT
  COUNT(*) AS total_clients,
  COUNT(*) FILTER (WHERE end_date >= CURRENT_DATE) AS active_clients,
  COUNT(*) FILTER (WHERE end_date BETWEEN CURRENT_DATE AND CURRENT_DATE + INTERVAL '10 days') AS expiring_clients,
  COUNT(*) FILTER (WHERE end_date < CURRENT_DATE AND end_date >= CURRENT_DATE - INTERVAL '30 days') AS expired_clients,
  COUNT(*) FILTER (WHERE date_of_birth IS NOT NULL
    AND EXTRACT(MONTH FROM date_of_birth) = EXTRACT(MONTH FROM CURRENT_DATE)
    AND EXTRACT(DAY FROM date_of_birth) = EXTRACT(DAY FROM CURRENT_DATE)) AS birthdays_today,
  COALESCE(SUM(balance_due) FILTER (WHERE balance_due > 0), 0) AS outstanding_balance
FROM clients
WHERE gym_id = $1;
`
	var stats DashboardStats
	if err := r.db.GetContext(ctx, &stats, query, scope.GymID()); err != nil {
		return nil, err
	}

	leads := `SELECT COUNT(*) FROM leads WHERE gym_id = $1 AND status IN ('new', 'contacted')`
	if err := r.db.GetContext(ctx, &stats.OpenLeads, leads, scope.GymID()); err != nil {
		return nil, err
	}

	revenue := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE gym_id = $1 AND payment_date >= DATE_TRUNC('month', CURRENT_DATE)`
	if err := r.db.GetContext(ctx, &stats.MonthRevenue, revenue, scope.GymID()); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) RevenueByPeriod(ctx context.Context, scope tenant.Scope, period string, from, to time.Time) ([]RevenueByBucket, error) {
	unit, ok := truncUnits[period]
	if !ok {
		return nil, ErrInvalidPeriod
	}

	query := `
SELECT
  DATE_TRUNC('` + unit + `', payment_date) AS bucket,
  COALESCE(SUM(amount), 0) AS revenue,
  COUNT(*) AS payments
FROM payments
WHERE gym_id = $1 AND payment_date BETWEEN $2 AND $3
GROUP BY bucket
ORDER BY bucket;
`
	buckets := []RevenueByBucket{}
	if err := r.db.SelectContext(ctx, &buckets, query, scope.GymID(), from, to); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *repository) RevenueByPlan(ctx context.Context, scope tenant.Scope) ([]RevenueByPlan, error) {
	query := `
SELECT
  p.id   AS plan_id,
  p.name AS plan_name,
  COALESCE(SUM(pm.amount), 0) AS revenue,
  COUNT(pm.id) AS payments
FROM plans p
LEFT JOIN clients c ON c.plan_id = p.id
LEFT JOIN payments pm ON pm.client_id = c.id
WHERE p.gym_id = $1
GROUP BY p.id, p.name
ORDER BY revenue DESC;
`
	rows := []RevenueByPlan{}
	if err := r.db.SelectContext(ctx, &rows, query, scope.GymID()); err != nil {
		return nil, err
	}
	return rows, nil
}
