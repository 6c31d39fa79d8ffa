package report

import "time"

type DashboardStats struct {
	TotalClients       int     `db:"total_clients" json:"total_clients"`
	ActiveClients      int     `db:"active_clients" json:"active_clients"`
	ExpiringClients    int     `db:"expiring_clients" json:"expiring_clients"`
	ExpiredClients     int     `db:"expired_clients" json:"expired_clients"`
	BirthdaysToday     int     `db:"birthdays_today" json:"birthdays_today"`
	OutstandingBalance float64 `db:"outstanding_balance" json:"outstanding_balance"`
	OpenLeads          int     `db:"open_leads" json:"open_leads"`
	MonthRevenue       float64 `db:"month_revenue" json:"month_revenue"`
}

type RevenueByBucket struct {
	Bucket   time.Time `db:"bucket" json:"bucket"`
	Revenue  float64   `db:"revenue" json:"revenue"`
	Payments int       `db:"payments" json:"payments"`
}

type RevenueByPlan struct {
	PlanID   int     `db:"plan_id" json:"plan_id"`
	PlanName string  `db:"plan_name" json:"plan_name"`
	Revenue  float64 `db:"revenue" json:"revenue"`
	Payments int     `db:"payments" json:"payments"`
}
