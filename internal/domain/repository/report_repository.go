package repository

import (
	"context"
	"time"

	"github.com/totalpharma/pdv-api/pkg/money"
)

// MethodTotalResult aggregates revenue for one payment summary label.
// Split orders are counted under their combined label ("Pix + Cartao"),
// matching how the attendant reconciles the till.
type MethodTotalResult struct {
	PaymentSummary string
	OrderCount     int
	Total          money.Amount
}

// CourierTotalResult aggregates deliveries per courier for one day.
type CourierTotalResult struct {
	Courier    string
	OrderCount int
	FeeTotal   money.Amount
}

// DailyTotalsResult holds the headline numbers for one calendar day.
type DailyTotalsResult struct {
	OrderCount   int
	ProductTotal money.Amount
	FeeTotal     money.Amount
	GrandTotal   money.Amount
}

// ReportRepository defines the interface for aggregation queries used by
// the daily report.
type ReportRepository interface {
	// GetDailyTotals returns the headline totals for one calendar day.
	GetDailyTotals(ctx context.Context, date time.Time) (*DailyTotalsResult, error)

	// GetMethodTotals returns the payment-method breakdown for one day.
	GetMethodTotals(ctx context.Context, date time.Time) ([]MethodTotalResult, error)

	// GetCourierTotals returns per-courier delivery counts for one day.
	GetCourierTotals(ctx context.Context, date time.Time) ([]CourierTotalResult, error)
}
