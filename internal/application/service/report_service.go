package service

import (
	"context"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/money"
)

// ReportService builds the daily closing report.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// MethodBreakdown is one payment-method line of the daily report.
type MethodBreakdown struct {
	Label      string       `json:"label"`
	OrderCount int          `json:"order_count"`
	Total      money.Amount `json:"total"`
}

// CourierBreakdown is one courier line of the daily report.
type CourierBreakdown struct {
	Courier    string       `json:"courier"`
	OrderCount int          `json:"order_count"`
	FeeTotal   money.Amount `json:"fee_total"`
}

// DailyReport is the closing summary for one calendar day.
type DailyReport struct {
	Date         string             `json:"date"`
	OrderCount   int                `json:"order_count"`
	ProductTotal money.Amount       `json:"product_total"`
	FeeTotal     money.Amount       `json:"fee_total"`
	GrandTotal   money.Amount       `json:"grand_total"`
	ByMethod     []MethodBreakdown  `json:"by_method"`
	ByCourier    []CourierBreakdown `json:"by_courier"`
}

// GetDailyReport aggregates one day's orders into the closing report.
func (s *ReportService) GetDailyReport(ctx context.Context, date time.Time) (*DailyReport, error) {
	totals, err := s.reportRepo.GetDailyTotals(ctx, date)
	if err != nil {
		return nil, err
	}

	methodTotals, err := s.reportRepo.GetMethodTotals(ctx, date)
	if err != nil {
		return nil, err
	}

	courierTotals, err := s.reportRepo.GetCourierTotals(ctx, date)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:         date.Format("2006-01-02"),
		OrderCount:   totals.OrderCount,
		ProductTotal: totals.ProductTotal,
		FeeTotal:     totals.FeeTotal,
		GrandTotal:   totals.GrandTotal,
		ByMethod:     make([]MethodBreakdown, 0, len(methodTotals)),
		ByCourier:    make([]CourierBreakdown, 0, len(courierTotals)),
	}

	for _, mt := range methodTotals {
		report.ByMethod = append(report.ByMethod, MethodBreakdown{
			Label:      mt.PaymentSummary,
			OrderCount: mt.OrderCount,
			Total:      mt.Total,
		})
	}

	for _, ct := range courierTotals {
		report.ByCourier = append(report.ByCourier, CourierBreakdown{
			Courier:    ct.Courier,
			OrderCount: ct.OrderCount,
			FeeTotal:   ct.FeeTotal,
		})
	}

	return report, nil
}
