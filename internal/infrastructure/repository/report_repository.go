package repository

import (
	"context"
	"time"

	domainRepo "github.com/totalpharma/pdv-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetDailyTotals(ctx context.Context, date time.Time) (*domainRepo.DailyTotalsResult, error) {
	start, end := dayRange(date)

	var result domainRepo.DailyTotalsResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(id) as order_count,
			COALESCE(SUM(product_value), 0) as product_total,
			COALESCE(SUM(delivery_fee), 0) as fee_total,
			COALESCE(SUM(total), 0) as grand_total
		FROM orders
		WHERE order_date >= ? AND order_date < ?
	`, start, end).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *reportRepository) GetMethodTotals(ctx context.Context, date time.Time) ([]domainRepo.MethodTotalResult, error) {
	start, end := dayRange(date)

	var results []domainRepo.MethodTotalResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_summary,
			COUNT(id) as order_count,
			COALESCE(SUM(total), 0) as total
		FROM orders
		WHERE order_date >= ? AND order_date < ?
		GROUP BY payment_summary
		ORDER BY total DESC
	`, start, end).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) GetCourierTotals(ctx context.Context, date time.Time) ([]domainRepo.CourierTotalResult, error) {
	start, end := dayRange(date)

	var results []domainRepo.CourierTotalResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			courier,
			COUNT(id) as order_count,
			COALESCE(SUM(delivery_fee), 0) as fee_total
		FROM orders
		WHERE order_date >= ? AND order_date < ? AND courier <> ''
		GROUP BY courier
		ORDER BY order_count DESC
	`, start, end).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
