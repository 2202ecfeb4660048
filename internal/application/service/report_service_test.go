package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/entity"
	infra "github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/pkg/money"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, receiptNo string, date time.Time, courier, summary string, product, fee money.Amount) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Order{
		ReceiptNo:      receiptNo,
		OrderDate:      date,
		CustomerPhone:  "11987654321",
		CustomerName:   "Maria Souza",
		Courier:        courier,
		ProductValue:   product,
		DeliveryFee:    fee,
		Total:          product + fee,
		PaymentSummary: summary,
	}).Error)
}

func TestGetDailyReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(infra.NewReportRepository(db))

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "20240105-0001", day, "Joao", "Dinheiro", 5000, 500)
	seedOrder(t, db, "20240105-0002", day, "Joao", "Pix", 3000, 500)
	seedOrder(t, db, "20240105-0003", day, "Pedro", "Dinheiro", 2000, 700)
	seedOrder(t, db, "20240106-0001", otherDay, "Joao", "Pix", 9000, 500)

	report, err := svc.GetDailyReport(context.Background(), day.Add(14*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", report.Date)
	assert.Equal(t, 3, report.OrderCount)
	assert.Equal(t, money.Amount(10000), report.ProductTotal)
	assert.Equal(t, money.Amount(1700), report.FeeTotal)
	assert.Equal(t, money.Amount(11700), report.GrandTotal)

	// Methods ordered by total descending
	require.Len(t, report.ByMethod, 2)
	assert.Equal(t, "Dinheiro", report.ByMethod[0].Label)
	assert.Equal(t, 2, report.ByMethod[0].OrderCount)
	assert.Equal(t, money.Amount(8200), report.ByMethod[0].Total)
	assert.Equal(t, "Pix", report.ByMethod[1].Label)
	assert.Equal(t, money.Amount(3500), report.ByMethod[1].Total)

	// Couriers ordered by order count descending
	require.Len(t, report.ByCourier, 2)
	assert.Equal(t, "Joao", report.ByCourier[0].Courier)
	assert.Equal(t, 2, report.ByCourier[0].OrderCount)
	assert.Equal(t, money.Amount(1000), report.ByCourier[0].FeeTotal)
	assert.Equal(t, "Pedro", report.ByCourier[1].Courier)
}

func TestGetDailyReportEmptyDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(infra.NewReportRepository(db))

	report, err := svc.GetDailyReport(context.Background(), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0, report.OrderCount)
	assert.Equal(t, money.Amount(0), report.GrandTotal)
	assert.Empty(t, report.ByMethod)
	assert.Empty(t, report.ByCourier)
}
