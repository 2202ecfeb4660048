package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/enum"
	infra "github.com/totalpharma/pdv-api/internal/infrastructure/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/money"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// newTestDB opens a uniquely named in-memory database so parallel tests
// never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.AddressHistoryEntry{},
		&entity.Order{},
		&entity.Reminder{},
		&entity.PharmacySettings{},
	))

	return db
}

func newCheckoutService(db *gorm.DB, now time.Time) *CheckoutService {
	svc := NewCheckoutService(
		infra.NewCheckoutRepository(db),
		infra.NewCustomerRepository(db),
		infra.NewSettingsRepository(db),
	)
	svc.now = func() time.Time { return now }
	return svc
}

func cashSaleInput() *CheckoutInput {
	return &CheckoutInput{
		Phone:        "98765-4321",
		Name:         " Maria Souza ",
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
		Courier:      "Joao",
		ProductValue: "50,00",
		DeliveryFee:  "5",
		Payment: PaymentInput{
			Method:       enum.PaymentCash,
			CashTendered: "60",
		},
		Medication:   "Losartana 50mg",
		DurationDays: 30,
	}
}

func TestFinalizeCashSaleWithReminder(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := newCheckoutService(db, now)

	result, err := svc.Finalize(context.Background(), cashSaleInput())
	require.NoError(t, err)

	order := result.Order
	assert.Equal(t, money.Amount(5000), order.ProductValue)
	assert.Equal(t, money.Amount(500), order.DeliveryFee)
	assert.Equal(t, money.Amount(5500), order.Total)
	assert.Equal(t, "Dinheiro", order.PaymentSummary)
	require.NotNil(t, order.CashTendered)
	assert.Equal(t, money.Amount(6000), *order.CashTendered)
	require.NotNil(t, order.CashChange)
	assert.Equal(t, money.Amount(500), *order.CashChange)
	assert.NotEmpty(t, order.ReceiptNo)

	// Local number gets the default area code, name is trimmed
	assert.Equal(t, "11987654321", result.Customer.Phone)
	assert.Equal(t, "Maria Souza", result.Customer.Name)

	// 30-day supply minus the default 3-day lead
	require.NotNil(t, result.Reminder)
	assert.Equal(t, time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC), result.Reminder.DueDate)
	assert.Equal(t, 30, result.Reminder.DurationDays)
	assert.Equal(t, enum.ReminderPending, result.Reminder.Status)
	require.NotNil(t, result.Reminder.OrderID)
	assert.Equal(t, order.ID, *result.Reminder.OrderID)

	var orderCount, entryCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	db.Model(&entity.AddressHistoryEntry{}).Count(&entryCount)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(1), entryCount)
}

func TestFinalizeWithoutDurationSkipsReminder(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	input := cashSaleInput()
	input.Medication = ""
	input.DurationDays = 0

	result, err := svc.Finalize(context.Background(), input)
	require.NoError(t, err)
	assert.Nil(t, result.Reminder)

	var reminderCount int64
	db.Model(&entity.Reminder{}).Count(&reminderCount)
	assert.Equal(t, int64(0), reminderCount)
}

func TestFinalizeUsesConfiguredLeadDays(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.PharmacySettings{
		StoreName:        "Farmacia Central",
		DefaultAreaCode:  "21",
		ReminderLeadDays: 5,
	}).Error)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	result, err := svc.Finalize(context.Background(), cashSaleInput())
	require.NoError(t, err)

	require.NotNil(t, result.Reminder)
	assert.Equal(t, time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC), result.Reminder.DueDate)
	// Area code now comes from settings
	assert.Equal(t, "21987654321", result.Customer.Phone)
}

func TestFinalizeZeroTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Now())

	input := cashSaleInput()
	input.ProductValue = ""
	input.DeliveryFee = ""

	_, err := svc.Finalize(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrZeroTotal)
}

func TestFinalizeMissingCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Now())

	input := cashSaleInput()
	input.Name = "   "

	_, err := svc.Finalize(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrMissingCustomer)
}

func TestFinalizeNegativeDuration(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Now())

	input := cashSaleInput()
	input.DurationDays = -1

	_, err := svc.Finalize(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrInvalidDuration)
}

func TestFinalizeCashShortClampsChange(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	// Total is 55.00 but only 50.00 was tendered: the sale still settles,
	// with zero change rather than a negative amount.
	input := cashSaleInput()
	input.Payment.CashTendered = "50"

	result, err := svc.Finalize(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, result.Order.CashTendered)
	assert.Equal(t, money.Amount(5000), *result.Order.CashTendered)
	require.NotNil(t, result.Order.CashChange)
	assert.Equal(t, money.Amount(0), *result.Order.CashChange)
}

func TestFinalizeNegativeAmounts(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Now())

	input := cashSaleInput()
	input.ProductValue = "-5,00"
	input.DeliveryFee = "10,00"

	_, err := svc.Finalize(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Nothing may be written when settlement fails
	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)
}

func TestFinalizeSplitWithoutCash(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	input := cashSaleInput()
	input.DeliveryFee = "5,50"
	input.Payment = PaymentInput{
		Method:       enum.PaymentPix,
		Split:        true,
		SecondMethod: enum.PaymentCard,
		FirstAmount:  "30,00",
	}

	result, err := svc.Finalize(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Pix + Cartao", result.Order.PaymentSummary)
	assert.Equal(t, "Pix: R$ 30.00 / Cartao: R$ 25.50", result.Order.PaymentDetail)
	assert.Nil(t, result.Order.CashTendered)
	assert.Nil(t, result.Order.CashChange)
}

func TestFinalizeCardInstallments(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	input := cashSaleInput()
	input.Payment = PaymentInput{
		Method:       enum.PaymentCard,
		Installments: 3,
	}

	result, err := svc.Finalize(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Cartao 3x", result.Order.PaymentSummary)

	input.Payment.Installments = 13
	_, err = svc.Finalize(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestQuoteShortTenderYieldsZeroChange(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	input := cashSaleInput()
	input.ProductValue = "35,00"
	input.DeliveryFee = "5,00"
	input.Payment.CashTendered = "30,00"

	quote, err := svc.Quote(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(4000), quote.Total)
	require.NotNil(t, quote.CashChange)
	assert.Equal(t, money.Amount(0), *quote.CashChange)
}

func TestQuoteSplitSuggestsSecondLeg(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	input := cashSaleInput()
	input.Payment = PaymentInput{
		Method:       enum.PaymentPix,
		Split:        true,
		SecondMethod: enum.PaymentCard,
		FirstAmount:  "30,00",
	}

	quote, err := svc.Quote(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, quote.SecondAmount)
	assert.Equal(t, money.Amount(2500), *quote.SecondAmount)
}

func TestFinalizeAddressHistoryDedupe(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.Finalize(ctx, cashSaleInput())
	require.NoError(t, err)

	// Same address again: no new history entry
	_, err = svc.Finalize(ctx, cashSaleInput())
	require.NoError(t, err)

	var entryCount int64
	db.Model(&entity.AddressHistoryEntry{}).Count(&entryCount)
	assert.Equal(t, int64(1), entryCount)

	// Changed street: one more entry, still one customer row
	moved := cashSaleInput()
	moved.Street = "Av. Brasil"
	_, err = svc.Finalize(ctx, moved)
	require.NoError(t, err)

	db.Model(&entity.AddressHistoryEntry{}).Count(&entryCount)
	assert.Equal(t, int64(2), entryCount)

	var customerCount int64
	db.Model(&entity.Customer{}).Count(&customerCount)
	assert.Equal(t, int64(1), customerCount)

	// The upsert keeps the latest address on the customer row
	var customer entity.Customer
	require.NoError(t, db.First(&customer, "phone = ?", "11987654321").Error)
	assert.Equal(t, "Av. Brasil", customer.Street)
}

func TestQuotePreviewsWithoutPersisting(t *testing.T) {
	db := newTestDB(t)
	svc := newCheckoutService(db, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	quote, err := svc.Quote(context.Background(), cashSaleInput())
	require.NoError(t, err)

	assert.Equal(t, money.Amount(5500), quote.Total)
	require.NotNil(t, quote.CashDue)
	assert.Equal(t, money.Amount(5500), *quote.CashDue)
	require.NotNil(t, quote.CashChange)
	assert.Equal(t, money.Amount(500), *quote.CashChange)
	require.NotNil(t, quote.ReminderDue)
	assert.Equal(t, time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC), *quote.ReminderDue)

	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)
}
