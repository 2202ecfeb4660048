package service

import (
	"context"
	"strings"
	"time"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/enum"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/money"
	"github.com/totalpharma/pdv-api/pkg/phone"
	"github.com/totalpharma/pdv-api/pkg/utils"
)

// CheckoutService handles order settlement: totals, payment plans, change
// and the atomic finalize write.
type CheckoutService struct {
	checkoutRepo repository.CheckoutRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// PaymentInput describes how the attendant settled the order. Amounts are
// the raw strings typed at the counter; comma decimals are accepted.
type PaymentInput struct {
	Method enum.PaymentMethod `json:"method"`
	// Installments only applies when Method is card.
	Installments int `json:"installments"`
	// Split settlement: FirstAmount goes to Method, the remainder to
	// SecondMethod.
	Split              bool               `json:"split"`
	SecondMethod       enum.PaymentMethod `json:"second_method"`
	SecondInstallments int                `json:"second_installments"`
	FirstAmount        string             `json:"first_amount"`
	// CashTendered is required whenever any leg is cash.
	CashTendered string `json:"cash_tendered"`
}

// CheckoutInput is everything the counter form submits on finalize.
type CheckoutInput struct {
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Reference    string `json:"reference"`

	Courier      string `json:"courier"`
	ProductValue string `json:"product_value"`
	DeliveryFee  string `json:"delivery_fee"`

	Payment PaymentInput `json:"payment"`

	// Continuous-use medication. DurationDays > 0 schedules a
	// repurchase reminder.
	Medication   string `json:"medication"`
	DurationDays int    `json:"duration_days"`
}

// QuoteResult is the settlement preview shown before finalize.
type QuoteResult struct {
	ProductValue money.Amount  `json:"product_value"`
	DeliveryFee  money.Amount  `json:"delivery_fee"`
	Total        money.Amount  `json:"total"`
	CashDue      *money.Amount `json:"cash_due,omitempty"`
	CashChange   *money.Amount `json:"cash_change,omitempty"`
	// SecondAmount is the suggested second-leg value on a split:
	// total minus the first leg. Suggestion only, never persisted.
	SecondAmount *money.Amount `json:"second_amount,omitempty"`
	ReminderDue  *time.Time    `json:"reminder_due,omitempty"`
}

// CheckoutResult is the outcome of a finalized sale.
type CheckoutResult struct {
	Order    *entity.Order    `json:"order"`
	Customer *entity.Customer `json:"customer"`
	Reminder *entity.Reminder `json:"reminder,omitempty"`
}

func (s *CheckoutService) leadDays(ctx context.Context) int {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return 3
	}
	return settings.ReminderLeadDays
}

func (s *CheckoutService) areaCode(ctx context.Context) string {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return "11"
	}
	return settings.DefaultAreaCode
}

// buildPlan turns the raw payment input into a validated plan.
func buildPlan(input *PaymentInput, total money.Amount) (entity.PaymentPlan, error) {
	var plan entity.PaymentPlan
	if input.Split {
		first := entity.PaymentLeg{
			Method:       input.Method,
			Amount:       money.Parse(input.FirstAmount),
			Installments: input.Installments,
		}
		// The second leg absorbs the remainder; the attendant only
		// types the first amount.
		second := entity.PaymentLeg{
			Method:       input.SecondMethod,
			Amount:       total - first.Amount,
			Installments: input.SecondInstallments,
		}
		plan = entity.NewSplitPlan(first, second)
	} else {
		plan = entity.NewSinglePlan(input.Method, input.Installments, total)
	}
	if err := plan.Validate(total); err != nil {
		return entity.PaymentPlan{}, err
	}
	return plan, nil
}

// settlement holds the computed money side of a checkout.
type settlement struct {
	ProductValue money.Amount
	DeliveryFee  money.Amount
	Total        money.Amount
	Plan         entity.PaymentPlan
	CashTendered *money.Amount
	CashChange   *money.Amount
}

// settle computes totals, plan and change from the raw input.
func (s *CheckoutService) settle(input *CheckoutInput) (*settlement, error) {
	productValue := money.Parse(input.ProductValue)
	deliveryFee := money.Parse(input.DeliveryFee)
	if productValue < 0 || deliveryFee < 0 {
		return nil, apperror.NewUnprocessableError("product value and delivery fee cannot be negative")
	}
	total := productValue + deliveryFee

	if total <= 0 {
		return nil, apperror.ErrZeroTotal
	}

	plan, err := buildPlan(&input.Payment, total)
	if err != nil {
		return nil, err
	}

	stl := &settlement{
		ProductValue: productValue,
		DeliveryFee:  deliveryFee,
		Total:        total,
		Plan:         plan,
	}
	if plan.HasCash() {
		tendered := money.Parse(input.Payment.CashTendered)
		stl.CashTendered = &tendered
		stl.CashChange = plan.Change(tendered)
	}

	return stl, nil
}

// Quote previews totals and change without persisting anything.
func (s *CheckoutService) Quote(ctx context.Context, input *CheckoutInput) (*QuoteResult, error) {
	stl, err := s.settle(input)
	if err != nil {
		return nil, err
	}

	result := &QuoteResult{
		ProductValue: stl.ProductValue,
		DeliveryFee:  stl.DeliveryFee,
		Total:        stl.Total,
		CashChange:   stl.CashChange,
	}
	if due, ok := stl.Plan.CashDue(); ok {
		result.CashDue = &due
	}
	if input.Payment.Split && len(stl.Plan.Legs) == 2 {
		second := stl.Plan.Legs[1].Amount
		result.SecondAmount = &second
	}
	if input.DurationDays > 0 {
		d := s.reminderDueDate(ctx, input.DurationDays)
		result.ReminderDue = &d
	}

	return result, nil
}

// reminderDueDate computes when a repurchase reminder comes due: the day
// the medication runs out minus the configured lead time.
func (s *CheckoutService) reminderDueDate(ctx context.Context, durationDays int) time.Time {
	now := s.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, durationDays-s.leadDays(ctx))
}

// Finalize settles and persists the sale: customer upsert, address
// history, order row and optional reminder in one transaction.
func (s *CheckoutService) Finalize(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return nil, apperror.ErrMissingCustomer
	}
	if input.DurationDays < 0 {
		return nil, apperror.ErrInvalidDuration
	}

	stl, err := s.settle(input)
	if err != nil {
		return nil, err
	}

	canonicalPhone := phone.Normalize(input.Phone, s.areaCode(ctx))
	now := s.now()

	customer := &entity.Customer{
		Phone:        canonicalPhone,
		Name:         strings.TrimSpace(input.Name),
		Street:       strings.TrimSpace(input.Street),
		Number:       strings.TrimSpace(input.Number),
		Neighborhood: strings.TrimSpace(input.Neighborhood),
		Reference:    strings.TrimSpace(input.Reference),
	}

	// Append an address entry only when the address changed since the
	// last order.
	var addressEntry *entity.AddressHistoryEntry
	latest, err := s.customerRepo.LatestAddress(ctx, canonicalPhone)
	if err != nil {
		return nil, err
	}
	if latest == nil || !latest.SameAddress(customer) {
		addressEntry = &entity.AddressHistoryEntry{
			CustomerPhone: canonicalPhone,
			Street:        customer.Street,
			Number:        customer.Number,
			Neighborhood:  customer.Neighborhood,
			Reference:     customer.Reference,
			LastUsedAt:    now,
		}
	}

	y, m, d := now.Date()
	order := &entity.Order{
		ReceiptNo:      utils.GenerateReceiptNo(),
		OrderDate:      time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		CustomerPhone:  canonicalPhone,
		CustomerName:   customer.Name,
		Courier:        strings.TrimSpace(input.Courier),
		ProductValue:   stl.ProductValue,
		DeliveryFee:    stl.DeliveryFee,
		Total:          stl.Total,
		PaymentSummary: stl.Plan.Summary(),
		PaymentDetail:  stl.Plan.Detail(),
		CashTendered:   stl.CashTendered,
		CashChange:     stl.CashChange,
	}

	var reminder *entity.Reminder
	if input.DurationDays > 0 {
		reminder = &entity.Reminder{
			CustomerPhone: canonicalPhone,
			CustomerName:  customer.Name,
			Medication:    strings.TrimSpace(input.Medication),
			DurationDays:  input.DurationDays,
			DueDate:       s.reminderDueDate(ctx, input.DurationDays),
			Status:        enum.ReminderPending,
		}
	}

	sale := &repository.FinalizedSale{
		Customer:     customer,
		AddressEntry: addressEntry,
		Order:        order,
		Reminder:     reminder,
	}
	if err := s.checkoutRepo.SaveFinalized(ctx, sale); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:    order,
		Customer: customer,
		Reminder: reminder,
	}, nil
}
