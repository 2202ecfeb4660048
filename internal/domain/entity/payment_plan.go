package entity

import (
	"fmt"
	"strings"

	"github.com/totalpharma/pdv-api/internal/domain/enum"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/money"
)

// splitTolerance is how far the sum of split legs may drift from the order
// total before finalize is blocked. Ten cents absorbs rounding from values
// typed with comma decimals.
const splitTolerance = money.Amount(10)

// PaymentLeg is one method/amount pair within a payment plan.
// Installments only applies to card legs; zero means a single charge.
type PaymentLeg struct {
	Method       enum.PaymentMethod `json:"method"`
	Amount       money.Amount       `json:"amount"`
	Installments int                `json:"installments,omitempty"`
}

// Label renders the leg for summaries: "Cartao 3x" for an installment
// card leg, otherwise just the method name.
func (l PaymentLeg) Label() string {
	if l.Method == enum.PaymentCard && l.Installments > 1 {
		return fmt.Sprintf("%s %dx", l.Method.String(), l.Installments)
	}
	return l.Method.String()
}

// PaymentPlan is a value object describing how an order total is settled:
// either a single method covering the whole total, or a two-leg split.
// It is NOT a database entity; at persist time it collapses into the
// order's summary and detail strings.
type PaymentPlan struct {
	Split bool         `json:"split"`
	Legs  []PaymentLeg `json:"legs"`
}

// normalizeLeg defaults card legs to a single charge when no installment
// count was given.
func normalizeLeg(leg PaymentLeg) PaymentLeg {
	if leg.Method == enum.PaymentCard && leg.Installments == 0 {
		leg.Installments = 1
	}
	return leg
}

// NewSinglePlan builds a plan where one method covers the full total.
func NewSinglePlan(method enum.PaymentMethod, installments int, total money.Amount) PaymentPlan {
	return PaymentPlan{
		Split: false,
		Legs:  []PaymentLeg{normalizeLeg(PaymentLeg{Method: method, Amount: total, Installments: installments})},
	}
}

// NewSplitPlan builds a two-leg plan. Leg order is preserved: the first
// leg is the one the attendant entered an amount for, the second absorbs
// the remainder.
func NewSplitPlan(first, second PaymentLeg) PaymentPlan {
	return PaymentPlan{
		Split: true,
		Legs:  []PaymentLeg{normalizeLeg(first), normalizeLeg(second)},
	}
}

// Validate checks the plan against the order total. Split legs must sum to
// the total within tolerance; a mismatch blocks finalize rather than
// silently adjusting a leg.
func (p PaymentPlan) Validate(total money.Amount) error {
	if len(p.Legs) == 0 {
		return apperror.NewUnprocessableError("payment plan has no legs")
	}
	for _, leg := range p.Legs {
		if !leg.Method.IsValid() {
			return apperror.NewUnprocessableError("unknown payment method")
		}
		if leg.Amount < 0 {
			return apperror.NewUnprocessableError("payment leg amount cannot be negative")
		}
		if leg.Method == enum.PaymentCard && (leg.Installments < 1 || leg.Installments > 12) {
			return apperror.NewUnprocessableError("card installments must be between 1 and 12")
		}
	}
	if !p.Split {
		return nil
	}
	var sum money.Amount
	for _, leg := range p.Legs {
		sum += leg.Amount
	}
	diff := sum - total
	if diff < 0 {
		diff = -diff
	}
	if diff > splitTolerance {
		return apperror.ErrSplitMismatch
	}
	return nil
}

// CashDue returns how much of the total must be settled in cash, and
// whether any cash leg exists at all.
func (p PaymentPlan) CashDue() (money.Amount, bool) {
	var due money.Amount
	found := false
	for _, leg := range p.Legs {
		if leg.Method == enum.PaymentCash {
			due += leg.Amount
			found = true
		}
	}
	return due, found
}

// HasCash reports whether any leg is settled in cash.
func (p PaymentPlan) HasCash() bool {
	_, ok := p.CashDue()
	return ok
}

// Change computes the change owed for a cash tender, clamped at zero: a
// tender below the cash due settles with no change rather than failing.
// It returns nil when the plan has no cash leg (change is "not
// applicable", a different state than zero).
func (p PaymentPlan) Change(tendered money.Amount) *money.Amount {
	due, ok := p.CashDue()
	if !ok {
		return nil
	}
	change := tendered - due
	if change < 0 {
		change = 0
	}
	return &change
}

// Summary returns the short label stored on the order and shown in lists,
// e.g. "Dinheiro" or "Pix + Cartao 3x".
func (p PaymentPlan) Summary() string {
	labels := make([]string, 0, len(p.Legs))
	for _, leg := range p.Legs {
		labels = append(labels, leg.Label())
	}
	return strings.Join(labels, " + ")
}

// Detail returns the verbose per-leg breakdown printed on receipts,
// e.g. "Pix: R$ 30.00 / Dinheiro: R$ 25.50". For a single-method plan the
// amount is implied by the total, so only the label is returned.
func (p PaymentPlan) Detail() string {
	if !p.Split {
		return p.Summary()
	}
	parts := make([]string, 0, len(p.Legs))
	for _, leg := range p.Legs {
		parts = append(parts, fmt.Sprintf("%s: %s", leg.Label(), leg.Amount.BRL()))
	}
	return strings.Join(parts, " / ")
}
