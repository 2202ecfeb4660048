package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalpharma/pdv-api/internal/domain/enum"
	"github.com/totalpharma/pdv-api/pkg/apperror"
	"github.com/totalpharma/pdv-api/pkg/money"
)

func TestSinglePlanValidate(t *testing.T) {
	plan := NewSinglePlan(enum.PaymentPix, 0, money.Amount(5500))

	assert.NoError(t, plan.Validate(money.Amount(5500)))
	assert.False(t, plan.Split)
	assert.Equal(t, "Pix", plan.Summary())
}

func TestValidateRejectsUnknownMethod(t *testing.T) {
	plan := NewSinglePlan(enum.PaymentMethod(99), 0, money.Amount(1000))

	assert.Error(t, plan.Validate(money.Amount(1000)))
}

func TestValidateRejectsNegativeLeg(t *testing.T) {
	plan := NewSplitPlan(
		PaymentLeg{Method: enum.PaymentPix, Amount: money.Amount(1500)},
		PaymentLeg{Method: enum.PaymentCash, Amount: money.Amount(-500)},
	)

	assert.Error(t, plan.Validate(money.Amount(1000)))
}

func TestValidateRejectsEmptyPlan(t *testing.T) {
	assert.Error(t, PaymentPlan{}.Validate(money.Amount(1000)))
}

func TestSplitPlanTolerance(t *testing.T) {
	total := money.Amount(10000)

	t.Run("exact sum passes", func(t *testing.T) {
		plan := NewSplitPlan(
			PaymentLeg{Method: enum.PaymentPix, Amount: 3000},
			PaymentLeg{Method: enum.PaymentCash, Amount: 7000},
		)
		assert.NoError(t, plan.Validate(total))
	})

	t.Run("ten cents off passes", func(t *testing.T) {
		plan := NewSplitPlan(
			PaymentLeg{Method: enum.PaymentPix, Amount: 3000},
			PaymentLeg{Method: enum.PaymentCash, Amount: 7010},
		)
		assert.NoError(t, plan.Validate(total))
	})

	t.Run("eleven cents off fails", func(t *testing.T) {
		plan := NewSplitPlan(
			PaymentLeg{Method: enum.PaymentPix, Amount: 3000},
			PaymentLeg{Method: enum.PaymentCash, Amount: 7011},
		)
		assert.ErrorIs(t, plan.Validate(total), apperror.ErrSplitMismatch)
	})

	t.Run("short sum fails", func(t *testing.T) {
		plan := NewSplitPlan(
			PaymentLeg{Method: enum.PaymentPix, Amount: 3000},
			PaymentLeg{Method: enum.PaymentCash, Amount: 6000},
		)
		assert.ErrorIs(t, plan.Validate(total), apperror.ErrSplitMismatch)
	})
}

func TestCardInstallments(t *testing.T) {
	t.Run("label shows installment count", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCard, 3, money.Amount(9000))
		assert.NoError(t, plan.Validate(money.Amount(9000)))
		assert.Equal(t, "Cartao 3x", plan.Summary())
	})

	t.Run("single charge keeps plain label", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCard, 1, money.Amount(9000))
		assert.Equal(t, "Cartao", plan.Summary())
	})

	t.Run("zero defaults to a single charge", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCard, 0, money.Amount(9000))
		assert.NoError(t, plan.Validate(money.Amount(9000)))
		assert.Equal(t, 1, plan.Legs[0].Installments)
		assert.Equal(t, "Cartao", plan.Summary())
	})

	t.Run("more than twelve rejected", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCard, 13, money.Amount(9000))
		assert.Error(t, plan.Validate(money.Amount(9000)))
	})

	t.Run("ignored on non-card legs", func(t *testing.T) {
		plan := PaymentPlan{Legs: []PaymentLeg{{Method: enum.PaymentPix, Amount: 9000, Installments: 3}}}
		assert.NoError(t, plan.Validate(money.Amount(9000)))
		assert.Equal(t, "Pix", plan.Summary())
	})
}

func TestCashDue(t *testing.T) {
	t.Run("no cash leg", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCard, 0, money.Amount(5000))
		due, ok := plan.CashDue()
		assert.False(t, ok)
		assert.Equal(t, money.Amount(0), due)
		assert.False(t, plan.HasCash())
	})

	t.Run("cash covers part of a split", func(t *testing.T) {
		plan := NewSplitPlan(
			PaymentLeg{Method: enum.PaymentPix, Amount: 3000},
			PaymentLeg{Method: enum.PaymentCash, Amount: 2550},
		)
		due, ok := plan.CashDue()
		assert.True(t, ok)
		assert.Equal(t, money.Amount(2550), due)
	})
}

func TestChange(t *testing.T) {
	t.Run("not applicable without cash leg", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentPix, 0, money.Amount(5000))
		assert.Nil(t, plan.Change(money.Amount(10000)))
	})

	t.Run("exact tender yields zero change", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCash, 0, money.Amount(5500))
		change := plan.Change(money.Amount(5500))
		require.NotNil(t, change)
		assert.Equal(t, money.Amount(0), *change)
	})

	t.Run("over tender yields the difference", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCash, 0, money.Amount(5500))
		change := plan.Change(money.Amount(6000))
		require.NotNil(t, change)
		assert.Equal(t, money.Amount(500), *change)
	})

	t.Run("short tender clamps to zero", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCash, 0, money.Amount(4000))
		change := plan.Change(money.Amount(3000))
		require.NotNil(t, change)
		assert.Equal(t, money.Amount(0), *change)
	})
}

func TestSummaryAndDetail(t *testing.T) {
	t.Run("single plan", func(t *testing.T) {
		plan := NewSinglePlan(enum.PaymentCash, 0, money.Amount(5500))
		assert.Equal(t, "Dinheiro", plan.Summary())
		assert.Equal(t, "Dinheiro", plan.Detail())
	})

	t.Run("split plan", func(t *testing.T) {
		plan := NewSplitPlan(
			PaymentLeg{Method: enum.PaymentPix, Amount: 3000},
			PaymentLeg{Method: enum.PaymentCash, Amount: 2550},
		)
		assert.Equal(t, "Pix + Dinheiro", plan.Summary())
		assert.Equal(t, "Pix: R$ 30.00 / Dinheiro: R$ 25.50", plan.Detail())
	})
}
