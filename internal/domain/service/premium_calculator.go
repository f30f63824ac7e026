package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PremiumCalculator – domain service for premium pricing
// ---------------------------------------------------------------------------

// PremiumRate is the pricing pair for one policy type.
type PremiumRate struct {
	FlatFee decimal.Decimal
	PerUnit decimal.Decimal
}

// RateTable maps policy types to their pricing constants. Copied at
// construction and never mutated afterwards.
type RateTable map[valueobject.PolicyType]PremiumRate

// DefaultRateTable returns the standard pricing table.
func DefaultRateTable() RateTable {
	return RateTable{
		valueobject.PolicyTypeLife: {
			FlatFee: decimal.NewFromInt(120),
			PerUnit: decimal.NewFromFloat(0.0015),
		},
		valueobject.PolicyTypeHealth: {
			FlatFee: decimal.NewFromInt(200),
			PerUnit: decimal.NewFromFloat(0.0020),
		},
		valueobject.PolicyTypeDisability: {
			FlatFee: decimal.NewFromInt(150),
			PerUnit: decimal.NewFromFloat(0.0018),
		},
		valueobject.PolicyTypeProperty: {
			FlatFee: decimal.NewFromInt(100),
			PerUnit: decimal.NewFromFloat(0.0012),
		},
	}
}

// PremiumCalculator derives premiums and installment schedules from a policy
// type, a coverage amount, and a risk multiplier.
type PremiumCalculator struct {
	rates RateTable
}

// NewPremiumCalculator returns a calculator using the given rate table.
func NewPremiumCalculator(rates RateTable) *PremiumCalculator {
	copied := make(RateTable, len(rates))
	for k, v := range rates {
		copied[k] = v
	}
	return &PremiumCalculator{rates: copied}
}

// BasePremium computes flatFee + coverageAmount * perUnitRate for the policy
// type, rounded to 2 decimal places.
func (c *PremiumCalculator) BasePremium(policyType valueobject.PolicyType, coverageAmount decimal.Decimal) (decimal.Decimal, error) {
	rate, ok := c.rates[policyType]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", valueobject.ErrInvalidPolicyType, policyType)
	}
	return rate.FlatFee.Add(coverageAmount.Mul(rate.PerUnit)).Round(2), nil
}

// TotalPremium multiplies the base premium by the risk multiplier. The
// multiplier is expected to be pre-clamped to [0.5, 3.0] by the scoring
// engine; it is not re-validated here.
func (c *PremiumCalculator) TotalPremium(policyType valueobject.PolicyType, coverageAmount decimal.Decimal, riskMultiplier float64) (decimal.Decimal, error) {
	base, err := c.BasePremium(policyType, coverageAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return base.Mul(decimal.NewFromFloat(riskMultiplier)), nil
}

// Schedule splits totalPremium evenly into the frequency's installment count,
// each rounded to 2 decimal places, with due dates starting at startDate and
// stepping by the matching calendar interval. The rounded sum may drift from
// totalPremium by at most 0.005 per installment. An unknown frequency is
// rejected rather than silently treated as monthly.
func (c *PremiumCalculator) Schedule(totalPremium decimal.Decimal, frequency valueobject.PaymentFrequency, startDate time.Time) ([]model.Installment, error) {
	n := frequency.Installments()
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", valueobject.ErrInvalidFrequency, frequency)
	}

	amount := totalPremium.Div(decimal.NewFromInt(int64(n))).Round(2)
	interval := frequency.IntervalMonths()

	schedule := make([]model.Installment, 0, n)
	for i := 0; i < n; i++ {
		schedule = append(schedule, model.Installment{
			Frequency: frequency,
			Amount:    amount,
			DueDate:   startDate.AddDate(0, interval*i, 0),
		})
	}
	return schedule, nil
}
