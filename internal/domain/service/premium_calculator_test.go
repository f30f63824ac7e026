package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

func TestPremiumCalculator_BasePremium(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())

	tests := []struct {
		name       string
		policyType valueobject.PolicyType
		coverage   int64
		want       string
	}{
		{"life", valueobject.PolicyTypeLife, 250_000, "495"},
		{"health", valueobject.PolicyTypeHealth, 100_000, "400"},
		{"disability", valueobject.PolicyTypeDisability, 50_000, "240"},
		{"property", valueobject.PolicyTypeProperty, 300_000, "460"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.BasePremium(tt.policyType, decimal.NewFromInt(tt.coverage))
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestPremiumCalculator_UnknownPolicyType(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())

	_, err := calc.BasePremium(valueobject.PolicyType{}, decimal.NewFromInt(10_000))
	assert.ErrorIs(t, err, valueobject.ErrInvalidPolicyType)

	_, err = calc.TotalPremium(valueobject.PolicyType{}, decimal.NewFromInt(10_000), 1.0)
	assert.ErrorIs(t, err, valueobject.ErrInvalidPolicyType)
}

func TestPremiumCalculator_TotalPremiumIsExactProduct(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())

	base, err := calc.BasePremium(valueobject.PolicyTypeProperty, decimal.NewFromInt(100_000))
	require.NoError(t, err)

	total, err := calc.TotalPremium(valueobject.PolicyTypeProperty, decimal.NewFromInt(100_000), 1.7)
	require.NoError(t, err)

	// The product is not rounded.
	assert.True(t, total.Equal(base.Mul(decimal.NewFromFloat(1.7))),
		"total %s must equal base %s x 1.7", total, base)
}

func TestPremiumCalculator_MonthlySchedule(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Life, 250K coverage, multiplier 1.0: total 495, 12 x 41.25.
	total, err := calc.TotalPremium(valueobject.PolicyTypeLife, decimal.NewFromInt(250_000), 1.0)
	require.NoError(t, err)

	schedule, err := calc.Schedule(total, valueobject.FrequencyMonthly, start)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	sum := decimal.Zero
	for i, inst := range schedule {
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("41.25")))
		assert.Equal(t, start.AddDate(0, i, 0), inst.DueDate)
		assert.False(t, inst.Paid)
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(total), "schedule sum %s must equal total %s", sum, total)
}

func TestPremiumCalculator_ScheduleLengthsAndIntervals(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	total := decimal.NewFromInt(1200)

	tests := []struct {
		frequency valueobject.PaymentFrequency
		count     int
		interval  int
	}{
		{valueobject.FrequencyMonthly, 12, 1},
		{valueobject.FrequencyQuarterly, 4, 3},
		{valueobject.FrequencySemiAnnual, 2, 6},
		{valueobject.FrequencyAnnual, 1, 12},
	}
	for _, tt := range tests {
		t.Run(tt.frequency.String(), func(t *testing.T) {
			schedule, err := calc.Schedule(total, tt.frequency, start)
			require.NoError(t, err)
			require.Len(t, schedule, tt.count)
			for i, inst := range schedule {
				assert.Equal(t, start.AddDate(0, tt.interval*i, 0), inst.DueDate)
			}
		})
	}
}

func TestPremiumCalculator_ScheduleRoundingDrift(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 100 / 12 = 8.33 rounded; the sum drifts 0.04 below the total, within
	// the 0.005-per-installment allowance.
	total := decimal.NewFromInt(100)
	schedule, err := calc.Schedule(total, valueobject.FrequencyMonthly, start)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, inst := range schedule {
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("8.33")))
		sum = sum.Add(inst.Amount)
	}
	drift := sum.Sub(total).Abs()
	tolerance := decimal.NewFromFloat(0.005).Mul(decimal.NewFromInt(12))
	assert.True(t, drift.LessThanOrEqual(tolerance),
		"drift %s exceeds tolerance %s", drift, tolerance)
}

func TestPremiumCalculator_UnknownFrequencyRejected(t *testing.T) {
	calc := service.NewPremiumCalculator(service.DefaultRateTable())

	_, err := calc.Schedule(decimal.NewFromInt(100), valueobject.PaymentFrequency{}, time.Now())
	assert.ErrorIs(t, err, valueobject.ErrInvalidFrequency)
}
