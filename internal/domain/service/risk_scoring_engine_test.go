package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

func newProfile(t *testing.T, attrs model.ProfileAttributes) model.RiskProfile {
	t.Helper()
	profile, err := model.NewRiskProfile("applicant-001", attrs, time.Now().UTC())
	require.NoError(t, err)
	return profile
}

func baselineAttributes() model.ProfileAttributes {
	income := decimal.NewFromInt(50_000)
	return model.ProfileAttributes{
		Age:              30,
		Occupation:       valueobject.OccupationOffice,
		AnnualIncome:     &income,
		EmploymentStatus: valueobject.EmploymentStatusEmployed,
	}
}

func TestRiskScoringEngine_Baseline(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())
	profile := newProfile(t, baselineAttributes())

	assessment, err := engine.Score(profile)
	require.NoError(t, err)

	// 50 base, -10 office occupation.
	assert.Equal(t, 40, assessment.OverallScore)
	assert.Equal(t, valueobject.RiskCategoryModerate, assessment.Category)
	// age 30 band 1.0 x office 0.8 x mid income 1.0.
	assert.InDelta(t, 0.8, assessment.PremiumMultiplier, 1e-9)
	assert.NotEmpty(t, assessment.Factors)
}

func TestRiskScoringEngine_IncompleteProfile(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())

	attrs := baselineAttributes()
	attrs.AnnualIncome = nil
	profile := newProfile(t, attrs)

	_, err := engine.Score(profile)
	assert.ErrorIs(t, err, valueobject.ErrIncompleteProfile)
}

func TestRiskScoringEngine_MultiplierClampedAtCap(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())

	// 70-year-old smoker in a hazardous occupation on a 20K income:
	// 1.5 x 1.8 x 1.2 x 1.5 = 4.86 before clamping.
	income := decimal.NewFromInt(20_000)
	profile := newProfile(t, model.ProfileAttributes{
		Age:              70,
		Occupation:       valueobject.OccupationHazardous,
		AnnualIncome:     &income,
		EmploymentStatus: valueobject.EmploymentStatusEmployed,
		Smoker:           true,
	})

	assessment, err := engine.Score(profile)
	require.NoError(t, err)

	assert.Equal(t, 3.0, assessment.PremiumMultiplier)
	assert.Equal(t, 100, assessment.OverallScore)
	assert.Equal(t, valueobject.RiskCategoryVeryHigh, assessment.Category)
}

func TestRiskScoringEngine_ScoreClampedAtFloor(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())

	income := decimal.NewFromInt(200_000)
	credit := 800
	profile := newProfile(t, model.ProfileAttributes{
		Age:              30,
		Occupation:       valueobject.OccupationOffice,
		AnnualIncome:     &income,
		EmploymentStatus: valueobject.EmploymentStatusEmployed,
		CreditScore:      &credit,
		RiskZone:         valueobject.RiskZoneLow,
	})

	assessment, err := engine.Score(profile)
	require.NoError(t, err)

	// 50 -10 office -10 income -10 credit -10 zone = 10.
	assert.Equal(t, 10, assessment.OverallScore)
	assert.Equal(t, valueobject.RiskCategoryLow, assessment.Category)
	assert.GreaterOrEqual(t, assessment.PremiumMultiplier, 0.5)
	assert.InDelta(t, 1.0*0.8*0.8*0.9*0.9, assessment.PremiumMultiplier, 1e-9)
}

func TestRiskScoringEngine_ScoreAndMultiplierAreIndependent(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())

	// A young office worker scores low but still carries the under-25 age
	// band multiplier; the two outputs do not track each other.
	income := decimal.NewFromInt(120_000)
	profile := newProfile(t, model.ProfileAttributes{
		Age:              23,
		Occupation:       valueobject.OccupationOffice,
		AnnualIncome:     &income,
		EmploymentStatus: valueobject.EmploymentStatusEmployed,
	})

	assessment, err := engine.Score(profile)
	require.NoError(t, err)

	// 50 +5 young -10 office -10 income = 35 -> LOW.
	assert.Equal(t, 35, assessment.OverallScore)
	assert.Equal(t, valueobject.RiskCategoryLow, assessment.Category)
	// 1.2 x 0.8 x 0.9 = 0.864.
	assert.InDelta(t, 0.864, assessment.PremiumMultiplier, 1e-9)
}

func TestRiskScoringEngine_MedicalAndFinancialFactors(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())

	income := decimal.NewFromInt(50_000)
	bmi := 34.0
	profile := newProfile(t, model.ProfileAttributes{
		Age:                  48,
		Occupation:           valueobject.OccupationHealthcare,
		AnnualIncome:         &income,
		EmploymentStatus:     valueobject.EmploymentStatusEmployed,
		HasChronicIllness:    true,
		BMI:                  &bmi,
		HasDangerousHobbies:  true,
		HasBankruptcyHistory: true,
	})

	assessment, err := engine.Score(profile)
	require.NoError(t, err)

	// 50 +10 age +15 chronic +10 bmi +15 hobbies +25 bankruptcy = 125 -> 100.
	assert.Equal(t, 100, assessment.OverallScore)

	names := make([]string, 0, len(assessment.Factors))
	for _, f := range assessment.Factors {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "chronic_illness")
	assert.Contains(t, names, "bmi_out_of_range")
	assert.Contains(t, names, "dangerous_hobbies")
	assert.Contains(t, names, "bankruptcy_history")
}

func TestRiskScoringEngine_Deterministic(t *testing.T) {
	engine := service.NewRiskScoringEngine(service.DefaultScoringTables())
	profile := newProfile(t, baselineAttributes())

	first, err := engine.Score(profile)
	require.NoError(t, err)
	second, err := engine.Score(profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
