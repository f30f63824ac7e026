package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskScoringEngine – domain service for applicant risk assessment
// ---------------------------------------------------------------------------

// ScoringTables holds the per-occupation lookup tables used by the engine.
// Tables are copied at construction and never mutated afterwards.
type ScoringTables struct {
	OccupationPoints      map[valueobject.Occupation]int
	OccupationMultipliers map[valueobject.Occupation]float64
}

// DefaultScoringTables returns the standard underwriting tables.
// Occupation point deltas range from -10 to +30; multipliers from 0.8 to 1.8.
func DefaultScoringTables() ScoringTables {
	return ScoringTables{
		OccupationPoints: map[valueobject.Occupation]int{
			valueobject.OccupationOffice:            -10,
			valueobject.OccupationEducation:         -5,
			valueobject.OccupationHealthcare:        0,
			valueobject.OccupationRetail:            0,
			valueobject.OccupationTransportation:    10,
			valueobject.OccupationConstruction:      15,
			valueobject.OccupationEmergencyServices: 20,
			valueobject.OccupationHazardous:         30,
			valueobject.OccupationUnemployed:        15,
		},
		OccupationMultipliers: map[valueobject.Occupation]float64{
			valueobject.OccupationOffice:            0.8,
			valueobject.OccupationEducation:         0.9,
			valueobject.OccupationHealthcare:        1.0,
			valueobject.OccupationRetail:            1.0,
			valueobject.OccupationTransportation:    1.2,
			valueobject.OccupationConstruction:      1.4,
			valueobject.OccupationEmergencyServices: 1.5,
			valueobject.OccupationHazardous:         1.8,
			valueobject.OccupationUnemployed:        1.3,
		},
	}
}

// RiskScoringEngine converts raw applicant attributes into weighted risk
// factors, an aggregate 0-100 score, a category, and a 0.5-3.0 premium
// multiplier. The additive score and the multiplicative chain are tuned
// independently; a profile can be categorised LOW yet carry a multiplier
// near the cap.
type RiskScoringEngine struct {
	tables ScoringTables
}

// NewRiskScoringEngine returns an engine using the given lookup tables.
func NewRiskScoringEngine(tables ScoringTables) *RiskScoringEngine {
	return &RiskScoringEngine{tables: tables}
}

// Score evaluates the profile. It is a pure function of its input.
// Returns ErrIncompleteProfile when age, occupation, annual income or
// employment status are missing.
func (e *RiskScoringEngine) Score(profile model.RiskProfile) (model.RiskAssessment, error) {
	if !profile.IsComplete() {
		return model.RiskAssessment{}, valueobject.ErrIncompleteProfile
	}

	attrs := profile.Attributes()
	income := *attrs.AnnualIncome

	var factors []model.RiskFactor
	score := 50
	multiplier := 1.0

	addFactor := func(category, name string, m float64, description string) {
		factors = append(factors, model.RiskFactor{
			Category:    category,
			Name:        name,
			Level:       levelForMultiplier(m),
			Multiplier:  m,
			Description: description,
		})
	}

	// Age bracket.
	switch {
	case attrs.Age >= 60:
		score += 20
	case attrs.Age >= 45:
		score += 10
	case attrs.Age < 25:
		score += 5
	}
	ageMultiplier := ageBandMultiplier(attrs.Age)
	multiplier *= ageMultiplier
	addFactor("age", "age_bracket", ageMultiplier, fmt.Sprintf("applicant is %d years old", attrs.Age))

	// Occupation category.
	score += e.tables.OccupationPoints[attrs.Occupation]
	occMultiplier := e.tables.OccupationMultipliers[attrs.Occupation]
	multiplier *= occMultiplier
	addFactor("occupation", "occupation_category", occMultiplier,
		fmt.Sprintf("occupation classified as %s", attrs.Occupation))

	// Income bracket.
	switch {
	case income.LessThan(decimal.NewFromInt(30_000)):
		score += 10
	case income.GreaterThan(decimal.NewFromInt(100_000)):
		score -= 10
	}
	incMultiplier := incomeBandMultiplier(income)
	multiplier *= incMultiplier
	if incMultiplier != 1.0 {
		addFactor("financial", "income_bracket", incMultiplier,
			fmt.Sprintf("annual income of %s", income))
	}

	// Medical history.
	if attrs.HasChronicIllness {
		score += 15
		multiplier *= 1.3
		addFactor("medical", "chronic_illness", 1.3, "applicant has a chronic illness")
	}
	if attrs.Smoker {
		score += 20
		multiplier *= 1.5
		addFactor("medical", "smoker", 1.5, "applicant is a smoker")
	}
	if attrs.BMI != nil && (*attrs.BMI < 18.5 || *attrs.BMI > 30) {
		score += 10
		multiplier *= 1.2
		addFactor("medical", "bmi_out_of_range", 1.2,
			fmt.Sprintf("bmi of %.1f is outside the healthy range", *attrs.BMI))
	}

	// Lifestyle.
	if attrs.HasDangerousHobbies {
		score += 15
		multiplier *= 1.4
		addFactor("lifestyle", "dangerous_hobbies", 1.4, "applicant practices dangerous hobbies")
	}

	// Financial history.
	if attrs.HasBankruptcyHistory {
		score += 25
		multiplier *= 1.3
		addFactor("financial", "bankruptcy_history", 1.3, "applicant has a bankruptcy on record")
	}
	if attrs.CreditScore != nil {
		credit := *attrs.CreditScore
		switch {
		case credit < 580:
			score += 20
			multiplier *= 1.5
			addFactor("financial", "credit_score", 1.5, fmt.Sprintf("credit score of %d is poor", credit))
		case credit < 670:
			score += 10
			multiplier *= 1.2
			addFactor("financial", "credit_score", 1.2, fmt.Sprintf("credit score of %d is fair", credit))
		case credit >= 740:
			score -= 10
			multiplier *= 0.9
			addFactor("financial", "credit_score", 0.9, fmt.Sprintf("credit score of %d is very good", credit))
		}
	}

	// Geographic risk zone.
	switch {
	case attrs.RiskZone.Equal(valueobject.RiskZoneHigh):
		score += 15
		multiplier *= 1.3
		addFactor("geographic", "high_risk_zone", 1.3, "applicant lives in a high risk zone")
	case attrs.RiskZone.Equal(valueobject.RiskZoneLow):
		score -= 10
		multiplier *= 0.9
		addFactor("geographic", "low_risk_zone", 0.9, "applicant lives in a low risk zone")
	}

	score = clampInt(score, 0, 100)
	multiplier = clampFloat(multiplier, 0.5, 3.0)

	return model.RiskAssessment{
		Factors:           factors,
		OverallScore:      score,
		Category:          valueobject.RiskCategoryFromScore(score),
		PremiumMultiplier: multiplier,
	}, nil
}

// ---------------------------------------------------------------------------
// bracket tables
// ---------------------------------------------------------------------------

func ageBandMultiplier(age int) float64 {
	switch {
	case age <= 25:
		return 1.2
	case age <= 40:
		return 1.0
	case age <= 55:
		return 1.1
	case age <= 65:
		return 1.3
	default:
		return 1.5
	}
}

func incomeBandMultiplier(income decimal.Decimal) float64 {
	switch {
	case income.LessThan(decimal.NewFromInt(20_000)):
		return 1.3
	case income.LessThan(decimal.NewFromInt(40_000)):
		return 1.2
	case income.LessThan(decimal.NewFromInt(75_000)):
		return 1.0
	case income.LessThan(decimal.NewFromInt(150_000)):
		return 0.9
	default:
		return 0.8
	}
}

func levelForMultiplier(m float64) valueobject.FactorLevel {
	switch {
	case m <= 1.0:
		return valueobject.FactorLevelLow
	case m <= 1.25:
		return valueobject.FactorLevelMedium
	case m <= 1.45:
		return valueobject.FactorLevelHigh
	default:
		return valueobject.FactorLevelVeryHigh
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
