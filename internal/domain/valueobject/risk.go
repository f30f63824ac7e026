package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskCategory – immutable value object
// ---------------------------------------------------------------------------

// RiskCategory is the human-facing classification derived from the additive
// risk score. It does not participate in pricing.
type RiskCategory struct {
	value string
}

var (
	RiskCategoryLow      = RiskCategory{value: "LOW"}
	RiskCategoryModerate = RiskCategory{value: "MODERATE"}
	RiskCategoryHigh     = RiskCategory{value: "HIGH"}
	RiskCategoryVeryHigh = RiskCategory{value: "VERY_HIGH"}
)

// RiskCategoryFromString reconstructs a RiskCategory from its string representation.
func RiskCategoryFromString(s string) (RiskCategory, error) {
	switch s {
	case "LOW":
		return RiskCategoryLow, nil
	case "MODERATE":
		return RiskCategoryModerate, nil
	case "HIGH":
		return RiskCategoryHigh, nil
	case "VERY_HIGH":
		return RiskCategoryVeryHigh, nil
	default:
		return RiskCategory{}, fmt.Errorf("invalid risk category: %q", s)
	}
}

// RiskCategoryFromScore derives the category from a 0-100 risk score.
func RiskCategoryFromScore(score int) RiskCategory {
	switch {
	case score >= 75:
		return RiskCategoryVeryHigh
	case score >= 60:
		return RiskCategoryHigh
	case score >= 40:
		return RiskCategoryModerate
	default:
		return RiskCategoryLow
	}
}

// String returns the string representation.
func (c RiskCategory) String() string { return c.value }

// IsZero returns true if the category has not been set.
func (c RiskCategory) IsZero() bool { return c.value == "" }

// Equal checks equality with another RiskCategory.
func (c RiskCategory) Equal(other RiskCategory) bool { return c.value == other.value }

// ---------------------------------------------------------------------------
// FactorLevel – immutable value object
// ---------------------------------------------------------------------------

// FactorLevel is the qualitative weight of a single risk factor.
type FactorLevel struct {
	value string
}

var (
	FactorLevelLow      = FactorLevel{value: "LOW"}
	FactorLevelMedium   = FactorLevel{value: "MEDIUM"}
	FactorLevelHigh     = FactorLevel{value: "HIGH"}
	FactorLevelVeryHigh = FactorLevel{value: "VERY_HIGH"}
)

// FactorLevelFromString reconstructs a FactorLevel from its string representation.
func FactorLevelFromString(s string) (FactorLevel, error) {
	switch s {
	case "LOW":
		return FactorLevelLow, nil
	case "MEDIUM":
		return FactorLevelMedium, nil
	case "HIGH":
		return FactorLevelHigh, nil
	case "VERY_HIGH":
		return FactorLevelVeryHigh, nil
	default:
		return FactorLevel{}, fmt.Errorf("invalid factor level: %q", s)
	}
}

// String returns the string representation.
func (l FactorLevel) String() string { return l.value }

// IsZero returns true if the level has not been set.
func (l FactorLevel) IsZero() bool { return l.value == "" }

// Equal checks equality with another FactorLevel.
func (l FactorLevel) Equal(other FactorLevel) bool { return l.value == other.value }

// ---------------------------------------------------------------------------
// FraudSeverity – immutable value object
// ---------------------------------------------------------------------------

// FraudSeverity grades an advisory fraud indicator.
type FraudSeverity struct {
	value string
}

var (
	FraudSeverityLow    = FraudSeverity{value: "LOW"}
	FraudSeverityMedium = FraudSeverity{value: "MEDIUM"}
	FraudSeverityHigh   = FraudSeverity{value: "HIGH"}
)

// FraudSeverityFromString reconstructs a FraudSeverity from its string representation.
func FraudSeverityFromString(s string) (FraudSeverity, error) {
	switch s {
	case "LOW":
		return FraudSeverityLow, nil
	case "MEDIUM":
		return FraudSeverityMedium, nil
	case "HIGH":
		return FraudSeverityHigh, nil
	default:
		return FraudSeverity{}, fmt.Errorf("invalid fraud severity: %q", s)
	}
}

// Rank returns the ordering weight of the severity. LOW=1, MEDIUM=2, HIGH=3.
func (s FraudSeverity) Rank() int {
	switch s.value {
	case "LOW":
		return 1
	case "MEDIUM":
		return 2
	case "HIGH":
		return 3
	default:
		return 0
	}
}

// String returns the string representation.
func (s FraudSeverity) String() string { return s.value }

// IsZero returns true if the severity has not been set.
func (s FraudSeverity) IsZero() bool { return s.value == "" }

// Equal checks equality with another FraudSeverity.
func (s FraudSeverity) Equal(other FraudSeverity) bool { return s.value == other.value }
