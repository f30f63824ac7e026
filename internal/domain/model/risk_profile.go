package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskProfile aggregate root
// ---------------------------------------------------------------------------

// RiskFactor is one triggered scoring rule, kept for display and audit.
type RiskFactor struct {
	Category    string                  `json:"category"`
	Name        string                  `json:"name"`
	Level       valueobject.FactorLevel `json:"level"`
	Multiplier  float64                 `json:"multiplier"`
	Description string                  `json:"description"`
}

// RiskAssessment is the derived output of the scoring engine. The additive
// score drives the category; the multiplicative chain drives the premium
// multiplier. The two are tuned independently and are not guaranteed to be
// monotonically consistent.
type RiskAssessment struct {
	Factors           []RiskFactor
	OverallScore      int
	Category          valueobject.RiskCategory
	PremiumMultiplier float64
}

// ProfileAttributes carries the raw applicant inputs. Optional fields are
// pointers; a nil value means the applicant has not provided it.
type ProfileAttributes struct {
	Age                  int
	Occupation           valueobject.Occupation
	AnnualIncome         *decimal.Decimal
	EmploymentStatus     valueobject.EmploymentStatus
	HasChronicIllness    bool
	Smoker               bool
	BMI                  *float64
	HasDangerousHobbies  bool
	Hobbies              []string
	CreditScore          *int
	HasBankruptcyHistory bool
	RiskZone             valueobject.RiskZone
}

// RiskProfile is an immutable aggregate. Every mutation returns a new copy.
type RiskProfile struct {
	id           string
	applicantID  string
	attributes   ProfileAttributes
	assessment   RiskAssessment
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewRiskProfile creates a profile from applicant-supplied attributes.
// Partial profiles are allowed; premium features require IsComplete.
func NewRiskProfile(applicantID string, attrs ProfileAttributes, now time.Time) (RiskProfile, error) {
	if applicantID == "" {
		return RiskProfile{}, errors.New("applicant ID is required")
	}
	if err := validateAttributes(attrs); err != nil {
		return RiskProfile{}, err
	}

	return RiskProfile{
		id:          uuid.New().String(),
		applicantID: applicantID,
		attributes:  copyAttributes(attrs),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructRiskProfile rebuilds the aggregate from persistence without side-effects.
func ReconstructRiskProfile(
	id, applicantID string,
	attrs ProfileAttributes,
	assessment RiskAssessment,
	version int,
	createdAt, updatedAt time.Time,
) RiskProfile {
	return RiskProfile{
		id:          id,
		applicantID: applicantID,
		attributes:  attrs,
		assessment:  assessment,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func validateAttributes(attrs ProfileAttributes) error {
	if attrs.Age != 0 && (attrs.Age < 18 || attrs.Age > 100) {
		return fmt.Errorf("age must be between 18 and 100, got %d", attrs.Age)
	}
	if attrs.AnnualIncome != nil && attrs.AnnualIncome.IsNegative() {
		return errors.New("annual income must not be negative")
	}
	if attrs.BMI != nil && (*attrs.BMI < 10 || *attrs.BMI > 50) {
		return fmt.Errorf("bmi must be between 10 and 50, got %.1f", *attrs.BMI)
	}
	if attrs.CreditScore != nil && (*attrs.CreditScore < 300 || *attrs.CreditScore > 850) {
		return fmt.Errorf("credit score must be between 300 and 850, got %d", *attrs.CreditScore)
	}
	return nil
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// UpdateAttributes replaces the raw inputs and clears the derived assessment.
// The assessment is always recomputed in full, never incrementally.
func (p RiskProfile) UpdateAttributes(attrs ProfileAttributes, now time.Time) (RiskProfile, error) {
	if err := validateAttributes(attrs); err != nil {
		return p, err
	}
	next := p
	next.attributes = copyAttributes(attrs)
	next.assessment = RiskAssessment{}
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	return next, nil
}

// ApplyAssessment stores the scoring engine's output and emits RiskProfileAssessed.
func (p RiskProfile) ApplyAssessment(a RiskAssessment, now time.Time) RiskProfile {
	next := p
	next.assessment = a
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewRiskProfileAssessed(
		p.id, p.applicantID, a.OverallScore, a.Category.String(), a.PremiumMultiplier,
	))
	return next
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// IsComplete reports whether age, occupation, annual income and employment
// status are all present. Premium calculation and claim filing require a
// complete profile.
func (p RiskProfile) IsComplete() bool {
	return p.attributes.Age != 0 &&
		!p.attributes.Occupation.IsZero() &&
		p.attributes.AnnualIncome != nil &&
		!p.attributes.EmploymentStatus.IsZero()
}

// IsAssessed reports whether the scoring engine has produced a category.
func (p RiskProfile) IsAssessed() bool {
	return !p.assessment.Category.IsZero()
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p RiskProfile) ID() string                 { return p.id }
func (p RiskProfile) ApplicantID() string        { return p.applicantID }
func (p RiskProfile) Age() int                   { return p.attributes.Age }
func (p RiskProfile) Version() int               { return p.version }
func (p RiskProfile) CreatedAt() time.Time       { return p.createdAt }
func (p RiskProfile) UpdatedAt() time.Time       { return p.updatedAt }
func (p RiskProfile) Assessment() RiskAssessment { return p.assessment }

func (p RiskProfile) DomainEvents() []event.DomainEvent { return p.domainEvents }

// Attributes returns a defensive copy of the raw applicant inputs.
func (p RiskProfile) Attributes() ProfileAttributes {
	return copyAttributes(p.attributes)
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (p RiskProfile) ClearEvents() RiskProfile {
	next := p
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyAttributes(attrs ProfileAttributes) ProfileAttributes {
	out := attrs
	if attrs.AnnualIncome != nil {
		income := *attrs.AnnualIncome
		out.AnnualIncome = &income
	}
	if attrs.BMI != nil {
		bmi := *attrs.BMI
		out.BMI = &bmi
	}
	if attrs.CreditScore != nil {
		score := *attrs.CreditScore
		out.CreditScore = &score
	}
	if len(attrs.Hobbies) > 0 {
		out.Hobbies = make([]string, len(attrs.Hobbies))
		copy(out.Hobbies, attrs.Hobbies)
	}
	return out
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
