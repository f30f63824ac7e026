package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Occupation – immutable value object
// ---------------------------------------------------------------------------

// Occupation classifies an applicant's line of work for scoring purposes.
type Occupation struct {
	value string
}

var (
	OccupationOffice            = Occupation{value: "OFFICE"}
	OccupationEducation         = Occupation{value: "EDUCATION"}
	OccupationHealthcare        = Occupation{value: "HEALTHCARE"}
	OccupationRetail            = Occupation{value: "RETAIL"}
	OccupationTransportation    = Occupation{value: "TRANSPORTATION"}
	OccupationConstruction      = Occupation{value: "CONSTRUCTION"}
	OccupationEmergencyServices = Occupation{value: "EMERGENCY_SERVICES"}
	OccupationHazardous         = Occupation{value: "HAZARDOUS"}
	OccupationUnemployed        = Occupation{value: "UNEMPLOYED"}
)

var validOccupations = map[string]Occupation{
	"OFFICE":             OccupationOffice,
	"EDUCATION":          OccupationEducation,
	"HEALTHCARE":         OccupationHealthcare,
	"RETAIL":             OccupationRetail,
	"TRANSPORTATION":     OccupationTransportation,
	"CONSTRUCTION":       OccupationConstruction,
	"EMERGENCY_SERVICES": OccupationEmergencyServices,
	"HAZARDOUS":          OccupationHazardous,
	"UNEMPLOYED":         OccupationUnemployed,
}

// NewOccupation creates an Occupation from a raw string.
func NewOccupation(s string) (Occupation, error) {
	v, ok := validOccupations[s]
	if !ok {
		return Occupation{}, fmt.Errorf("invalid occupation: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (o Occupation) String() string { return o.value }

// IsZero returns true if the occupation has not been set.
func (o Occupation) IsZero() bool { return o.value == "" }

// Equal returns true when both occupations carry the same value.
func (o Occupation) Equal(other Occupation) bool { return o.value == other.value }

// ---------------------------------------------------------------------------
// EmploymentStatus – immutable value object
// ---------------------------------------------------------------------------

// EmploymentStatus describes the applicant's current employment situation.
type EmploymentStatus struct {
	value string
}

var (
	EmploymentStatusEmployed     = EmploymentStatus{value: "EMPLOYED"}
	EmploymentStatusSelfEmployed = EmploymentStatus{value: "SELF_EMPLOYED"}
	EmploymentStatusUnemployed   = EmploymentStatus{value: "UNEMPLOYED"}
	EmploymentStatusRetired      = EmploymentStatus{value: "RETIRED"}
	EmploymentStatusStudent      = EmploymentStatus{value: "STUDENT"}
)

var validEmploymentStatuses = map[string]EmploymentStatus{
	"EMPLOYED":      EmploymentStatusEmployed,
	"SELF_EMPLOYED": EmploymentStatusSelfEmployed,
	"UNEMPLOYED":    EmploymentStatusUnemployed,
	"RETIRED":       EmploymentStatusRetired,
	"STUDENT":       EmploymentStatusStudent,
}

// NewEmploymentStatus creates an EmploymentStatus from a raw string.
func NewEmploymentStatus(s string) (EmploymentStatus, error) {
	v, ok := validEmploymentStatuses[s]
	if !ok {
		return EmploymentStatus{}, fmt.Errorf("invalid employment status: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (e EmploymentStatus) String() string { return e.value }

// IsZero returns true if the status has not been set.
func (e EmploymentStatus) IsZero() bool { return e.value == "" }

// Equal returns true when both statuses carry the same value.
func (e EmploymentStatus) Equal(other EmploymentStatus) bool { return e.value == other.value }

// ---------------------------------------------------------------------------
// PolicyType – immutable value object
// ---------------------------------------------------------------------------

// PolicyType identifies the product line a policy belongs to.
type PolicyType struct {
	value string
}

var (
	PolicyTypeLife       = PolicyType{value: "LIFE"}
	PolicyTypeHealth     = PolicyType{value: "HEALTH"}
	PolicyTypeDisability = PolicyType{value: "DISABILITY"}
	PolicyTypeProperty   = PolicyType{value: "PROPERTY"}
)

var validPolicyTypes = map[string]PolicyType{
	"LIFE":       PolicyTypeLife,
	"HEALTH":     PolicyTypeHealth,
	"DISABILITY": PolicyTypeDisability,
	"PROPERTY":   PolicyTypeProperty,
}

// NewPolicyType creates a PolicyType from a raw string.
func NewPolicyType(s string) (PolicyType, error) {
	v, ok := validPolicyTypes[s]
	if !ok {
		return PolicyType{}, fmt.Errorf("%w: %q", ErrInvalidPolicyType, s)
	}
	return v, nil
}

// String returns the string representation.
func (t PolicyType) String() string { return t.value }

// IsZero returns true if the type has not been set.
func (t PolicyType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t PolicyType) Equal(other PolicyType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// ClaimType – immutable value object
// ---------------------------------------------------------------------------

// ClaimType identifies the kind of loss a claim is filed for.
type ClaimType struct {
	value string
}

var (
	ClaimTypeMedical         = ClaimType{value: "MEDICAL"}
	ClaimTypeDeath           = ClaimType{value: "DEATH"}
	ClaimTypeDisability      = ClaimType{value: "DISABILITY"}
	ClaimTypePropertyDamage  = ClaimType{value: "PROPERTY_DAMAGE"}
	ClaimTypeTheft           = ClaimType{value: "THEFT"}
	ClaimTypeFire            = ClaimType{value: "FIRE"}
	ClaimTypeAccident        = ClaimType{value: "ACCIDENT"}
	ClaimTypeCriticalIllness = ClaimType{value: "CRITICAL_ILLNESS"}
)

var validClaimTypes = map[string]ClaimType{
	"MEDICAL":          ClaimTypeMedical,
	"DEATH":            ClaimTypeDeath,
	"DISABILITY":       ClaimTypeDisability,
	"PROPERTY_DAMAGE":  ClaimTypePropertyDamage,
	"THEFT":            ClaimTypeTheft,
	"FIRE":             ClaimTypeFire,
	"ACCIDENT":         ClaimTypeAccident,
	"CRITICAL_ILLNESS": ClaimTypeCriticalIllness,
}

// NewClaimType creates a ClaimType from a raw string.
func NewClaimType(s string) (ClaimType, error) {
	v, ok := validClaimTypes[s]
	if !ok {
		return ClaimType{}, fmt.Errorf("invalid claim type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (t ClaimType) String() string { return t.value }

// IsZero returns true if the type has not been set.
func (t ClaimType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t ClaimType) Equal(other ClaimType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency determines how a yearly premium is split into installments.
type PaymentFrequency struct {
	value string
}

var (
	FrequencyMonthly    = PaymentFrequency{value: "MONTHLY"}
	FrequencyQuarterly  = PaymentFrequency{value: "QUARTERLY"}
	FrequencySemiAnnual = PaymentFrequency{value: "SEMI_ANNUAL"}
	FrequencyAnnual     = PaymentFrequency{value: "ANNUAL"}
)

var validFrequencies = map[string]PaymentFrequency{
	"MONTHLY":     FrequencyMonthly,
	"QUARTERLY":   FrequencyQuarterly,
	"SEMI_ANNUAL": FrequencySemiAnnual,
	"ANNUAL":      FrequencyAnnual,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return v, nil
}

// Installments returns the number of installments per policy year.
func (f PaymentFrequency) Installments() int {
	switch f.value {
	case "MONTHLY":
		return 12
	case "QUARTERLY":
		return 4
	case "SEMI_ANNUAL":
		return 2
	case "ANNUAL":
		return 1
	default:
		return 0
	}
}

// IntervalMonths returns the number of calendar months between due dates.
func (f PaymentFrequency) IntervalMonths() int {
	switch f.value {
	case "MONTHLY":
		return 1
	case "QUARTERLY":
		return 3
	case "SEMI_ANNUAL":
		return 6
	case "ANNUAL":
		return 12
	default:
		return 0
	}
}

// String returns the string representation.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been set.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool { return f.value == other.value }

// ---------------------------------------------------------------------------
// RiskZone – immutable value object
// ---------------------------------------------------------------------------

// RiskZone classifies the geographic risk of the applicant's location.
type RiskZone struct {
	value string
}

var (
	RiskZoneLow    = RiskZone{value: "LOW"}
	RiskZoneMedium = RiskZone{value: "MEDIUM"}
	RiskZoneHigh   = RiskZone{value: "HIGH"}
)

var validRiskZones = map[string]RiskZone{
	"LOW":    RiskZoneLow,
	"MEDIUM": RiskZoneMedium,
	"HIGH":   RiskZoneHigh,
}

// NewRiskZone creates a RiskZone from a raw string.
func NewRiskZone(s string) (RiskZone, error) {
	v, ok := validRiskZones[s]
	if !ok {
		return RiskZone{}, fmt.Errorf("invalid risk zone: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (z RiskZone) String() string { return z.value }

// IsZero returns true if the zone has not been set.
func (z RiskZone) IsZero() bool { return z.value == "" }

// Equal returns true when both zones carry the same value.
func (z RiskZone) Equal(other RiskZone) bool { return z.value == other.value }
