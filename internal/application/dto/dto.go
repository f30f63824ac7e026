package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// AssessRiskRequest carries the raw applicant attributes for scoring.
// Optional fields are pointers; nil means "not provided".
type AssessRiskRequest struct {
	ApplicantID          string           `json:"applicant_id"`
	Age                  int              `json:"age"`
	Occupation           string           `json:"occupation"`
	AnnualIncome         *decimal.Decimal `json:"annual_income"`
	EmploymentStatus     string           `json:"employment_status"`
	HasChronicIllness    bool             `json:"has_chronic_illness"`
	Smoker               bool             `json:"smoker"`
	BMI                  *float64         `json:"bmi"`
	HasDangerousHobbies  bool             `json:"has_dangerous_hobbies"`
	Hobbies              []string         `json:"hobbies"`
	CreditScore          *int             `json:"credit_score"`
	HasBankruptcyHistory bool             `json:"has_bankruptcy_history"`
	RiskZone             string           `json:"risk_zone"`
}

// CoverageRequest is one coverage line of a policy to be issued.
type CoverageRequest struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Deductible decimal.Decimal `json:"deductible"`
}

// IssuePolicyRequest carries the data needed to price and issue a policy.
type IssuePolicyRequest struct {
	PolicyNumber string            `json:"policy_number,omitempty"`
	HolderID     string            `json:"holder_id"`
	PolicyType   string            `json:"policy_type"`
	Coverages    []CoverageRequest `json:"coverages"`
	TermMonths   int               `json:"term_months"`
	Frequency    string            `json:"frequency"`
	StartDate    time.Time         `json:"start_date"`
}

// CancelPolicyRequest identifies a policy to cancel.
type CancelPolicyRequest struct {
	PolicyNumber string `json:"policy_number"`
	Reason       string `json:"reason"`
}

// SubmitClaimRequest carries the data needed to file a claim.
type SubmitClaimRequest struct {
	ClaimNumber   string          `json:"claim_number,omitempty"`
	PolicyNumber  string          `json:"policy_number"`
	ClaimantID    string          `json:"claimant_id"`
	ClaimType     string          `json:"claim_type"`
	ClaimedAmount decimal.Decimal `json:"claimed_amount"`
	IncidentDate  time.Time       `json:"incident_date"`
	Description   string          `json:"description"`
}

// GetPolicyRequest identifies a policy to fetch.
type GetPolicyRequest struct {
	PolicyNumber string `json:"policy_number"`
}

// ListPoliciesRequest identifies a holder whose policies to list.
type ListPoliciesRequest struct {
	HolderID string `json:"holder_id"`
}

// GetClaimRequest identifies a claim to fetch.
type GetClaimRequest struct {
	ClaimNumber string `json:"claim_number"`
}

// ListClaimsRequest selects claims by claimant or, when PolicyNumber is set,
// by the policy they were filed against.
type ListClaimsRequest struct {
	ClaimantID   string `json:"claimant_id,omitempty"`
	PolicyNumber string `json:"policy_number,omitempty"`
}

// ReviewClaimRequest carries a requested status change for a claim.
type ReviewClaimRequest struct {
	ClaimNumber     string           `json:"claim_number"`
	NewStatus       string           `json:"new_status"`
	Actor           string           `json:"actor"`
	ApprovedAmount  *decimal.Decimal `json:"approved_amount,omitempty"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RiskFactorResponse is one triggered scoring rule.
type RiskFactorResponse struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// RiskAssessmentResponse is the external representation of a scored profile.
type RiskAssessmentResponse struct {
	ProfileID         string               `json:"profile_id"`
	ApplicantID       string               `json:"applicant_id"`
	Complete          bool                 `json:"complete"`
	Factors           []RiskFactorResponse `json:"factors,omitempty"`
	OverallScore      int                  `json:"overall_score"`
	Category          string               `json:"category,omitempty"`
	PremiumMultiplier float64              `json:"premium_multiplier"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// InstallmentResponse is one scheduled premium payment.
type InstallmentResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	Paid     bool            `json:"paid"`
	PaidDate *time.Time      `json:"paid_date,omitempty"`
}

// PolicyResponse is the external representation of a policy.
type PolicyResponse struct {
	PolicyNumber   string                `json:"policy_number"`
	HolderID       string                `json:"holder_id"`
	PolicyType     string                `json:"policy_type"`
	Coverages      []CoverageRequest     `json:"coverages"`
	BasePremium    decimal.Decimal       `json:"base_premium"`
	TotalPremium   decimal.Decimal       `json:"total_premium"`
	Schedule       []InstallmentResponse `json:"schedule"`
	RiskMultiplier float64               `json:"risk_multiplier"`
	TermMonths     int                   `json:"term_months"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// StatusChangeResponse is one audit log entry of a claim.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes,omitempty"`
}

// FraudIndicatorResponse is one advisory fraud signal.
type FraudIndicatorResponse struct {
	Code        string `json:"code"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// ClaimResponse is the external representation of a claim.
type ClaimResponse struct {
	ClaimNumber     string                   `json:"claim_number"`
	PolicyNumber    string                   `json:"policy_number"`
	ClaimantID      string                   `json:"claimant_id"`
	ClaimType       string                   `json:"claim_type"`
	Description     string                   `json:"description,omitempty"`
	IncidentDate    time.Time                `json:"incident_date"`
	ClaimedAmount   decimal.Decimal          `json:"claimed_amount"`
	ApprovedAmount  *decimal.Decimal         `json:"approved_amount,omitempty"`
	PaidAmount      *decimal.Decimal         `json:"paid_amount,omitempty"`
	RejectionReason string                   `json:"rejection_reason,omitempty"`
	RejectionDate   *time.Time               `json:"rejection_date,omitempty"`
	PaymentDate     *time.Time               `json:"payment_date,omitempty"`
	Status          string                   `json:"status"`
	StatusHistory   []StatusChangeResponse   `json:"status_history"`
	FraudIndicators []FraudIndicatorResponse `json:"fraud_indicators,omitempty"`
	FraudRiskLevel  string                   `json:"fraud_risk_level,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}
