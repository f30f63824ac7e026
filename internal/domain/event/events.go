package event

import (
	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Risk Profile Events
// ---------------------------------------------------------------------------

// RiskProfileAssessed is raised when a profile has been scored.
type RiskProfileAssessed struct {
	events.BaseEvent
	ApplicantID       string  `json:"applicant_id"`
	OverallScore      int     `json:"overall_score"`
	Category          string  `json:"category"`
	PremiumMultiplier float64 `json:"premium_multiplier"`
}

func NewRiskProfileAssessed(profileID, applicantID string, score int, category string, multiplier float64) RiskProfileAssessed {
	return RiskProfileAssessed{
		BaseEvent:         events.NewBaseEvent("insurance.risk_profile.assessed", profileID, "RiskProfile"),
		ApplicantID:       applicantID,
		OverallScore:      score,
		Category:          category,
		PremiumMultiplier: multiplier,
	}
}

// ---------------------------------------------------------------------------
// Policy Events
// ---------------------------------------------------------------------------

// PolicyIssued is raised when a draft policy becomes active.
type PolicyIssued struct {
	events.BaseEvent
	HolderID      string          `json:"holder_id"`
	PolicyType    string          `json:"policy_type"`
	TotalPremium  decimal.Decimal `json:"total_premium"`
	TotalCoverage decimal.Decimal `json:"total_coverage"`
	TermMonths    int             `json:"term_months"`
}

func NewPolicyIssued(policyNumber, holderID, policyType string, totalPremium, totalCoverage decimal.Decimal, termMonths int) PolicyIssued {
	return PolicyIssued{
		BaseEvent:     events.NewBaseEvent("insurance.policy.issued", policyNumber, "Policy"),
		HolderID:      holderID,
		PolicyType:    policyType,
		TotalPremium:  totalPremium,
		TotalCoverage: totalCoverage,
		TermMonths:    termMonths,
	}
}

// PolicyCancelled is raised when an active policy is cancelled.
type PolicyCancelled struct {
	events.BaseEvent
	HolderID string `json:"holder_id"`
	Reason   string `json:"reason"`
}

func NewPolicyCancelled(policyNumber, holderID, reason string) PolicyCancelled {
	return PolicyCancelled{
		BaseEvent: events.NewBaseEvent("insurance.policy.cancelled", policyNumber, "Policy"),
		HolderID:  holderID,
		Reason:    reason,
	}
}

// ---------------------------------------------------------------------------
// Claim Events
// ---------------------------------------------------------------------------

// ClaimSubmitted is raised when a new claim enters the system.
type ClaimSubmitted struct {
	events.BaseEvent
	PolicyNumber  string          `json:"policy_number"`
	ClaimantID    string          `json:"claimant_id"`
	ClaimType     string          `json:"claim_type"`
	ClaimedAmount decimal.Decimal `json:"claimed_amount"`
}

func NewClaimSubmitted(claimNumber, policyNumber, claimantID, claimType string, claimedAmount decimal.Decimal) ClaimSubmitted {
	return ClaimSubmitted{
		BaseEvent:     events.NewBaseEvent("insurance.claim.submitted", claimNumber, "Claim"),
		PolicyNumber:  policyNumber,
		ClaimantID:    claimantID,
		ClaimType:     claimType,
		ClaimedAmount: claimedAmount,
	}
}

// ClaimStatusChanged is raised on every successful claim transition.
type ClaimStatusChanged struct {
	events.BaseEvent
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Actor      string `json:"actor"`
}

func NewClaimStatusChanged(claimNumber, fromStatus, toStatus, actor string) ClaimStatusChanged {
	return ClaimStatusChanged{
		BaseEvent:  events.NewBaseEvent("insurance.claim.status_changed", claimNumber, "Claim"),
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Actor:      actor,
	}
}

// ClaimPaid is raised when an approved claim is paid out.
type ClaimPaid struct {
	events.BaseEvent
	PolicyNumber string          `json:"policy_number"`
	ClaimantID   string          `json:"claimant_id"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
}

func NewClaimPaid(claimNumber, policyNumber, claimantID string, paidAmount decimal.Decimal) ClaimPaid {
	return ClaimPaid{
		BaseEvent:    events.NewBaseEvent("insurance.claim.paid", claimNumber, "Claim"),
		PolicyNumber: policyNumber,
		ClaimantID:   claimantID,
		PaidAmount:   paidAmount,
	}
}

// ClaimFraudFlagged is raised when fraud heuristics produce indicators for a
// newly submitted claim. Advisory only.
type ClaimFraudFlagged struct {
	events.BaseEvent
	PolicyNumber string   `json:"policy_number"`
	RiskLevel    string   `json:"risk_level"`
	Indicators   []string `json:"indicators"`
}

func NewClaimFraudFlagged(claimNumber, policyNumber, riskLevel string, indicators []string) ClaimFraudFlagged {
	return ClaimFraudFlagged{
		BaseEvent:    events.NewBaseEvent("insurance.claim.fraud_flagged", claimNumber, "Claim"),
		PolicyNumber: policyNumber,
		RiskLevel:    riskLevel,
		Indicators:   indicators,
	}
}
