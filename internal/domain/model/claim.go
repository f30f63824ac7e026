package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Claim aggregate root
// ---------------------------------------------------------------------------

// StatusChange is one entry in the append-only audit log of a claim.
type StatusChange struct {
	Status    valueobject.ClaimStatus `json:"status"`
	ChangedBy string                  `json:"changed_by"`
	ChangedAt time.Time               `json:"changed_at"`
	Notes     string                  `json:"notes,omitempty"`
}

// FraudIndicator is an advisory signal attached to a claim. It never blocks
// a transition.
type FraudIndicator struct {
	Code        string                    `json:"code"`
	Severity    valueobject.FraudSeverity `json:"severity"`
	Description string                    `json:"description"`
}

// ClaimInput carries the data needed to file a new claim.
type ClaimInput struct {
	ClaimNumber   string
	ClaimantID    string
	ClaimType     valueobject.ClaimType
	ClaimedAmount decimal.Decimal
	IncidentDate  time.Time
	Description   string
}

// TransitionFields carries the optional data a status change may record.
type TransitionFields struct {
	ApprovedAmount  *decimal.Decimal
	RejectionReason string
	Notes           string
}

// Claim is an immutable aggregate. Every mutation returns a new copy.
type Claim struct {
	claimNumber     string
	policyNumber    string
	claimantID      string
	claimType       valueobject.ClaimType
	description     string
	incidentDate    time.Time
	claimedAmount   decimal.Decimal
	approvedAmount  *decimal.Decimal
	paidAmount      *decimal.Decimal
	rejectionReason string
	rejectionDate   *time.Time
	paymentDate     *time.Time
	status          valueobject.ClaimStatus
	statusHistory   []StatusChange
	fraudIndicators []FraudIndicator
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewClaim files a claim against an active policy. The claimed amount must
// not exceed the policy's total coverage. The claim starts in SUBMITTED
// status with a single synthesized history entry.
func NewClaim(policy Policy, input ClaimInput, actor string, now time.Time) (Claim, error) {
	if input.ClaimantID == "" {
		return Claim{}, errors.New("claimant ID is required")
	}
	if input.ClaimType.IsZero() {
		return Claim{}, errors.New("claim type is required")
	}
	if input.ClaimedAmount.LessThanOrEqual(decimal.Zero) {
		return Claim{}, errors.New("claimed amount must be positive")
	}
	if !policy.IsActive() {
		return Claim{}, fmt.Errorf("%w: %s", valueobject.ErrPolicyNotActive, policy.Status())
	}
	if input.ClaimedAmount.GreaterThan(policy.TotalCoverage()) {
		return Claim{}, fmt.Errorf("%w: claimed %s, coverage %s",
			valueobject.ErrCoverageExceeded, input.ClaimedAmount, policy.TotalCoverage())
	}

	claimNumber := input.ClaimNumber
	if claimNumber == "" {
		claimNumber = generateClaimNumber()
	}

	c := Claim{
		claimNumber:   claimNumber,
		policyNumber:  policy.PolicyNumber(),
		claimantID:    input.ClaimantID,
		claimType:     input.ClaimType,
		description:   input.Description,
		incidentDate:  input.IncidentDate,
		claimedAmount: input.ClaimedAmount,
		status:        valueobject.ClaimStatusSubmitted,
		statusHistory: []StatusChange{{
			Status:    valueobject.ClaimStatusSubmitted,
			ChangedBy: actor,
			ChangedAt: now,
			Notes:     "claim submitted",
		}},
		version:   1,
		createdAt: now,
		updatedAt: now,
	}

	c.domainEvents = append(c.domainEvents, event.NewClaimSubmitted(
		claimNumber, policy.PolicyNumber(), input.ClaimantID,
		input.ClaimType.String(), input.ClaimedAmount,
	))
	return c, nil
}

// ReconstructClaim rebuilds the aggregate from persistence without side-effects.
func ReconstructClaim(
	claimNumber, policyNumber, claimantID string,
	claimType valueobject.ClaimType,
	description string,
	incidentDate time.Time,
	claimedAmount decimal.Decimal,
	approvedAmount, paidAmount *decimal.Decimal,
	rejectionReason string,
	rejectionDate, paymentDate *time.Time,
	status valueobject.ClaimStatus,
	statusHistory []StatusChange,
	fraudIndicators []FraudIndicator,
	version int,
	createdAt, updatedAt time.Time,
) Claim {
	return Claim{
		claimNumber:     claimNumber,
		policyNumber:    policyNumber,
		claimantID:      claimantID,
		claimType:       claimType,
		description:     description,
		incidentDate:    incidentDate,
		claimedAmount:   claimedAmount,
		approvedAmount:  approvedAmount,
		paidAmount:      paidAmount,
		rejectionReason: rejectionReason,
		rejectionDate:   rejectionDate,
		paymentDate:     paymentDate,
		status:          status,
		statusHistory:   statusHistory,
		fraudIndicators: fraudIndicators,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func generateClaimNumber() string {
	return "CLM-" + strings.ToUpper(uuid.New().String()[:8])
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Transition moves the claim to newStatus if the transition table allows it,
// enforcing the side-constraints of the target status, appending one audit
// entry, and emitting ClaimStatusChanged. Returns a new copy.
func (c Claim) Transition(newStatus valueobject.ClaimStatus, actor string, fields TransitionFields, now time.Time) (Claim, error) {
	if newStatus.IsZero() {
		return c, fmt.Errorf("%w: target status is empty", valueobject.ErrInvalidTransition)
	}
	if !c.status.CanTransitionTo(newStatus) {
		return c, fmt.Errorf("%w: %s -> %s", valueobject.ErrInvalidTransition, c.status, newStatus)
	}

	next := c
	next.domainEvents = copyEvents(c.domainEvents)

	switch {
	case newStatus.Equal(valueobject.ClaimStatusApproved):
		if fields.ApprovedAmount != nil {
			if fields.ApprovedAmount.LessThanOrEqual(decimal.Zero) {
				return c, fmt.Errorf("%w: approved amount %s must be positive",
					valueobject.ErrInvalidAmount, fields.ApprovedAmount)
			}
			if fields.ApprovedAmount.GreaterThan(c.claimedAmount) {
				return c, fmt.Errorf("%w: approved %s exceeds claimed %s",
					valueobject.ErrInvalidAmount, fields.ApprovedAmount, c.claimedAmount)
			}
			amount := *fields.ApprovedAmount
			next.approvedAmount = &amount
		}

	case newStatus.Equal(valueobject.ClaimStatusRejected):
		rejectedAt := now
		next.rejectionReason = fields.RejectionReason
		next.rejectionDate = &rejectedAt

	case newStatus.Equal(valueobject.ClaimStatusPaid):
		// The transition table alone allows APPROVED -> PAID without an
		// approved amount ever being recorded; guard explicitly instead of
		// paying out zero.
		if c.approvedAmount == nil {
			return c, fmt.Errorf("%w: no approved amount to pay out", valueobject.ErrInvalidAmount)
		}
		amount := *c.approvedAmount
		paidAt := now
		next.paidAmount = &amount
		next.paymentDate = &paidAt
		next.domainEvents = append(next.domainEvents, event.NewClaimPaid(
			c.claimNumber, c.policyNumber, c.claimantID, amount,
		))
	}

	next.status = newStatus
	next.statusHistory = append(copyHistory(c.statusHistory), StatusChange{
		Status:    newStatus,
		ChangedBy: actor,
		ChangedAt: now,
		Notes:     fields.Notes,
	})
	next.updatedAt = now
	next.domainEvents = append(next.domainEvents, event.NewClaimStatusChanged(
		c.claimNumber, c.status.String(), newStatus.String(), actor,
	))
	return next, nil
}

// AttachFraudIndicators replaces the advisory indicator list. The claim's
// status is never affected.
func (c Claim) AttachFraudIndicators(indicators []FraudIndicator, now time.Time) Claim {
	next := c
	next.fraudIndicators = copyIndicators(indicators)
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Claim) ClaimNumber() string                 { return c.claimNumber }
func (c Claim) PolicyNumber() string                { return c.policyNumber }
func (c Claim) ClaimantID() string                  { return c.claimantID }
func (c Claim) ClaimType() valueobject.ClaimType    { return c.claimType }
func (c Claim) Description() string                 { return c.description }
func (c Claim) IncidentDate() time.Time             { return c.incidentDate }
func (c Claim) ClaimedAmount() decimal.Decimal      { return c.claimedAmount }
func (c Claim) RejectionReason() string             { return c.rejectionReason }
func (c Claim) Status() valueobject.ClaimStatus     { return c.status }
func (c Claim) Version() int                        { return c.version }
func (c Claim) CreatedAt() time.Time                { return c.createdAt }
func (c Claim) UpdatedAt() time.Time                { return c.updatedAt }
func (c Claim) DomainEvents() []event.DomainEvent   { return c.domainEvents }

// ApprovedAmount returns a copy of the approved amount, or nil when not set.
func (c Claim) ApprovedAmount() *decimal.Decimal { return copyAmount(c.approvedAmount) }

// PaidAmount returns a copy of the paid amount, or nil when not set.
func (c Claim) PaidAmount() *decimal.Decimal { return copyAmount(c.paidAmount) }

// RejectionDate returns a copy of the rejection timestamp, or nil.
func (c Claim) RejectionDate() *time.Time { return copyTime(c.rejectionDate) }

// PaymentDate returns a copy of the payment timestamp, or nil.
func (c Claim) PaymentDate() *time.Time { return copyTime(c.paymentDate) }

// StatusHistory returns a defensive copy of the audit log.
func (c Claim) StatusHistory() []StatusChange {
	return copyHistory(c.statusHistory)
}

// FraudIndicators returns a defensive copy of the advisory indicators.
func (c Claim) FraudIndicators() []FraudIndicator {
	return copyIndicators(c.fraudIndicators)
}

// ClearEvents returns a copy with an empty event list.
func (c Claim) ClearEvents() Claim {
	next := c
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyHistory(src []StatusChange) []StatusChange {
	if len(src) == 0 {
		return nil
	}
	dst := make([]StatusChange, len(src))
	copy(dst, src)
	return dst
}

func copyIndicators(src []FraudIndicator) []FraudIndicator {
	if len(src) == 0 {
		return nil
	}
	dst := make([]FraudIndicator, len(src))
	copy(dst, src)
	return dst
}

func copyAmount(src *decimal.Decimal) *decimal.Decimal {
	if src == nil {
		return nil
	}
	amount := *src
	return &amount
}

func copyTime(src *time.Time) *time.Time {
	if src == nil {
		return nil
	}
	t := *src
	return &t
}
