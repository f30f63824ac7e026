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
// Policy aggregate root
// ---------------------------------------------------------------------------

// Coverage is one insured amount within a policy.
type Coverage struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Deductible decimal.Decimal `json:"deductible"`
}

// Installment is one scheduled partial payment of the total premium.
type Installment struct {
	Frequency valueobject.PaymentFrequency `json:"-"`
	Amount    decimal.Decimal              `json:"amount"`
	DueDate   time.Time                    `json:"due_date"`
	Paid      bool                         `json:"paid"`
	PaidDate  *time.Time                   `json:"paid_date,omitempty"`
}

// scheduleTolerance is the permitted per-installment rounding drift between
// the schedule sum and the total premium.
var scheduleTolerance = decimal.NewFromFloat(0.005)

// Policy is an immutable aggregate. Every mutation returns a new copy.
type Policy struct {
	policyNumber   string
	holderID       string
	policyType     valueobject.PolicyType
	coverages      []Coverage
	basePremium    decimal.Decimal
	totalPremium   decimal.Decimal
	schedule       []Installment
	riskMultiplier float64
	termMonths     int
	status         valueobject.PolicyStatus
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewPolicy creates a policy in DRAFT status. An empty policyNumber is
// replaced with a generated one. The premium schedule must already sum to the
// total premium within the per-installment rounding tolerance.
func NewPolicy(
	policyNumber, holderID string,
	policyType valueobject.PolicyType,
	coverages []Coverage,
	basePremium, totalPremium decimal.Decimal,
	schedule []Installment,
	riskMultiplier float64,
	termMonths int,
	now time.Time,
) (Policy, error) {
	if holderID == "" {
		return Policy{}, errors.New("holder ID is required")
	}
	if policyType.IsZero() {
		return Policy{}, valueobject.ErrInvalidPolicyType
	}
	if len(coverages) == 0 {
		return Policy{}, errors.New("at least one coverage is required")
	}
	for _, c := range coverages {
		if c.Amount.LessThanOrEqual(decimal.Zero) {
			return Policy{}, fmt.Errorf("coverage amount must be positive for %q", c.Type)
		}
	}
	if totalPremium.LessThanOrEqual(decimal.Zero) {
		return Policy{}, errors.New("total premium must be positive")
	}
	if riskMultiplier < 0.5 || riskMultiplier > 3.0 {
		return Policy{}, fmt.Errorf("risk multiplier must be within [0.5, 3.0], got %v", riskMultiplier)
	}
	if termMonths <= 0 {
		return Policy{}, errors.New("term months must be positive")
	}
	if err := validateSchedule(schedule, totalPremium); err != nil {
		return Policy{}, err
	}

	if policyNumber == "" {
		policyNumber = generatePolicyNumber()
	}

	return Policy{
		policyNumber:   policyNumber,
		holderID:       holderID,
		policyType:     policyType,
		coverages:      copyCoverages(coverages),
		basePremium:    basePremium,
		totalPremium:   totalPremium,
		schedule:       copySchedule(schedule),
		riskMultiplier: riskMultiplier,
		termMonths:     termMonths,
		status:         valueobject.PolicyStatusDraft,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPolicy rebuilds the aggregate from persistence without side-effects.
func ReconstructPolicy(
	policyNumber, holderID string,
	policyType valueobject.PolicyType,
	coverages []Coverage,
	basePremium, totalPremium decimal.Decimal,
	schedule []Installment,
	riskMultiplier float64,
	termMonths int,
	status valueobject.PolicyStatus,
	version int,
	createdAt, updatedAt time.Time,
) Policy {
	return Policy{
		policyNumber:   policyNumber,
		holderID:       holderID,
		policyType:     policyType,
		coverages:      coverages,
		basePremium:    basePremium,
		totalPremium:   totalPremium,
		schedule:       schedule,
		riskMultiplier: riskMultiplier,
		termMonths:     termMonths,
		status:         status,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func validateSchedule(schedule []Installment, totalPremium decimal.Decimal) error {
	if len(schedule) == 0 {
		return errors.New("premium schedule is required")
	}
	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.Amount)
	}
	tolerance := scheduleTolerance.Mul(decimal.NewFromInt(int64(len(schedule))))
	if sum.Sub(totalPremium).Abs().GreaterThan(tolerance) {
		return fmt.Errorf("schedule sum %s deviates from total premium %s beyond tolerance", sum, totalPremium)
	}
	return nil
}

func generatePolicyNumber() string {
	return "POL-" + strings.ToUpper(uuid.New().String()[:8])
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Activate transitions DRAFT -> ACTIVE and emits PolicyIssued.
func (p Policy) Activate(now time.Time) (Policy, error) {
	if !p.status.Equal(valueobject.PolicyStatusDraft) {
		return p, valueobject.ErrInvalidTransition
	}
	next := p
	next.status = valueobject.PolicyStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPolicyIssued(
		p.policyNumber, p.holderID, p.policyType.String(),
		p.totalPremium, p.TotalCoverage(), p.termMonths,
	))
	return next, nil
}

// Cancel transitions ACTIVE -> CANCELLED and emits PolicyCancelled.
func (p Policy) Cancel(reason string, now time.Time) (Policy, error) {
	if !p.status.Equal(valueobject.PolicyStatusActive) {
		return p, valueobject.ErrInvalidTransition
	}
	next := p
	next.status = valueobject.PolicyStatusCancelled
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPolicyCancelled(
		p.policyNumber, p.holderID, reason,
	))
	return next, nil
}

// Expire transitions ACTIVE -> EXPIRED.
func (p Policy) Expire(now time.Time) (Policy, error) {
	if !p.status.Equal(valueobject.PolicyStatusActive) {
		return p, valueobject.ErrInvalidTransition
	}
	next := p
	next.status = valueobject.PolicyStatusExpired
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	return next, nil
}

// Lapse transitions ACTIVE -> LAPSED (missed premium payments).
func (p Policy) Lapse(now time.Time) (Policy, error) {
	if !p.status.Equal(valueobject.PolicyStatusActive) {
		return p, valueobject.ErrInvalidTransition
	}
	next := p
	next.status = valueobject.PolicyStatusLapsed
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	return next, nil
}

// MarkInstallmentPaid flags the installment at index as paid.
func (p Policy) MarkInstallmentPaid(index int, now time.Time) (Policy, error) {
	if index < 0 || index >= len(p.schedule) {
		return p, fmt.Errorf("installment index %d out of range", index)
	}
	if p.schedule[index].Paid {
		return p, fmt.Errorf("installment %d is already paid", index)
	}
	next := p
	next.schedule = copySchedule(p.schedule)
	paidAt := now
	next.schedule[index].Paid = true
	next.schedule[index].PaidDate = &paidAt
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// TotalCoverage returns the sum of all coverage amounts. Claims are validated
// against this ceiling at filing time.
func (p Policy) TotalCoverage() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range p.coverages {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// IsActive reports whether claims may be filed against the policy.
func (p Policy) IsActive() bool {
	return p.status.Equal(valueobject.PolicyStatusActive)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p Policy) PolicyNumber() string                { return p.policyNumber }
func (p Policy) HolderID() string                    { return p.holderID }
func (p Policy) PolicyType() valueobject.PolicyType  { return p.policyType }
func (p Policy) BasePremium() decimal.Decimal        { return p.basePremium }
func (p Policy) TotalPremium() decimal.Decimal       { return p.totalPremium }
func (p Policy) RiskMultiplier() float64             { return p.riskMultiplier }
func (p Policy) TermMonths() int                     { return p.termMonths }
func (p Policy) Status() valueobject.PolicyStatus    { return p.status }
func (p Policy) Version() int                        { return p.version }
func (p Policy) CreatedAt() time.Time                { return p.createdAt }
func (p Policy) UpdatedAt() time.Time                { return p.updatedAt }
func (p Policy) DomainEvents() []event.DomainEvent   { return p.domainEvents }

// Coverages returns a defensive copy of the coverage list.
func (p Policy) Coverages() []Coverage {
	return copyCoverages(p.coverages)
}

// Schedule returns a defensive copy of the premium schedule.
func (p Policy) Schedule() []Installment {
	return copySchedule(p.schedule)
}

// ClearEvents returns a copy with an empty event list.
func (p Policy) ClearEvents() Policy {
	next := p
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyCoverages(src []Coverage) []Coverage {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Coverage, len(src))
	copy(dst, src)
	return dst
}

func copySchedule(src []Installment) []Installment {
	if len(src) == 0 {
		return nil
	}
	dst := make([]Installment, len(src))
	copy(dst, src)
	return dst
}
