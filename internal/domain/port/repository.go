package port

import (
	"context"
	"errors"

	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/model"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("record not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// RiskProfileRepository persists and retrieves applicant risk profiles.
type RiskProfileRepository interface {
	Save(ctx context.Context, profile model.RiskProfile) error
	FindByApplicantID(ctx context.Context, applicantID string) (model.RiskProfile, error)
}

// PolicyRepository persists and retrieves policies.
type PolicyRepository interface {
	Save(ctx context.Context, policy model.Policy) error
	FindByNumber(ctx context.Context, policyNumber string) (model.Policy, error)
	FindByHolderID(ctx context.Context, holderID string) ([]model.Policy, error)
}

// ClaimRepository persists and retrieves claims.
type ClaimRepository interface {
	Save(ctx context.Context, claim model.Claim) error
	FindByNumber(ctx context.Context, claimNumber string) (model.Claim, error)
	FindByClaimantID(ctx context.Context, claimantID string) ([]model.Claim, error)
	FindByPolicyNumber(ctx context.Context, policyNumber string) ([]model.Claim, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
