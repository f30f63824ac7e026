package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Hand-rolled mocks. Unset func fields fall back to not-found / no-op
// defaults; every call is recorded for assertion.
// ---------------------------------------------------------------------------

type mockRiskProfileRepository struct {
	saveFn func(ctx context.Context, profile model.RiskProfile) error
	findFn func(ctx context.Context, applicantID string) (model.RiskProfile, error)
	saved  []model.RiskProfile
}

func (m *mockRiskProfileRepository) Save(ctx context.Context, profile model.RiskProfile) error {
	m.saved = append(m.saved, profile)
	if m.saveFn != nil {
		return m.saveFn(ctx, profile)
	}
	return nil
}

func (m *mockRiskProfileRepository) FindByApplicantID(ctx context.Context, applicantID string) (model.RiskProfile, error) {
	if m.findFn != nil {
		return m.findFn(ctx, applicantID)
	}
	return model.RiskProfile{}, port.ErrNotFound
}

type mockPolicyRepository struct {
	saveFn         func(ctx context.Context, policy model.Policy) error
	findByNumberFn func(ctx context.Context, policyNumber string) (model.Policy, error)
	findByHolderFn func(ctx context.Context, holderID string) ([]model.Policy, error)
	saved          []model.Policy
}

func (m *mockPolicyRepository) Save(ctx context.Context, policy model.Policy) error {
	m.saved = append(m.saved, policy)
	if m.saveFn != nil {
		return m.saveFn(ctx, policy)
	}
	return nil
}

func (m *mockPolicyRepository) FindByNumber(ctx context.Context, policyNumber string) (model.Policy, error) {
	if m.findByNumberFn != nil {
		return m.findByNumberFn(ctx, policyNumber)
	}
	return model.Policy{}, port.ErrNotFound
}

func (m *mockPolicyRepository) FindByHolderID(ctx context.Context, holderID string) ([]model.Policy, error) {
	if m.findByHolderFn != nil {
		return m.findByHolderFn(ctx, holderID)
	}
	return nil, nil
}

type mockClaimRepository struct {
	saveFn           func(ctx context.Context, claim model.Claim) error
	findByNumberFn   func(ctx context.Context, claimNumber string) (model.Claim, error)
	findByClaimantFn func(ctx context.Context, claimantID string) ([]model.Claim, error)
	findByPolicyFn   func(ctx context.Context, policyNumber string) ([]model.Claim, error)
	saved            []model.Claim
}

func (m *mockClaimRepository) Save(ctx context.Context, claim model.Claim) error {
	m.saved = append(m.saved, claim)
	if m.saveFn != nil {
		return m.saveFn(ctx, claim)
	}
	return nil
}

func (m *mockClaimRepository) FindByNumber(ctx context.Context, claimNumber string) (model.Claim, error) {
	if m.findByNumberFn != nil {
		return m.findByNumberFn(ctx, claimNumber)
	}
	return model.Claim{}, port.ErrNotFound
}

func (m *mockClaimRepository) FindByClaimantID(ctx context.Context, claimantID string) ([]model.Claim, error) {
	if m.findByClaimantFn != nil {
		return m.findByClaimantFn(ctx, claimantID)
	}
	return nil, nil
}

func (m *mockClaimRepository) FindByPolicyNumber(ctx context.Context, policyNumber string) ([]model.Claim, error) {
	if m.findByPolicyFn != nil {
		return m.findByPolicyFn(ctx, policyNumber)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFn func(ctx context.Context, events ...event.DomainEvent) error
	published []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	m.published = append(m.published, events...)
	if m.publishFn != nil {
		return m.publishFn(ctx, events...)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Fixture builders
// ---------------------------------------------------------------------------

var fixtureNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func completeProfile(t *testing.T, applicantID string) model.RiskProfile {
	t.Helper()
	income := decimal.NewFromInt(50_000)
	profile, err := model.NewRiskProfile(applicantID, model.ProfileAttributes{
		Age:              30,
		Occupation:       valueobject.OccupationOffice,
		AnnualIncome:     &income,
		EmploymentStatus: valueobject.EmploymentStatusEmployed,
	}, fixtureNow)
	require.NoError(t, err)
	return profile
}

func assessedProfile(t *testing.T, applicantID string, multiplier float64) model.RiskProfile {
	t.Helper()
	profile := completeProfile(t, applicantID)
	return profile.ApplyAssessment(model.RiskAssessment{
		OverallScore:      40,
		Category:          valueobject.RiskCategoryModerate,
		PremiumMultiplier: multiplier,
	}, fixtureNow).ClearEvents()
}

func activePolicy(t *testing.T, policyNumber string, coverage int64) model.Policy {
	t.Helper()
	total := decimal.NewFromInt(1200)
	policy, err := model.NewPolicy(
		policyNumber, "holder-001", valueobject.PolicyTypeProperty,
		[]model.Coverage{{Type: "dwelling", Amount: decimal.NewFromInt(coverage)}},
		decimal.NewFromInt(1000), total,
		[]model.Installment{{
			Frequency: valueobject.FrequencyAnnual,
			Amount:    total,
			DueDate:   fixtureNow,
		}},
		1.2, 12, fixtureNow,
	)
	require.NoError(t, err)
	policy, err = policy.Activate(fixtureNow)
	require.NoError(t, err)
	return policy.ClearEvents()
}

func submittedClaim(t *testing.T, claimNumber string, policy model.Policy, amount int64) model.Claim {
	t.Helper()
	claim, err := model.NewClaim(policy, model.ClaimInput{
		ClaimNumber:   claimNumber,
		ClaimantID:    "claimant-001",
		ClaimType:     valueobject.ClaimTypePropertyDamage,
		ClaimedAmount: decimal.NewFromInt(amount),
		IncidentDate:  fixtureNow.AddDate(0, -1, 0),
	}, "claimant-001", fixtureNow)
	require.NoError(t, err)
	return claim.ClearEvents()
}
