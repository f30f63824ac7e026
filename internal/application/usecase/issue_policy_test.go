package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/application/usecase"
	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

func newIssuePolicyFixture() (*usecase.IssuePolicyUseCase, *mockRiskProfileRepository, *mockPolicyRepository, *mockEventPublisher) {
	profileRepo := &mockRiskProfileRepository{}
	policyRepo := &mockPolicyRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewIssuePolicyUseCase(profileRepo, policyRepo, publisher,
		service.NewPremiumCalculator(service.DefaultRateTable()))
	return uc, profileRepo, policyRepo, publisher
}

func issueRequest() dto.IssuePolicyRequest {
	return dto.IssuePolicyRequest{
		HolderID:   "applicant-001",
		PolicyType: "LIFE",
		Coverages: []dto.CoverageRequest{
			{Type: "death_benefit", Amount: decimal.NewFromInt(250_000)},
		},
		TermMonths: 12,
		Frequency:  "MONTHLY",
		StartDate:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestIssuePolicy_PricesAndActivates(t *testing.T) {
	uc, profileRepo, policyRepo, publisher := newIssuePolicyFixture()

	profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
		return assessedProfile(t, applicantID, 1.0), nil
	}

	resp, err := uc.Execute(context.Background(), issueRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.PolicyNumber)
	assert.Equal(t, "applicant-001", resp.HolderID)
	assert.Equal(t, "LIFE", resp.PolicyType)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.InDelta(t, 1.0, resp.RiskMultiplier, 1e-9)

	// Life at 250K coverage prices to 495; monthly splits into 12 x 41.25.
	assert.True(t, resp.BasePremium.Equal(decimal.RequireFromString("495")))
	assert.True(t, resp.TotalPremium.Equal(decimal.RequireFromString("495")))
	require.Len(t, resp.Schedule, 12)
	for _, inst := range resp.Schedule {
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("41.25")))
	}

	require.Len(t, policyRepo.saved, 1)
	assert.True(t, policyRepo.saved[0].IsActive())

	require.Len(t, publisher.published, 1)
	_, ok := publisher.published[0].(event.PolicyIssued)
	assert.True(t, ok)
}

func TestIssuePolicy_MultiplierScalesTotal(t *testing.T) {
	uc, profileRepo, _, _ := newIssuePolicyFixture()

	profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
		return assessedProfile(t, applicantID, 2.0), nil
	}

	req := issueRequest()
	req.Frequency = "ANNUAL"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.BasePremium.Equal(decimal.RequireFromString("495")))
	assert.True(t, resp.TotalPremium.Equal(decimal.RequireFromString("990")))
	require.Len(t, resp.Schedule, 1)
}

func TestIssuePolicy_RequiresAssessedProfile(t *testing.T) {
	t.Run("no profile on record", func(t *testing.T) {
		uc, _, policyRepo, _ := newIssuePolicyFixture()

		_, err := uc.Execute(context.Background(), issueRequest())
		require.ErrorIs(t, err, port.ErrNotFound)
		assert.Empty(t, policyRepo.saved)
	})

	t.Run("incomplete profile", func(t *testing.T) {
		uc, profileRepo, policyRepo, _ := newIssuePolicyFixture()
		profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
			profile, err := model.NewRiskProfile(applicantID, model.ProfileAttributes{Age: 30}, fixtureNow)
			require.NoError(t, err)
			return profile, nil
		}

		_, err := uc.Execute(context.Background(), issueRequest())
		require.ErrorIs(t, err, valueobject.ErrIncompleteProfile)
		assert.Empty(t, policyRepo.saved)
	})

	t.Run("complete but never scored", func(t *testing.T) {
		uc, profileRepo, policyRepo, _ := newIssuePolicyFixture()
		profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
			return completeProfile(t, applicantID), nil
		}

		_, err := uc.Execute(context.Background(), issueRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has not been assessed")
		assert.Empty(t, policyRepo.saved)
	})
}

func TestIssuePolicy_InvalidRequestEnums(t *testing.T) {
	uc, profileRepo, policyRepo, _ := newIssuePolicyFixture()
	profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
		return assessedProfile(t, applicantID, 1.0), nil
	}

	t.Run("unknown policy type", func(t *testing.T) {
		req := issueRequest()
		req.PolicyType = "PET"
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, valueobject.ErrInvalidPolicyType)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		req := issueRequest()
		req.Frequency = "WEEKLY"
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, valueobject.ErrInvalidFrequency)
	})

	assert.Empty(t, policyRepo.saved)
}

func TestCancelPolicy(t *testing.T) {
	t.Run("cancels an active policy", func(t *testing.T) {
		policyRepo := &mockPolicyRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCancelPolicyUseCase(policyRepo, publisher)

		policyRepo.findByNumberFn = func(ctx context.Context, policyNumber string) (model.Policy, error) {
			return activePolicy(t, policyNumber, 100_000), nil
		}

		resp, err := uc.Execute(context.Background(), dto.CancelPolicyRequest{
			PolicyNumber: "POL-UCTEST01",
			Reason:       "customer request",
		})
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)

		require.Len(t, policyRepo.saved, 1)
		require.Len(t, publisher.published, 1)
		cancelled, ok := publisher.published[0].(event.PolicyCancelled)
		require.True(t, ok)
		assert.Equal(t, "customer request", cancelled.Reason)
	})

	t.Run("draft policy cannot be cancelled", func(t *testing.T) {
		policyRepo := &mockPolicyRepository{}
		uc := usecase.NewCancelPolicyUseCase(policyRepo, &mockEventPublisher{})

		policyRepo.findByNumberFn = func(ctx context.Context, policyNumber string) (model.Policy, error) {
			total := decimal.NewFromInt(1200)
			return model.NewPolicy(policyNumber, "holder-001", valueobject.PolicyTypeProperty,
				[]model.Coverage{{Type: "dwelling", Amount: decimal.NewFromInt(100_000)}},
				decimal.NewFromInt(1000), total,
				[]model.Installment{{Amount: total, DueDate: fixtureNow}},
				1.2, 12, fixtureNow)
		}

		_, err := uc.Execute(context.Background(), dto.CancelPolicyRequest{
			PolicyNumber: "POL-UCTEST02",
			Reason:       "too early",
		})
		require.ErrorIs(t, err, valueobject.ErrInvalidTransition)
		assert.Empty(t, policyRepo.saved)
	})

	t.Run("unknown policy", func(t *testing.T) {
		uc := usecase.NewCancelPolicyUseCase(&mockPolicyRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.CancelPolicyRequest{
			PolicyNumber: "POL-MISSING1",
		})
		require.ErrorIs(t, err, port.ErrNotFound)
	})
}
