package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/application/usecase"
	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/service"
)

func newAssessRiskFixture() (*usecase.AssessRiskUseCase, *mockRiskProfileRepository, *mockEventPublisher) {
	profileRepo := &mockRiskProfileRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewAssessRiskUseCase(profileRepo, publisher,
		service.NewRiskScoringEngine(service.DefaultScoringTables()))
	return uc, profileRepo, publisher
}

func completeRequest() dto.AssessRiskRequest {
	income := decimal.NewFromInt(50_000)
	return dto.AssessRiskRequest{
		ApplicantID:      "applicant-001",
		Age:              30,
		Occupation:       "OFFICE",
		AnnualIncome:     &income,
		EmploymentStatus: "EMPLOYED",
	}
}

func TestAssessRisk_CreatesAndScoresNewProfile(t *testing.T) {
	uc, profileRepo, publisher := newAssessRiskFixture()

	resp, err := uc.Execute(context.Background(), completeRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ProfileID)
	assert.Equal(t, "applicant-001", resp.ApplicantID)
	assert.True(t, resp.Complete)
	assert.Equal(t, 40, resp.OverallScore)
	assert.Equal(t, "MODERATE", resp.Category)
	assert.InDelta(t, 0.8, resp.PremiumMultiplier, 1e-9)
	assert.NotEmpty(t, resp.Factors)

	require.Len(t, profileRepo.saved, 1)
	assert.True(t, profileRepo.saved[0].IsAssessed())

	require.Len(t, publisher.published, 1)
	_, ok := publisher.published[0].(event.RiskProfileAssessed)
	assert.True(t, ok)
}

func TestAssessRisk_UpdatesExistingProfile(t *testing.T) {
	uc, profileRepo, _ := newAssessRiskFixture()

	existing := assessedProfile(t, "applicant-001", 0.8)
	profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
		return existing, nil
	}

	req := completeRequest()
	req.Smoker = true
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Same profile, fresh assessment over the new attributes.
	assert.Equal(t, existing.ID(), resp.ProfileID)
	// 50 base, -10 office, +20 smoker.
	assert.Equal(t, 60, resp.OverallScore)
	assert.Equal(t, "HIGH", resp.Category)
	// 1.0 age x 0.8 office x 1.0 income x 1.5 smoker.
	assert.InDelta(t, 1.2, resp.PremiumMultiplier, 1e-9)

	require.Len(t, profileRepo.saved, 1)
	assert.Equal(t, existing.ID(), profileRepo.saved[0].ID())
}

func TestAssessRisk_IncompleteProfileStoredUnscored(t *testing.T) {
	uc, profileRepo, publisher := newAssessRiskFixture()

	req := completeRequest()
	req.AnnualIncome = nil
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Complete)
	assert.Empty(t, resp.Category)
	assert.Zero(t, resp.OverallScore)
	assert.Empty(t, resp.Factors)

	require.Len(t, profileRepo.saved, 1)
	assert.False(t, profileRepo.saved[0].IsAssessed())
	assert.Empty(t, publisher.published)
}

func TestAssessRisk_InvalidAttributes(t *testing.T) {
	uc, profileRepo, _ := newAssessRiskFixture()

	t.Run("unknown occupation", func(t *testing.T) {
		req := completeRequest()
		req.Occupation = "ASTRONAUT"
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid occupation")
	})

	t.Run("age out of range", func(t *testing.T) {
		req := completeRequest()
		req.Age = 17
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
	})

	assert.Empty(t, profileRepo.saved)
}

func TestAssessRisk_RepositoryFailurePropagates(t *testing.T) {
	uc, profileRepo, _ := newAssessRiskFixture()

	boom := errors.New("connection reset")
	profileRepo.findFn = func(ctx context.Context, applicantID string) (model.RiskProfile, error) {
		return model.RiskProfile{}, boom
	}

	_, err := uc.Execute(context.Background(), completeRequest())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, profileRepo.saved)
}
