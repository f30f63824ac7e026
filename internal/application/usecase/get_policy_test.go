package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/application/usecase"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
)

func TestGetPolicy(t *testing.T) {
	policyRepo := &mockPolicyRepository{}
	policyRepo.findByNumberFn = func(ctx context.Context, policyNumber string) (model.Policy, error) {
		return activePolicy(t, policyNumber, 100_000), nil
	}
	uc := usecase.NewGetPolicyUseCase(policyRepo)

	resp, err := uc.Execute(context.Background(), dto.GetPolicyRequest{PolicyNumber: "POL-UCTEST01"})
	require.NoError(t, err)
	assert.Equal(t, "POL-UCTEST01", resp.PolicyNumber)
	assert.Equal(t, "ACTIVE", resp.Status)
	require.Len(t, resp.Coverages, 1)

	_, err = usecase.NewGetPolicyUseCase(&mockPolicyRepository{}).
		Execute(context.Background(), dto.GetPolicyRequest{PolicyNumber: "POL-MISSING1"})
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestListPolicies(t *testing.T) {
	policyRepo := &mockPolicyRepository{}
	policyRepo.findByHolderFn = func(ctx context.Context, holderID string) ([]model.Policy, error) {
		return []model.Policy{
			activePolicy(t, "POL-UCTEST01", 100_000),
			activePolicy(t, "POL-UCTEST02", 250_000),
		}, nil
	}
	uc := usecase.NewListPoliciesUseCase(policyRepo)

	resp, err := uc.Execute(context.Background(), dto.ListPoliciesRequest{HolderID: "holder-001"})
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "POL-UCTEST01", resp[0].PolicyNumber)
	assert.Equal(t, "POL-UCTEST02", resp[1].PolicyNumber)

	// A holder with no policies gets an empty list, not an error.
	empty, err := usecase.NewListPoliciesUseCase(&mockPolicyRepository{}).
		Execute(context.Background(), dto.ListPoliciesRequest{HolderID: "holder-999"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetClaim(t *testing.T) {
	policy := activePolicy(t, "POL-UCTEST01", 100_000)
	claimRepo := &mockClaimRepository{}
	claimRepo.findByNumberFn = func(ctx context.Context, claimNumber string) (model.Claim, error) {
		return submittedClaim(t, claimNumber, policy, 10_000), nil
	}
	uc := usecase.NewGetClaimUseCase(claimRepo)

	resp, err := uc.Execute(context.Background(), dto.GetClaimRequest{ClaimNumber: "CLM-UCTEST01"})
	require.NoError(t, err)
	assert.Equal(t, "CLM-UCTEST01", resp.ClaimNumber)
	assert.Equal(t, "SUBMITTED", resp.Status)
	require.Len(t, resp.StatusHistory, 1)

	_, err = usecase.NewGetClaimUseCase(&mockClaimRepository{}).
		Execute(context.Background(), dto.GetClaimRequest{ClaimNumber: "CLM-MISSING1"})
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestListClaims(t *testing.T) {
	policy := activePolicy(t, "POL-UCTEST01", 100_000)
	claimRepo := &mockClaimRepository{}
	claimRepo.findByClaimantFn = func(ctx context.Context, claimantID string) ([]model.Claim, error) {
		return []model.Claim{
			submittedClaim(t, "CLM-UCTEST01", policy, 10_000),
			submittedClaim(t, "CLM-UCTEST02", policy, 5_000),
		}, nil
	}
	uc := usecase.NewListClaimsUseCase(claimRepo)

	resp, err := uc.Execute(context.Background(), dto.ListClaimsRequest{ClaimantID: "claimant-001"})
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "CLM-UCTEST01", resp[0].ClaimNumber)
	assert.Equal(t, "CLM-UCTEST02", resp[1].ClaimNumber)
}

func TestListClaims_ByPolicyNumber(t *testing.T) {
	policy := activePolicy(t, "POL-UCTEST01", 100_000)
	claimRepo := &mockClaimRepository{}
	claimRepo.findByPolicyFn = func(ctx context.Context, policyNumber string) ([]model.Claim, error) {
		assert.Equal(t, "POL-UCTEST01", policyNumber)
		return []model.Claim{submittedClaim(t, "CLM-UCTEST01", policy, 10_000)}, nil
	}
	uc := usecase.NewListClaimsUseCase(claimRepo)

	resp, err := uc.Execute(context.Background(), dto.ListClaimsRequest{PolicyNumber: "POL-UCTEST01"})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "POL-UCTEST01", resp[0].PolicyNumber)
}
