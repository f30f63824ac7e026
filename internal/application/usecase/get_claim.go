package usecase

import (
	"context"
	"fmt"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
)

// GetClaimUseCase retrieves a claim by number.
type GetClaimUseCase struct {
	claimRepo port.ClaimRepository
}

// NewGetClaimUseCase wires dependencies.
func NewGetClaimUseCase(claimRepo port.ClaimRepository) *GetClaimUseCase {
	return &GetClaimUseCase{claimRepo: claimRepo}
}

// Execute returns a claim response for the given number.
func (uc *GetClaimUseCase) Execute(
	ctx context.Context,
	req dto.GetClaimRequest,
) (dto.ClaimResponse, error) {
	claim, err := uc.claimRepo.FindByNumber(ctx, req.ClaimNumber)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("find claim: %w", err)
	}
	return toClaimResponse(claim), nil
}

// ListClaimsUseCase lists all claims filed by one claimant.
type ListClaimsUseCase struct {
	claimRepo port.ClaimRepository
}

// NewListClaimsUseCase wires dependencies.
func NewListClaimsUseCase(claimRepo port.ClaimRepository) *ListClaimsUseCase {
	return &ListClaimsUseCase{claimRepo: claimRepo}
}

// Execute returns all claims for the given claimant, or for the given
// policy when a policy number is supplied instead.
func (uc *ListClaimsUseCase) Execute(
	ctx context.Context,
	req dto.ListClaimsRequest,
) ([]dto.ClaimResponse, error) {
	var (
		claims []model.Claim
		err    error
	)
	if req.PolicyNumber != "" {
		claims, err = uc.claimRepo.FindByPolicyNumber(ctx, req.PolicyNumber)
	} else {
		claims, err = uc.claimRepo.FindByClaimantID(ctx, req.ClaimantID)
	}
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	responses := make([]dto.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		responses = append(responses, toClaimResponse(claim))
	}
	return responses, nil
}
