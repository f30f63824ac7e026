package usecase

import (
	"context"
	"fmt"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/port"
)

// GetPolicyUseCase retrieves a policy by number.
type GetPolicyUseCase struct {
	policyRepo port.PolicyRepository
}

// NewGetPolicyUseCase wires dependencies.
func NewGetPolicyUseCase(policyRepo port.PolicyRepository) *GetPolicyUseCase {
	return &GetPolicyUseCase{policyRepo: policyRepo}
}

// Execute returns a policy response for the given number.
func (uc *GetPolicyUseCase) Execute(
	ctx context.Context,
	req dto.GetPolicyRequest,
) (dto.PolicyResponse, error) {
	policy, err := uc.policyRepo.FindByNumber(ctx, req.PolicyNumber)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("find policy: %w", err)
	}
	return toPolicyResponse(policy), nil
}

// ListPoliciesUseCase lists all policies held by one person.
type ListPoliciesUseCase struct {
	policyRepo port.PolicyRepository
}

// NewListPoliciesUseCase wires dependencies.
func NewListPoliciesUseCase(policyRepo port.PolicyRepository) *ListPoliciesUseCase {
	return &ListPoliciesUseCase{policyRepo: policyRepo}
}

// Execute returns all policies for the given holder.
func (uc *ListPoliciesUseCase) Execute(
	ctx context.Context,
	req dto.ListPoliciesRequest,
) ([]dto.PolicyResponse, error) {
	policies, err := uc.policyRepo.FindByHolderID(ctx, req.HolderID)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	responses := make([]dto.PolicyResponse, 0, len(policies))
	for _, policy := range policies {
		responses = append(responses, toPolicyResponse(policy))
	}
	return responses, nil
}
