package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/port"
)

// CancelPolicyUseCase cancels an active policy.
type CancelPolicyUseCase struct {
	policyRepo port.PolicyRepository
	publisher  port.EventPublisher
}

// NewCancelPolicyUseCase wires dependencies.
func NewCancelPolicyUseCase(policyRepo port.PolicyRepository, publisher port.EventPublisher) *CancelPolicyUseCase {
	return &CancelPolicyUseCase{policyRepo: policyRepo, publisher: publisher}
}

// Execute transitions the policy to CANCELLED and publishes the event.
func (uc *CancelPolicyUseCase) Execute(
	ctx context.Context,
	req dto.CancelPolicyRequest,
) (dto.PolicyResponse, error) {
	now := time.Now().UTC()

	policy, err := uc.policyRepo.FindByNumber(ctx, req.PolicyNumber)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("find policy: %w", err)
	}

	policy, err = policy.Cancel(req.Reason, now)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("cancel policy: %w", err)
	}

	if err := uc.policyRepo.Save(ctx, policy); err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("save policy: %w", err)
	}
	if err := uc.publisher.Publish(ctx, policy.DomainEvents()...); err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPolicyResponse(policy), nil
}
