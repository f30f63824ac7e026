package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ReviewClaimUseCase applies a reviewer's status decision to a claim.
type ReviewClaimUseCase struct {
	claimRepo port.ClaimRepository
	publisher port.EventPublisher
}

// NewReviewClaimUseCase wires dependencies.
func NewReviewClaimUseCase(claimRepo port.ClaimRepository, publisher port.EventPublisher) *ReviewClaimUseCase {
	return &ReviewClaimUseCase{claimRepo: claimRepo, publisher: publisher}
}

// Execute transitions the claim to the requested status. The transition
// table decides legality; the aggregate enforces amount constraints.
func (uc *ReviewClaimUseCase) Execute(
	ctx context.Context,
	req dto.ReviewClaimRequest,
) (dto.ClaimResponse, error) {
	now := time.Now().UTC()

	// 1. Parse the target status.
	newStatus, err := valueobject.NewClaimStatus(req.NewStatus)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("parse status: %w", err)
	}

	// 2. Load the claim.
	claim, err := uc.claimRepo.FindByNumber(ctx, req.ClaimNumber)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("find claim: %w", err)
	}

	// 3. Apply the transition.
	claim, err = claim.Transition(newStatus, req.Actor, model.TransitionFields{
		ApprovedAmount:  req.ApprovedAmount,
		RejectionReason: req.RejectionReason,
		Notes:           req.Notes,
	}, now)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("transition claim: %w", err)
	}

	// 4. Persist.
	if err := uc.claimRepo.Save(ctx, claim); err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("save claim: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, claim.DomainEvents()...); err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toClaimResponse(claim), nil
}
