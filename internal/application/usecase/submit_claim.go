package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/event"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// SubmitClaimUseCase files a claim against an active policy and runs the
// fraud heuristics over it. Fraud indicators are advisory and never block
// the submission.
type SubmitClaimUseCase struct {
	policyRepo port.PolicyRepository
	claimRepo  port.ClaimRepository
	publisher  port.EventPublisher
	analyzer   *service.FraudAnalyzer
}

// NewSubmitClaimUseCase wires dependencies.
func NewSubmitClaimUseCase(
	policyRepo port.PolicyRepository,
	claimRepo port.ClaimRepository,
	publisher port.EventPublisher,
	analyzer *service.FraudAnalyzer,
) *SubmitClaimUseCase {
	return &SubmitClaimUseCase{
		policyRepo: policyRepo,
		claimRepo:  claimRepo,
		publisher:  publisher,
		analyzer:   analyzer,
	}
}

// Execute validates, files, analyzes, and persists a claim.
func (uc *SubmitClaimUseCase) Execute(
	ctx context.Context,
	req dto.SubmitClaimRequest,
) (dto.ClaimResponse, error) {
	now := time.Now().UTC()

	// 1. The policy must exist and be active.
	policy, err := uc.policyRepo.FindByNumber(ctx, req.PolicyNumber)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("find policy: %w", err)
	}

	// 2. Parse the claim type.
	claimType, err := valueobject.NewClaimType(req.ClaimType)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("parse claim type: %w", err)
	}

	// 3. File the claim aggregate.
	claim, err := model.NewClaim(policy, model.ClaimInput{
		ClaimNumber:   req.ClaimNumber,
		ClaimantID:    req.ClaimantID,
		ClaimType:     claimType,
		ClaimedAmount: req.ClaimedAmount,
		IncidentDate:  req.IncidentDate,
		Description:   req.Description,
	}, req.ClaimantID, now)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("create claim: %w", err)
	}

	// 4. Run fraud heuristics against the claimant's history.
	history, err := uc.claimRepo.FindByClaimantID(ctx, req.ClaimantID)
	if err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("load claimant history: %w", err)
	}
	indicators := uc.analyzer.Analyze(claim, policy, history)
	if len(indicators) > 0 {
		claim = claim.AttachFraudIndicators(indicators, now)
	}

	// 5. Persist.
	if err := uc.claimRepo.Save(ctx, claim); err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("save claim: %w", err)
	}

	// 6. Publish domain events, plus a fraud alert when indicators fired.
	domainEvents := claim.DomainEvents()
	if len(indicators) > 0 {
		codes := make([]string, 0, len(indicators))
		for _, ind := range indicators {
			codes = append(codes, ind.Code)
		}
		domainEvents = append(domainEvents, event.NewClaimFraudFlagged(
			claim.ClaimNumber(), claim.PolicyNumber(),
			uc.analyzer.OverallRiskLevel(indicators).String(), codes,
		))
	}
	if err := uc.publisher.Publish(ctx, domainEvents...); err != nil {
		return dto.ClaimResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return uc.toResponse(claim), nil
}

func (uc *SubmitClaimUseCase) toResponse(claim model.Claim) dto.ClaimResponse {
	resp := toClaimResponse(claim)
	if indicators := claim.FraudIndicators(); len(indicators) > 0 {
		resp.FraudRiskLevel = uc.analyzer.OverallRiskLevel(indicators).String()
	}
	return resp
}

func toClaimResponse(claim model.Claim) dto.ClaimResponse {
	history := make([]dto.StatusChangeResponse, 0, len(claim.StatusHistory()))
	for _, change := range claim.StatusHistory() {
		history = append(history, dto.StatusChangeResponse{
			Status:    change.Status.String(),
			ChangedBy: change.ChangedBy,
			ChangedAt: change.ChangedAt,
			Notes:     change.Notes,
		})
	}

	var indicators []dto.FraudIndicatorResponse
	for _, ind := range claim.FraudIndicators() {
		indicators = append(indicators, dto.FraudIndicatorResponse{
			Code:        ind.Code,
			Severity:    ind.Severity.String(),
			Description: ind.Description,
		})
	}

	return dto.ClaimResponse{
		ClaimNumber:     claim.ClaimNumber(),
		PolicyNumber:    claim.PolicyNumber(),
		ClaimantID:      claim.ClaimantID(),
		ClaimType:       claim.ClaimType().String(),
		Description:     claim.Description(),
		IncidentDate:    claim.IncidentDate(),
		ClaimedAmount:   claim.ClaimedAmount(),
		ApprovedAmount:  claim.ApprovedAmount(),
		PaidAmount:      claim.PaidAmount(),
		RejectionReason: claim.RejectionReason(),
		RejectionDate:   claim.RejectionDate(),
		PaymentDate:     claim.PaymentDate(),
		Status:          claim.Status().String(),
		StatusHistory:   history,
		FraudIndicators: indicators,
		CreatedAt:       claim.CreatedAt(),
		UpdatedAt:       claim.UpdatedAt(),
	}
}
