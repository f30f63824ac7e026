package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// IssuePolicyUseCase prices a policy against the holder's assessed risk
// profile, builds the installment schedule, and activates the policy.
type IssuePolicyUseCase struct {
	profileRepo port.RiskProfileRepository
	policyRepo  port.PolicyRepository
	publisher   port.EventPublisher
	calculator  *service.PremiumCalculator
}

// NewIssuePolicyUseCase wires dependencies.
func NewIssuePolicyUseCase(
	profileRepo port.RiskProfileRepository,
	policyRepo port.PolicyRepository,
	publisher port.EventPublisher,
	calculator *service.PremiumCalculator,
) *IssuePolicyUseCase {
	return &IssuePolicyUseCase{
		profileRepo: profileRepo,
		policyRepo:  policyRepo,
		publisher:   publisher,
		calculator:  calculator,
	}
}

// Execute prices, creates, and activates a policy for the given holder.
func (uc *IssuePolicyUseCase) Execute(
	ctx context.Context,
	req dto.IssuePolicyRequest,
) (dto.PolicyResponse, error) {
	now := time.Now().UTC()

	// 1. The holder must have a complete, assessed risk profile.
	profile, err := uc.profileRepo.FindByApplicantID(ctx, req.HolderID)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("find risk profile: %w", err)
	}
	if !profile.IsComplete() {
		return dto.PolicyResponse{}, fmt.Errorf("issue policy: %w", valueobject.ErrIncompleteProfile)
	}
	if !profile.IsAssessed() {
		return dto.PolicyResponse{}, fmt.Errorf("issue policy: risk profile %s has not been assessed", profile.ID())
	}
	multiplier := profile.Assessment().PremiumMultiplier

	// 2. Parse request enums and coverage lines.
	policyType, err := valueobject.NewPolicyType(req.PolicyType)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("parse policy type: %w", err)
	}
	frequency, err := valueobject.NewPaymentFrequency(req.Frequency)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("parse frequency: %w", err)
	}
	coverages := make([]model.Coverage, 0, len(req.Coverages))
	coverageTotal := decimal.Zero
	for _, c := range req.Coverages {
		coverages = append(coverages, model.Coverage{
			Type:       c.Type,
			Amount:     c.Amount,
			Deductible: c.Deductible,
		})
		coverageTotal = coverageTotal.Add(c.Amount)
	}

	// 3. Price the policy.
	basePremium, err := uc.calculator.BasePremium(policyType, coverageTotal)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("compute base premium: %w", err)
	}
	totalPremium, err := uc.calculator.TotalPremium(policyType, coverageTotal, multiplier)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("compute total premium: %w", err)
	}
	schedule, err := uc.calculator.Schedule(totalPremium, frequency, req.StartDate)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("build schedule: %w", err)
	}

	// 4. Create and activate the policy aggregate.
	policy, err := model.NewPolicy(
		req.PolicyNumber, req.HolderID, policyType, coverages,
		basePremium, totalPremium, schedule, multiplier, req.TermMonths, now,
	)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("create policy: %w", err)
	}
	policy, err = policy.Activate(now)
	if err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("activate policy: %w", err)
	}

	// 5. Persist.
	if err := uc.policyRepo.Save(ctx, policy); err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("save policy: %w", err)
	}

	// 6. Publish domain events.
	if err := uc.publisher.Publish(ctx, policy.DomainEvents()...); err != nil {
		return dto.PolicyResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPolicyResponse(policy), nil
}

func toPolicyResponse(policy model.Policy) dto.PolicyResponse {
	coverages := make([]dto.CoverageRequest, 0, len(policy.Coverages()))
	for _, c := range policy.Coverages() {
		coverages = append(coverages, dto.CoverageRequest{
			Type:       c.Type,
			Amount:     c.Amount,
			Deductible: c.Deductible,
		})
	}
	schedule := make([]dto.InstallmentResponse, 0, len(policy.Schedule()))
	for _, inst := range policy.Schedule() {
		schedule = append(schedule, dto.InstallmentResponse{
			Amount:   inst.Amount,
			DueDate:  inst.DueDate,
			Paid:     inst.Paid,
			PaidDate: inst.PaidDate,
		})
	}

	return dto.PolicyResponse{
		PolicyNumber:   policy.PolicyNumber(),
		HolderID:       policy.HolderID(),
		PolicyType:     policy.PolicyType().String(),
		Coverages:      coverages,
		BasePremium:    policy.BasePremium(),
		TotalPremium:   policy.TotalPremium(),
		Schedule:       schedule,
		RiskMultiplier: policy.RiskMultiplier(),
		TermMonths:     policy.TermMonths(),
		Status:         policy.Status().String(),
		CreatedAt:      policy.CreatedAt(),
		UpdatedAt:      policy.UpdatedAt(),
	}
}
