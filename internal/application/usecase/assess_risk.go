package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/service"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// AssessRiskUseCase upserts an applicant's risk profile and, when the profile
// is complete, runs the scoring engine over it. Partial profiles are stored
// unscored; the response reports completeness.
type AssessRiskUseCase struct {
	profileRepo port.RiskProfileRepository
	publisher   port.EventPublisher
	engine      *service.RiskScoringEngine
}

// NewAssessRiskUseCase wires dependencies.
func NewAssessRiskUseCase(
	profileRepo port.RiskProfileRepository,
	publisher port.EventPublisher,
	engine *service.RiskScoringEngine,
) *AssessRiskUseCase {
	return &AssessRiskUseCase{
		profileRepo: profileRepo,
		publisher:   publisher,
		engine:      engine,
	}
}

// Execute stores the submitted attributes and recomputes the assessment.
// Any attribute change discards the previous assessment entirely.
func (uc *AssessRiskUseCase) Execute(
	ctx context.Context,
	req dto.AssessRiskRequest,
) (dto.RiskAssessmentResponse, error) {
	now := time.Now().UTC()

	// 1. Parse enum attributes.
	attrs, err := attributesFromRequest(req)
	if err != nil {
		return dto.RiskAssessmentResponse{}, fmt.Errorf("parse attributes: %w", err)
	}

	// 2. Load or create the profile.
	profile, err := uc.profileRepo.FindByApplicantID(ctx, req.ApplicantID)
	switch {
	case err == nil:
		profile, err = profile.UpdateAttributes(attrs, now)
		if err != nil {
			return dto.RiskAssessmentResponse{}, fmt.Errorf("update profile: %w", err)
		}
	case errors.Is(err, port.ErrNotFound):
		profile, err = model.NewRiskProfile(req.ApplicantID, attrs, now)
		if err != nil {
			return dto.RiskAssessmentResponse{}, fmt.Errorf("create profile: %w", err)
		}
	default:
		return dto.RiskAssessmentResponse{}, fmt.Errorf("find profile: %w", err)
	}

	// 3. Score when complete; incomplete profiles are stored as-is.
	if profile.IsComplete() {
		assessment, err := uc.engine.Score(profile)
		if err != nil {
			return dto.RiskAssessmentResponse{}, fmt.Errorf("score profile: %w", err)
		}
		profile = profile.ApplyAssessment(assessment, now)
	}

	// 4. Persist.
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return dto.RiskAssessmentResponse{}, fmt.Errorf("save profile: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, profile.DomainEvents()...); err != nil {
		return dto.RiskAssessmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAssessmentResponse(profile), nil
}

func attributesFromRequest(req dto.AssessRiskRequest) (model.ProfileAttributes, error) {
	attrs := model.ProfileAttributes{
		Age:                  req.Age,
		AnnualIncome:         req.AnnualIncome,
		HasChronicIllness:    req.HasChronicIllness,
		Smoker:               req.Smoker,
		BMI:                  req.BMI,
		HasDangerousHobbies:  req.HasDangerousHobbies,
		Hobbies:              req.Hobbies,
		CreditScore:          req.CreditScore,
		HasBankruptcyHistory: req.HasBankruptcyHistory,
	}

	if req.Occupation != "" {
		occupation, err := valueobject.NewOccupation(req.Occupation)
		if err != nil {
			return model.ProfileAttributes{}, err
		}
		attrs.Occupation = occupation
	}
	if req.EmploymentStatus != "" {
		employment, err := valueobject.NewEmploymentStatus(req.EmploymentStatus)
		if err != nil {
			return model.ProfileAttributes{}, err
		}
		attrs.EmploymentStatus = employment
	}
	if req.RiskZone != "" {
		zone, err := valueobject.NewRiskZone(req.RiskZone)
		if err != nil {
			return model.ProfileAttributes{}, err
		}
		attrs.RiskZone = zone
	}
	return attrs, nil
}

func toAssessmentResponse(profile model.RiskProfile) dto.RiskAssessmentResponse {
	assessment := profile.Assessment()

	resp := dto.RiskAssessmentResponse{
		ProfileID:         profile.ID(),
		ApplicantID:       profile.ApplicantID(),
		Complete:          profile.IsComplete(),
		OverallScore:      assessment.OverallScore,
		PremiumMultiplier: assessment.PremiumMultiplier,
		UpdatedAt:         profile.UpdatedAt(),
	}
	if profile.IsAssessed() {
		resp.Category = assessment.Category.String()
		resp.Factors = make([]dto.RiskFactorResponse, 0, len(assessment.Factors))
		for _, f := range assessment.Factors {
			resp.Factors = append(resp.Factors, dto.RiskFactorResponse{
				Category:    f.Category,
				Name:        f.Name,
				Level:       f.Level.String(),
				Multiplier:  f.Multiplier,
				Description: f.Description,
			})
		}
	}
	return resp
}
