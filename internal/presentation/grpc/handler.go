package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/covergrid/insurance-service/internal/application/dto"
	"github.com/covergrid/insurance-service/internal/application/usecase"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// Compile-time assertion that InsuranceServiceHandler implements InsuranceServiceServer.
var _ InsuranceServiceServer = (*InsuranceServiceHandler)(nil)

// InsuranceServiceHandler implements the gRPC InsuranceServiceServer interface.
type InsuranceServiceHandler struct {
	UnimplementedInsuranceServiceServer
	assessRisk   *usecase.AssessRiskUseCase
	issuePolicy  *usecase.IssuePolicyUseCase
	cancelPolicy *usecase.CancelPolicyUseCase
	getPolicy    *usecase.GetPolicyUseCase
	listPolicies *usecase.ListPoliciesUseCase
	submitClaim  *usecase.SubmitClaimUseCase
	reviewClaim  *usecase.ReviewClaimUseCase
	getClaim     *usecase.GetClaimUseCase
	listClaims   *usecase.ListClaimsUseCase
	logger       *slog.Logger
}

// NewInsuranceServiceHandler creates a new gRPC handler.
func NewInsuranceServiceHandler(
	assessRisk *usecase.AssessRiskUseCase,
	issuePolicy *usecase.IssuePolicyUseCase,
	cancelPolicy *usecase.CancelPolicyUseCase,
	getPolicy *usecase.GetPolicyUseCase,
	listPolicies *usecase.ListPoliciesUseCase,
	submitClaim *usecase.SubmitClaimUseCase,
	reviewClaim *usecase.ReviewClaimUseCase,
	getClaim *usecase.GetClaimUseCase,
	listClaims *usecase.ListClaimsUseCase,
	logger *slog.Logger,
) *InsuranceServiceHandler {
	return &InsuranceServiceHandler{
		assessRisk:   assessRisk,
		issuePolicy:  issuePolicy,
		cancelPolicy: cancelPolicy,
		getPolicy:    getPolicy,
		listPolicies: listPolicies,
		submitClaim:  submitClaim,
		reviewClaim:  reviewClaim,
		getClaim:     getClaim,
		listClaims:   listClaims,
		logger:       logger,
	}
}

// Proto-aligned request/response message types. Monetary values travel as
// decimal strings; timestamps as RFC 3339 strings.

// AssessRiskRequest represents the proto AssessRiskRequest message.
type AssessRiskRequest struct {
	ApplicantID          string   `json:"applicant_id"`
	Age                  int32    `json:"age"`
	Occupation           string   `json:"occupation"`
	AnnualIncome         string   `json:"annual_income"`
	EmploymentStatus     string   `json:"employment_status"`
	HasChronicIllness    bool     `json:"has_chronic_illness"`
	Smoker               bool     `json:"smoker"`
	BMI                  float64  `json:"bmi"`
	HasDangerousHobbies  bool     `json:"has_dangerous_hobbies"`
	Hobbies              []string `json:"hobbies"`
	CreditScore          int32    `json:"credit_score"`
	HasBankruptcyHistory bool     `json:"has_bankruptcy_history"`
	RiskZone             string   `json:"risk_zone"`
}

// RiskFactorMsg represents the proto RiskFactor message.
type RiskFactorMsg struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// RiskAssessmentMsg represents the proto RiskAssessment message.
type RiskAssessmentMsg struct {
	ProfileID         string           `json:"profile_id"`
	ApplicantID       string           `json:"applicant_id"`
	Complete          bool             `json:"complete"`
	Factors           []*RiskFactorMsg `json:"factors"`
	OverallScore      int32            `json:"overall_score"`
	Category          string           `json:"category"`
	PremiumMultiplier float64          `json:"premium_multiplier"`
}

// AssessRiskResponse represents the proto AssessRiskResponse message.
type AssessRiskResponse struct {
	Assessment *RiskAssessmentMsg `json:"assessment"`
}

// CoverageMsg represents the proto Coverage message.
type CoverageMsg struct {
	Type       string `json:"type"`
	Amount     string `json:"amount"`
	Deductible string `json:"deductible"`
}

// InstallmentMsg represents the proto Installment message.
type InstallmentMsg struct {
	Amount   string `json:"amount"`
	DueDate  string `json:"due_date"`
	Paid     bool   `json:"paid"`
	PaidDate string `json:"paid_date,omitempty"`
}

// PolicyMsg represents the proto Policy message.
type PolicyMsg struct {
	PolicyNumber   string            `json:"policy_number"`
	HolderID       string            `json:"holder_id"`
	PolicyType     string            `json:"policy_type"`
	Coverages      []*CoverageMsg    `json:"coverages"`
	BasePremium    string            `json:"base_premium"`
	TotalPremium   string            `json:"total_premium"`
	Schedule       []*InstallmentMsg `json:"schedule"`
	RiskMultiplier float64           `json:"risk_multiplier"`
	TermMonths     int32             `json:"term_months"`
	Status         string            `json:"status"`
}

// IssuePolicyRequest represents the proto IssuePolicyRequest message.
type IssuePolicyRequest struct {
	HolderID   string         `json:"holder_id"`
	PolicyType string         `json:"policy_type"`
	Coverages  []*CoverageMsg `json:"coverages"`
	TermMonths int32          `json:"term_months"`
	Frequency  string         `json:"frequency"`
	StartDate  string         `json:"start_date"`
}

// IssuePolicyResponse represents the proto IssuePolicyResponse message.
type IssuePolicyResponse struct {
	Policy *PolicyMsg `json:"policy"`
}

// CancelPolicyRequest represents the proto CancelPolicyRequest message.
type CancelPolicyRequest struct {
	PolicyNumber string `json:"policy_number"`
	Reason       string `json:"reason"`
}

// CancelPolicyResponse represents the proto CancelPolicyResponse message.
type CancelPolicyResponse struct {
	Policy *PolicyMsg `json:"policy"`
}

// GetPolicyRequest represents the proto GetPolicyRequest message.
type GetPolicyRequest struct {
	PolicyNumber string `json:"policy_number"`
}

// GetPolicyResponse represents the proto GetPolicyResponse message.
type GetPolicyResponse struct {
	Policy *PolicyMsg `json:"policy"`
}

// ListPoliciesRequest represents the proto ListPoliciesRequest message.
type ListPoliciesRequest struct {
	HolderID string `json:"holder_id"`
}

// ListPoliciesResponse represents the proto ListPoliciesResponse message.
type ListPoliciesResponse struct {
	Policies []*PolicyMsg `json:"policies"`
}

// StatusChangeMsg represents the proto StatusChange message.
type StatusChangeMsg struct {
	Status    string `json:"status"`
	ChangedBy string `json:"changed_by"`
	ChangedAt string `json:"changed_at"`
	Notes     string `json:"notes,omitempty"`
}

// FraudIndicatorMsg represents the proto FraudIndicator message.
type FraudIndicatorMsg struct {
	Code        string `json:"code"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// ClaimMsg represents the proto Claim message.
type ClaimMsg struct {
	ClaimNumber     string               `json:"claim_number"`
	PolicyNumber    string               `json:"policy_number"`
	ClaimantID      string               `json:"claimant_id"`
	ClaimType       string               `json:"claim_type"`
	Description     string               `json:"description,omitempty"`
	IncidentDate    string               `json:"incident_date"`
	ClaimedAmount   string               `json:"claimed_amount"`
	ApprovedAmount  string               `json:"approved_amount,omitempty"`
	PaidAmount      string               `json:"paid_amount,omitempty"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	Status          string               `json:"status"`
	StatusHistory   []*StatusChangeMsg   `json:"status_history"`
	FraudIndicators []*FraudIndicatorMsg `json:"fraud_indicators,omitempty"`
	FraudRiskLevel  string               `json:"fraud_risk_level,omitempty"`
}

// SubmitClaimRequest represents the proto SubmitClaimRequest message.
type SubmitClaimRequest struct {
	PolicyNumber  string `json:"policy_number"`
	ClaimantID    string `json:"claimant_id"`
	ClaimType     string `json:"claim_type"`
	ClaimedAmount string `json:"claimed_amount"`
	IncidentDate  string `json:"incident_date"`
	Description   string `json:"description"`
}

// SubmitClaimResponse represents the proto SubmitClaimResponse message.
type SubmitClaimResponse struct {
	Claim *ClaimMsg `json:"claim"`
}

// ReviewClaimRequest represents the proto ReviewClaimRequest message.
type ReviewClaimRequest struct {
	ClaimNumber     string `json:"claim_number"`
	NewStatus       string `json:"new_status"`
	Actor           string `json:"actor"`
	ApprovedAmount  string `json:"approved_amount,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ReviewClaimResponse represents the proto ReviewClaimResponse message.
type ReviewClaimResponse struct {
	Claim *ClaimMsg `json:"claim"`
}

// GetClaimRequest represents the proto GetClaimRequest message.
type GetClaimRequest struct {
	ClaimNumber string `json:"claim_number"`
}

// GetClaimResponse represents the proto GetClaimResponse message.
type GetClaimResponse struct {
	Claim *ClaimMsg `json:"claim"`
}

// ListClaimsRequest represents the proto ListClaimsRequest message.
type ListClaimsRequest struct {
	ClaimantID   string `json:"claimant_id,omitempty"`
	PolicyNumber string `json:"policy_number,omitempty"`
}

// ListClaimsResponse represents the proto ListClaimsResponse message.
type ListClaimsResponse struct {
	Claims []*ClaimMsg `json:"claims"`
}

// ---------------------------------------------------------------------------
// Handler methods
// ---------------------------------------------------------------------------

// AssessRisk handles a risk assessment request.
func (h *InsuranceServiceHandler) AssessRisk(ctx context.Context, req *AssessRiskRequest) (*AssessRiskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ApplicantID == "" {
		return nil, status.Error(codes.InvalidArgument, "applicant_id is required")
	}

	ucReq := dto.AssessRiskRequest{
		ApplicantID:          req.ApplicantID,
		Age:                  int(req.Age),
		Occupation:           req.Occupation,
		EmploymentStatus:     req.EmploymentStatus,
		HasChronicIllness:    req.HasChronicIllness,
		Smoker:               req.Smoker,
		HasDangerousHobbies:  req.HasDangerousHobbies,
		Hobbies:              req.Hobbies,
		HasBankruptcyHistory: req.HasBankruptcyHistory,
		RiskZone:             req.RiskZone,
	}
	if req.AnnualIncome != "" {
		income, err := decimal.NewFromString(req.AnnualIncome)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid annual_income: %v", err)
		}
		ucReq.AnnualIncome = &income
	}
	if req.BMI != 0 {
		bmi := req.BMI
		ucReq.BMI = &bmi
	}
	if req.CreditScore != 0 {
		credit := int(req.CreditScore)
		ucReq.CreditScore = &credit
	}

	h.logger.Info("assessing risk profile", slog.String("applicant_id", req.ApplicantID))

	result, err := h.assessRisk.Execute(ctx, ucReq)
	if err != nil {
		h.logger.Error("failed to assess risk",
			slog.String("applicant_id", req.ApplicantID),
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}

	msg := &RiskAssessmentMsg{
		ProfileID:         result.ProfileID,
		ApplicantID:       result.ApplicantID,
		Complete:          result.Complete,
		OverallScore:      int32(result.OverallScore),
		Category:          result.Category,
		PremiumMultiplier: result.PremiumMultiplier,
	}
	for _, f := range result.Factors {
		msg.Factors = append(msg.Factors, &RiskFactorMsg{
			Category:    f.Category,
			Name:        f.Name,
			Level:       f.Level,
			Multiplier:  f.Multiplier,
			Description: f.Description,
		})
	}
	return &AssessRiskResponse{Assessment: msg}, nil
}

// IssuePolicy handles a policy issuance request.
func (h *InsuranceServiceHandler) IssuePolicy(ctx context.Context, req *IssuePolicyRequest) (*IssuePolicyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.HolderID == "" {
		return nil, status.Error(codes.InvalidArgument, "holder_id is required")
	}

	startDate, err := parseTimestamp(req.StartDate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid start_date: %v", err)
	}
	coverages := make([]dto.CoverageRequest, 0, len(req.Coverages))
	for _, c := range req.Coverages {
		amount, err := decimal.NewFromString(c.Amount)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid coverage amount: %v", err)
		}
		deductible := decimal.Zero
		if c.Deductible != "" {
			deductible, err = decimal.NewFromString(c.Deductible)
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "invalid deductible: %v", err)
			}
		}
		coverages = append(coverages, dto.CoverageRequest{
			Type:       c.Type,
			Amount:     amount,
			Deductible: deductible,
		})
	}

	h.logger.Info("issuing policy",
		slog.String("holder_id", req.HolderID),
		slog.String("policy_type", req.PolicyType),
	)

	result, err := h.issuePolicy.Execute(ctx, dto.IssuePolicyRequest{
		HolderID:   req.HolderID,
		PolicyType: req.PolicyType,
		Coverages:  coverages,
		TermMonths: int(req.TermMonths),
		Frequency:  req.Frequency,
		StartDate:  startDate,
	})
	if err != nil {
		h.logger.Error("failed to issue policy",
			slog.String("holder_id", req.HolderID),
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}
	return &IssuePolicyResponse{Policy: toPolicyMsg(result)}, nil
}

// CancelPolicy handles a policy cancellation request.
func (h *InsuranceServiceHandler) CancelPolicy(ctx context.Context, req *CancelPolicyRequest) (*CancelPolicyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.cancelPolicy.Execute(ctx, dto.CancelPolicyRequest{
		PolicyNumber: req.PolicyNumber,
		Reason:       req.Reason,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &CancelPolicyResponse{Policy: toPolicyMsg(result)}, nil
}

// GetPolicy handles a policy fetch request.
func (h *InsuranceServiceHandler) GetPolicy(ctx context.Context, req *GetPolicyRequest) (*GetPolicyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getPolicy.Execute(ctx, dto.GetPolicyRequest{PolicyNumber: req.PolicyNumber})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &GetPolicyResponse{Policy: toPolicyMsg(result)}, nil
}

// ListPolicies handles a policy list request.
func (h *InsuranceServiceHandler) ListPolicies(ctx context.Context, req *ListPoliciesRequest) (*ListPoliciesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	results, err := h.listPolicies.Execute(ctx, dto.ListPoliciesRequest{HolderID: req.HolderID})
	if err != nil {
		return nil, statusFromError(err)
	}
	resp := &ListPoliciesResponse{Policies: make([]*PolicyMsg, 0, len(results))}
	for _, result := range results {
		resp.Policies = append(resp.Policies, toPolicyMsg(result))
	}
	return resp, nil
}

// SubmitClaim handles a claim submission request.
func (h *InsuranceServiceHandler) SubmitClaim(ctx context.Context, req *SubmitClaimRequest) (*SubmitClaimResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	claimedAmount, err := decimal.NewFromString(req.ClaimedAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid claimed_amount: %v", err)
	}
	incidentDate, err := parseTimestamp(req.IncidentDate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid incident_date: %v", err)
	}

	h.logger.Info("submitting claim",
		slog.String("policy_number", req.PolicyNumber),
		slog.String("claimant_id", req.ClaimantID),
	)

	result, err := h.submitClaim.Execute(ctx, dto.SubmitClaimRequest{
		PolicyNumber:  req.PolicyNumber,
		ClaimantID:    req.ClaimantID,
		ClaimType:     req.ClaimType,
		ClaimedAmount: claimedAmount,
		IncidentDate:  incidentDate,
		Description:   req.Description,
	})
	if err != nil {
		h.logger.Error("failed to submit claim",
			slog.String("policy_number", req.PolicyNumber),
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}
	return &SubmitClaimResponse{Claim: toClaimMsg(result)}, nil
}

// ReviewClaim handles a claim review request.
func (h *InsuranceServiceHandler) ReviewClaim(ctx context.Context, req *ReviewClaimRequest) (*ReviewClaimResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ucReq := dto.ReviewClaimRequest{
		ClaimNumber:     req.ClaimNumber,
		NewStatus:       req.NewStatus,
		Actor:           req.Actor,
		RejectionReason: req.RejectionReason,
		Notes:           req.Notes,
	}
	if req.ApprovedAmount != "" {
		amount, err := decimal.NewFromString(req.ApprovedAmount)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid approved_amount: %v", err)
		}
		ucReq.ApprovedAmount = &amount
	}

	result, err := h.reviewClaim.Execute(ctx, ucReq)
	if err != nil {
		h.logger.Error("failed to review claim",
			slog.String("claim_number", req.ClaimNumber),
			slog.String("new_status", req.NewStatus),
			slog.String("error", err.Error()),
		)
		return nil, statusFromError(err)
	}
	return &ReviewClaimResponse{Claim: toClaimMsg(result)}, nil
}

// GetClaim handles a claim fetch request.
func (h *InsuranceServiceHandler) GetClaim(ctx context.Context, req *GetClaimRequest) (*GetClaimResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getClaim.Execute(ctx, dto.GetClaimRequest{ClaimNumber: req.ClaimNumber})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &GetClaimResponse{Claim: toClaimMsg(result)}, nil
}

// ListClaims handles a claim list request.
func (h *InsuranceServiceHandler) ListClaims(ctx context.Context, req *ListClaimsRequest) (*ListClaimsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	results, err := h.listClaims.Execute(ctx, dto.ListClaimsRequest{
		ClaimantID:   req.ClaimantID,
		PolicyNumber: req.PolicyNumber,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	resp := &ListClaimsResponse{Claims: make([]*ClaimMsg, 0, len(results))}
	for _, result := range results {
		resp.Claims = append(resp.Claims, toClaimMsg(result))
	}
	return resp, nil
}

// ---------------------------------------------------------------------------
// mapping helpers
// ---------------------------------------------------------------------------

func toPolicyMsg(p dto.PolicyResponse) *PolicyMsg {
	msg := &PolicyMsg{
		PolicyNumber:   p.PolicyNumber,
		HolderID:       p.HolderID,
		PolicyType:     p.PolicyType,
		BasePremium:    p.BasePremium.String(),
		TotalPremium:   p.TotalPremium.String(),
		RiskMultiplier: p.RiskMultiplier,
		TermMonths:     int32(p.TermMonths),
		Status:         p.Status,
	}
	for _, c := range p.Coverages {
		msg.Coverages = append(msg.Coverages, &CoverageMsg{
			Type:       c.Type,
			Amount:     c.Amount.String(),
			Deductible: c.Deductible.String(),
		})
	}
	for _, inst := range p.Schedule {
		instMsg := &InstallmentMsg{
			Amount:  inst.Amount.String(),
			DueDate: inst.DueDate.Format(time.RFC3339),
			Paid:    inst.Paid,
		}
		if inst.PaidDate != nil {
			instMsg.PaidDate = inst.PaidDate.Format(time.RFC3339)
		}
		msg.Schedule = append(msg.Schedule, instMsg)
	}
	return msg
}

func toClaimMsg(c dto.ClaimResponse) *ClaimMsg {
	msg := &ClaimMsg{
		ClaimNumber:     c.ClaimNumber,
		PolicyNumber:    c.PolicyNumber,
		ClaimantID:      c.ClaimantID,
		ClaimType:       c.ClaimType,
		Description:     c.Description,
		IncidentDate:    c.IncidentDate.Format(time.RFC3339),
		ClaimedAmount:   c.ClaimedAmount.String(),
		RejectionReason: c.RejectionReason,
		Status:          c.Status,
		FraudRiskLevel:  c.FraudRiskLevel,
	}
	if c.ApprovedAmount != nil {
		msg.ApprovedAmount = c.ApprovedAmount.String()
	}
	if c.PaidAmount != nil {
		msg.PaidAmount = c.PaidAmount.String()
	}
	for _, change := range c.StatusHistory {
		msg.StatusHistory = append(msg.StatusHistory, &StatusChangeMsg{
			Status:    change.Status,
			ChangedBy: change.ChangedBy,
			ChangedAt: change.ChangedAt.Format(time.RFC3339),
			Notes:     change.Notes,
		})
	}
	for _, ind := range c.FraudIndicators {
		msg.FraudIndicators = append(msg.FraudIndicators, &FraudIndicatorMsg{
			Code:        ind.Code,
			Severity:    ind.Severity,
			Description: ind.Description,
		})
	}
	return msg
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// statusFromError maps domain sentinel errors onto gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrInvalidTransition),
		errors.Is(err, valueobject.ErrPolicyNotActive),
		errors.Is(err, valueobject.ErrIncompleteProfile):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrInvalidPolicyType),
		errors.Is(err, valueobject.ErrInvalidFrequency),
		errors.Is(err, valueobject.ErrCoverageExceeded),
		errors.Is(err, valueobject.ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
