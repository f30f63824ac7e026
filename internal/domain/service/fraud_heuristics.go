package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// FraudAnalyzer – domain service for advisory fraud heuristics
// ---------------------------------------------------------------------------

const (
	recentIncidentWindow = 7 * 24 * time.Hour
	frequentClaimantMin  = 2
)

var highUtilizationThreshold = decimal.NewFromFloat(0.80)

// FraudAnalyzer evaluates a claim against its policy and the claimant's
// history and produces severity-tagged indicators. The output is advisory:
// it never blocks a lifecycle transition.
type FraudAnalyzer struct{}

// NewFraudAnalyzer returns a new analyzer instance.
func NewFraudAnalyzer() *FraudAnalyzer {
	return &FraudAnalyzer{}
}

// Analyze runs every heuristic independently and returns all that fire.
// Pure and stateless: identical inputs yield identical indicators.
func (a *FraudAnalyzer) Analyze(claim model.Claim, policy model.Policy, history []model.Claim) []model.FraudIndicator {
	indicators := make([]model.FraudIndicator, 0)

	// Incident filed within days of occurring.
	gap := claim.CreatedAt().Sub(claim.IncidentDate())
	if gap >= 0 && gap < recentIncidentWindow {
		indicators = append(indicators, model.FraudIndicator{
			Code:     "recent_incident",
			Severity: valueobject.FraudSeverityLow,
			Description: fmt.Sprintf("claim filed %d day(s) after the incident",
				int(gap.Hours()/24)),
		})
	}

	// Claim consumes most of the policy's coverage.
	totalCoverage := policy.TotalCoverage()
	if totalCoverage.IsPositive() {
		utilization := claim.ClaimedAmount().Div(totalCoverage)
		if utilization.GreaterThan(highUtilizationThreshold) {
			pct := utilization.Mul(decimal.NewFromInt(100)).Round(1)
			indicators = append(indicators, model.FraudIndicator{
				Code:        "high_coverage_utilization",
				Severity:    valueobject.FraudSeverityMedium,
				Description: fmt.Sprintf("claim uses %s%% of total policy coverage", pct),
			})
		}
	}

	// Claimant files often.
	others := 0
	for _, prior := range history {
		if prior.ClaimNumber() != claim.ClaimNumber() {
			others++
		}
	}
	if others > frequentClaimantMin {
		indicators = append(indicators, model.FraudIndicator{
			Code:        "frequent_claimant",
			Severity:    valueobject.FraudSeverityMedium,
			Description: fmt.Sprintf("claimant has %d claim(s) on record", others),
		})
	}

	return indicators
}

// OverallRiskLevel reduces a set of indicators to a single severity: the
// highest severity present, or LOW when none fired.
func (a *FraudAnalyzer) OverallRiskLevel(indicators []model.FraudIndicator) valueobject.FraudSeverity {
	level := valueobject.FraudSeverityLow
	for _, ind := range indicators {
		if ind.Severity.Rank() > level.Rank() {
			level = ind.Severity
		}
	}
	return level
}
