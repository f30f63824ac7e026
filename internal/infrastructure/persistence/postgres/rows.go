package postgres

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
)

type scannable interface {
	Scan(dest ...any) error
}

// JSONB row shapes. Value objects are stored as plain strings so the domain
// types stay free of persistence concerns; conversion happens here.

type attributesRow struct {
	Age                  int              `json:"age"`
	Occupation           string           `json:"occupation,omitempty"`
	AnnualIncome         *decimal.Decimal `json:"annual_income,omitempty"`
	EmploymentStatus     string           `json:"employment_status,omitempty"`
	HasChronicIllness    bool             `json:"has_chronic_illness"`
	Smoker               bool             `json:"smoker"`
	BMI                  *float64         `json:"bmi,omitempty"`
	HasDangerousHobbies  bool             `json:"has_dangerous_hobbies"`
	Hobbies              []string         `json:"hobbies,omitempty"`
	CreditScore          *int             `json:"credit_score,omitempty"`
	HasBankruptcyHistory bool             `json:"has_bankruptcy_history"`
	RiskZone             string           `json:"risk_zone,omitempty"`
}

type factorRow struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type assessmentRow struct {
	Factors           []factorRow `json:"factors,omitempty"`
	OverallScore      int         `json:"overall_score"`
	Category          string      `json:"category,omitempty"`
	PremiumMultiplier float64     `json:"premium_multiplier"`
}

type coverageRow struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Deductible decimal.Decimal `json:"deductible"`
}

type installmentRow struct {
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	Paid     bool            `json:"paid"`
	PaidDate *time.Time      `json:"paid_date,omitempty"`
}

type statusChangeRow struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes,omitempty"`
}

type fraudIndicatorRow struct {
	Code        string `json:"code"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// ---------------------------------------------------------------------------
// domain -> row
// ---------------------------------------------------------------------------

func attributesToRow(attrs model.ProfileAttributes) attributesRow {
	return attributesRow{
		Age:                  attrs.Age,
		Occupation:           attrs.Occupation.String(),
		AnnualIncome:         attrs.AnnualIncome,
		EmploymentStatus:     attrs.EmploymentStatus.String(),
		HasChronicIllness:    attrs.HasChronicIllness,
		Smoker:               attrs.Smoker,
		BMI:                  attrs.BMI,
		HasDangerousHobbies:  attrs.HasDangerousHobbies,
		Hobbies:              attrs.Hobbies,
		CreditScore:          attrs.CreditScore,
		HasBankruptcyHistory: attrs.HasBankruptcyHistory,
		RiskZone:             attrs.RiskZone.String(),
	}
}

func assessmentToRow(a model.RiskAssessment) assessmentRow {
	row := assessmentRow{
		OverallScore:      a.OverallScore,
		Category:          a.Category.String(),
		PremiumMultiplier: a.PremiumMultiplier,
	}
	for _, f := range a.Factors {
		row.Factors = append(row.Factors, factorRow{
			Category:    f.Category,
			Name:        f.Name,
			Level:       f.Level.String(),
			Multiplier:  f.Multiplier,
			Description: f.Description,
		})
	}
	return row
}

func coveragesToRows(coverages []model.Coverage) []coverageRow {
	rows := make([]coverageRow, 0, len(coverages))
	for _, c := range coverages {
		rows = append(rows, coverageRow(c))
	}
	return rows
}

func scheduleToRows(schedule []model.Installment) []installmentRow {
	rows := make([]installmentRow, 0, len(schedule))
	for _, inst := range schedule {
		rows = append(rows, installmentRow{
			Amount:   inst.Amount,
			DueDate:  inst.DueDate,
			Paid:     inst.Paid,
			PaidDate: inst.PaidDate,
		})
	}
	return rows
}

func historyToRows(history []model.StatusChange) []statusChangeRow {
	rows := make([]statusChangeRow, 0, len(history))
	for _, change := range history {
		rows = append(rows, statusChangeRow{
			Status:    change.Status.String(),
			ChangedBy: change.ChangedBy,
			ChangedAt: change.ChangedAt,
			Notes:     change.Notes,
		})
	}
	return rows
}

func indicatorsToRows(indicators []model.FraudIndicator) []fraudIndicatorRow {
	rows := make([]fraudIndicatorRow, 0, len(indicators))
	for _, ind := range indicators {
		rows = append(rows, fraudIndicatorRow{
			Code:        ind.Code,
			Severity:    ind.Severity.String(),
			Description: ind.Description,
		})
	}
	return rows
}

// ---------------------------------------------------------------------------
// row -> domain
// ---------------------------------------------------------------------------

func attributesFromRow(row attributesRow) (model.ProfileAttributes, error) {
	attrs := model.ProfileAttributes{
		Age:                  row.Age,
		AnnualIncome:         row.AnnualIncome,
		HasChronicIllness:    row.HasChronicIllness,
		Smoker:               row.Smoker,
		BMI:                  row.BMI,
		HasDangerousHobbies:  row.HasDangerousHobbies,
		Hobbies:              row.Hobbies,
		CreditScore:          row.CreditScore,
		HasBankruptcyHistory: row.HasBankruptcyHistory,
	}
	if row.Occupation != "" {
		occupation, err := valueobject.NewOccupation(row.Occupation)
		if err != nil {
			return model.ProfileAttributes{}, fmt.Errorf("parse occupation: %w", err)
		}
		attrs.Occupation = occupation
	}
	if row.EmploymentStatus != "" {
		employment, err := valueobject.NewEmploymentStatus(row.EmploymentStatus)
		if err != nil {
			return model.ProfileAttributes{}, fmt.Errorf("parse employment status: %w", err)
		}
		attrs.EmploymentStatus = employment
	}
	if row.RiskZone != "" {
		zone, err := valueobject.NewRiskZone(row.RiskZone)
		if err != nil {
			return model.ProfileAttributes{}, fmt.Errorf("parse risk zone: %w", err)
		}
		attrs.RiskZone = zone
	}
	return attrs, nil
}

func assessmentFromRow(row assessmentRow) (model.RiskAssessment, error) {
	assessment := model.RiskAssessment{
		OverallScore:      row.OverallScore,
		PremiumMultiplier: row.PremiumMultiplier,
	}
	if row.Category != "" {
		category, err := valueobject.RiskCategoryFromString(row.Category)
		if err != nil {
			return model.RiskAssessment{}, fmt.Errorf("parse risk category: %w", err)
		}
		assessment.Category = category
	}
	for _, f := range row.Factors {
		level, err := valueobject.FactorLevelFromString(f.Level)
		if err != nil {
			return model.RiskAssessment{}, fmt.Errorf("parse factor level: %w", err)
		}
		assessment.Factors = append(assessment.Factors, model.RiskFactor{
			Category:    f.Category,
			Name:        f.Name,
			Level:       level,
			Multiplier:  f.Multiplier,
			Description: f.Description,
		})
	}
	return assessment, nil
}

func coveragesFromRows(rows []coverageRow) []model.Coverage {
	coverages := make([]model.Coverage, 0, len(rows))
	for _, row := range rows {
		coverages = append(coverages, model.Coverage(row))
	}
	return coverages
}

func scheduleFromRows(rows []installmentRow, frequency valueobject.PaymentFrequency) []model.Installment {
	schedule := make([]model.Installment, 0, len(rows))
	for _, row := range rows {
		schedule = append(schedule, model.Installment{
			Frequency: frequency,
			Amount:    row.Amount,
			DueDate:   row.DueDate,
			Paid:      row.Paid,
			PaidDate:  row.PaidDate,
		})
	}
	return schedule
}

func historyFromRows(rows []statusChangeRow) ([]model.StatusChange, error) {
	history := make([]model.StatusChange, 0, len(rows))
	for _, row := range rows {
		status, err := valueobject.NewClaimStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("parse history status: %w", err)
		}
		history = append(history, model.StatusChange{
			Status:    status,
			ChangedBy: row.ChangedBy,
			ChangedAt: row.ChangedAt,
			Notes:     row.Notes,
		})
	}
	return history, nil
}

func indicatorsFromRows(rows []fraudIndicatorRow) ([]model.FraudIndicator, error) {
	indicators := make([]model.FraudIndicator, 0, len(rows))
	for _, row := range rows {
		severity, err := valueobject.FraudSeverityFromString(row.Severity)
		if err != nil {
			return nil, fmt.Errorf("parse indicator severity: %w", err)
		}
		indicators = append(indicators, model.FraudIndicator{
			Code:        row.Code,
			Severity:    severity,
			Description: row.Description,
		})
	}
	return indicators, nil
}
