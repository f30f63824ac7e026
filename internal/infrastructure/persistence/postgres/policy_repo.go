package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	"github.com/covergrid/insurance-service/internal/domain/valueobject"
	pkgpostgres "github.com/covergrid/insurance-service/pkg/postgres"
)

// PolicyRepo implements port.PolicyRepository.
type PolicyRepo struct {
	pool *pgxpool.Pool
}

// NewPolicyRepo creates a new repository backed by PostgreSQL.
func NewPolicyRepo(pool *pgxpool.Pool) *PolicyRepo {
	return &PolicyRepo{pool: pool}
}

// Save persists a policy (upsert by number with optimistic locking).
func (r *PolicyRepo) Save(ctx context.Context, policy model.Policy) error {
	coverages, err := json.Marshal(coveragesToRows(policy.Coverages()))
	if err != nil {
		return fmt.Errorf("marshal coverages: %w", err)
	}
	schedule := policy.Schedule()
	scheduleJSON, err := json.Marshal(scheduleToRows(schedule))
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	frequency := ""
	if len(schedule) > 0 {
		frequency = schedule[0].Frequency.String()
	}

	query := `
		INSERT INTO policies (
			policy_number, holder_id, policy_type, coverages,
			base_premium, total_premium, schedule, payment_frequency,
			risk_multiplier, term_months, status,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (policy_number) DO UPDATE SET
			schedule   = EXCLUDED.schedule,
			status     = EXCLUDED.status,
			version    = policies.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE policies.version = $12
	`
	return pkgpostgres.WithTransaction(ctx, r.pool, func(q pkgpostgres.Querier) error {
		tag, err := q.Exec(ctx, query,
			policy.PolicyNumber(), policy.HolderID(), policy.PolicyType().String(), coverages,
			policy.BasePremium(), policy.TotalPremium(), scheduleJSON, frequency,
			policy.RiskMultiplier(), policy.TermMonths(), policy.Status().String(),
			policy.Version(), policy.CreatedAt(), policy.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save policy: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on policy")
		}
		return nil
	})
}

// FindByNumber retrieves a single policy.
func (r *PolicyRepo) FindByNumber(ctx context.Context, policyNumber string) (model.Policy, error) {
	query := policySelect + ` WHERE policy_number = $1`
	row := r.pool.QueryRow(ctx, query, policyNumber)
	policy, err := scanPolicy(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Policy{}, fmt.Errorf("policy %s: %w", policyNumber, port.ErrNotFound)
	}
	return policy, err
}

// FindByHolderID retrieves all policies held by one person.
func (r *PolicyRepo) FindByHolderID(ctx context.Context, holderID string) ([]model.Policy, error) {
	query := policySelect + ` WHERE holder_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("query policies: %w", err)
	}
	defer rows.Close()

	var result []model.Policy
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, policy)
	}
	return result, rows.Err()
}

const policySelect = `
	SELECT policy_number, holder_id, policy_type, coverages,
	       base_premium, total_premium, schedule, payment_frequency,
	       risk_multiplier, term_months, status,
	       version, created_at, updated_at
	FROM policies
`

func scanPolicy(s scannable) (model.Policy, error) {
	var (
		policyNumber, holderID    string
		policyTypeStr             string
		coveragesJSON             []byte
		basePremium, totalPremium decimal.Decimal
		scheduleJSON              []byte
		frequencyStr              string
		riskMultiplier            float64
		termMonths                int
		statusStr                 string
		version                   int
		createdAt, updatedAt      time.Time
	)

	err := s.Scan(
		&policyNumber, &holderID, &policyTypeStr, &coveragesJSON,
		&basePremium, &totalPremium, &scheduleJSON, &frequencyStr,
		&riskMultiplier, &termMonths, &statusStr,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Policy{}, err
		}
		return model.Policy{}, fmt.Errorf("scan policy: %w", err)
	}

	policyType, err := valueobject.NewPolicyType(policyTypeStr)
	if err != nil {
		return model.Policy{}, fmt.Errorf("parse policy type: %w", err)
	}
	status, err := valueobject.NewPolicyStatus(statusStr)
	if err != nil {
		return model.Policy{}, fmt.Errorf("parse status: %w", err)
	}
	var frequency valueobject.PaymentFrequency
	if frequencyStr != "" {
		frequency, err = valueobject.NewPaymentFrequency(frequencyStr)
		if err != nil {
			return model.Policy{}, fmt.Errorf("parse frequency: %w", err)
		}
	}

	var coverageRows []coverageRow
	if err := json.Unmarshal(coveragesJSON, &coverageRows); err != nil {
		return model.Policy{}, fmt.Errorf("unmarshal coverages: %w", err)
	}
	var scheduleRows []installmentRow
	if err := json.Unmarshal(scheduleJSON, &scheduleRows); err != nil {
		return model.Policy{}, fmt.Errorf("unmarshal schedule: %w", err)
	}

	return model.ReconstructPolicy(
		policyNumber, holderID, policyType,
		coveragesFromRows(coverageRows),
		basePremium, totalPremium,
		scheduleFromRows(scheduleRows, frequency),
		riskMultiplier, termMonths, status,
		version, createdAt, updatedAt,
	), nil
}
