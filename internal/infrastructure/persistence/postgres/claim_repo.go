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

// ClaimRepo implements port.ClaimRepository.
type ClaimRepo struct {
	pool *pgxpool.Pool
}

// NewClaimRepo creates a new repository backed by PostgreSQL.
func NewClaimRepo(pool *pgxpool.Pool) *ClaimRepo {
	return &ClaimRepo{pool: pool}
}

// Save persists a claim (upsert by number with optimistic locking).
func (r *ClaimRepo) Save(ctx context.Context, claim model.Claim) error {
	history, err := json.Marshal(historyToRows(claim.StatusHistory()))
	if err != nil {
		return fmt.Errorf("marshal status history: %w", err)
	}
	indicators, err := json.Marshal(indicatorsToRows(claim.FraudIndicators()))
	if err != nil {
		return fmt.Errorf("marshal fraud indicators: %w", err)
	}

	query := `
		INSERT INTO claims (
			claim_number, policy_number, claimant_id, claim_type, description,
			incident_date, claimed_amount, approved_amount, paid_amount,
			rejection_reason, rejection_date, payment_date,
			status, status_history, fraud_indicators,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (claim_number) DO UPDATE SET
			approved_amount  = EXCLUDED.approved_amount,
			paid_amount      = EXCLUDED.paid_amount,
			rejection_reason = EXCLUDED.rejection_reason,
			rejection_date   = EXCLUDED.rejection_date,
			payment_date     = EXCLUDED.payment_date,
			status           = EXCLUDED.status,
			status_history   = EXCLUDED.status_history,
			fraud_indicators = EXCLUDED.fraud_indicators,
			version          = claims.version + 1,
			updated_at       = EXCLUDED.updated_at
		WHERE claims.version = $16
	`
	return pkgpostgres.WithTransaction(ctx, r.pool, func(q pkgpostgres.Querier) error {
		tag, err := q.Exec(ctx, query,
			claim.ClaimNumber(), claim.PolicyNumber(), claim.ClaimantID(),
			claim.ClaimType().String(), claim.Description(),
			claim.IncidentDate(), claim.ClaimedAmount(), claim.ApprovedAmount(), claim.PaidAmount(),
			claim.RejectionReason(), claim.RejectionDate(), claim.PaymentDate(),
			claim.Status().String(), history, indicators,
			claim.Version(), claim.CreatedAt(), claim.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save claim: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on claim")
		}
		return nil
	})
}

// FindByNumber retrieves a single claim.
func (r *ClaimRepo) FindByNumber(ctx context.Context, claimNumber string) (model.Claim, error) {
	query := claimSelect + ` WHERE claim_number = $1`
	row := r.pool.QueryRow(ctx, query, claimNumber)
	claim, err := scanClaim(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Claim{}, fmt.Errorf("claim %s: %w", claimNumber, port.ErrNotFound)
	}
	return claim, err
}

// FindByClaimantID retrieves all claims filed by one claimant.
func (r *ClaimRepo) FindByClaimantID(ctx context.Context, claimantID string) ([]model.Claim, error) {
	query := claimSelect + ` WHERE claimant_id = $1 ORDER BY created_at DESC`
	return r.scanMany(ctx, query, claimantID)
}

// FindByPolicyNumber retrieves all claims against one policy.
func (r *ClaimRepo) FindByPolicyNumber(ctx context.Context, policyNumber string) ([]model.Claim, error) {
	query := claimSelect + ` WHERE policy_number = $1 ORDER BY created_at DESC`
	return r.scanMany(ctx, query, policyNumber)
}

func (r *ClaimRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.Claim, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	var result []model.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, claim)
	}
	return result, rows.Err()
}

const claimSelect = `
	SELECT claim_number, policy_number, claimant_id, claim_type, description,
	       incident_date, claimed_amount, approved_amount, paid_amount,
	       rejection_reason, rejection_date, payment_date,
	       status, status_history, fraud_indicators,
	       version, created_at, updated_at
	FROM claims
`

func scanClaim(s scannable) (model.Claim, error) {
	var (
		claimNumber, policyNumber, claimantID string
		claimTypeStr, description             string
		incidentDate                          time.Time
		claimedAmount                         decimal.Decimal
		approvedAmount, paidAmount            *decimal.Decimal
		rejectionReason                       string
		rejectionDate, paymentDate            *time.Time
		statusStr                             string
		historyJSON, indicatorsJSON           []byte
		version                               int
		createdAt, updatedAt                  time.Time
	)

	err := s.Scan(
		&claimNumber, &policyNumber, &claimantID, &claimTypeStr, &description,
		&incidentDate, &claimedAmount, &approvedAmount, &paidAmount,
		&rejectionReason, &rejectionDate, &paymentDate,
		&statusStr, &historyJSON, &indicatorsJSON,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Claim{}, err
		}
		return model.Claim{}, fmt.Errorf("scan claim: %w", err)
	}

	claimType, err := valueobject.NewClaimType(claimTypeStr)
	if err != nil {
		return model.Claim{}, fmt.Errorf("parse claim type: %w", err)
	}
	status, err := valueobject.NewClaimStatus(statusStr)
	if err != nil {
		return model.Claim{}, fmt.Errorf("parse status: %w", err)
	}

	var historyRows []statusChangeRow
	if err := json.Unmarshal(historyJSON, &historyRows); err != nil {
		return model.Claim{}, fmt.Errorf("unmarshal status history: %w", err)
	}
	history, err := historyFromRows(historyRows)
	if err != nil {
		return model.Claim{}, err
	}

	var indicatorRows []fraudIndicatorRow
	if err := json.Unmarshal(indicatorsJSON, &indicatorRows); err != nil {
		return model.Claim{}, fmt.Errorf("unmarshal fraud indicators: %w", err)
	}
	indicators, err := indicatorsFromRows(indicatorRows)
	if err != nil {
		return model.Claim{}, err
	}

	return model.ReconstructClaim(
		claimNumber, policyNumber, claimantID,
		claimType, description, incidentDate,
		claimedAmount, approvedAmount, paidAmount,
		rejectionReason, rejectionDate, paymentDate,
		status, history, indicators,
		version, createdAt, updatedAt,
	), nil
}
