package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/covergrid/insurance-service/internal/domain/model"
	"github.com/covergrid/insurance-service/internal/domain/port"
	pkgpostgres "github.com/covergrid/insurance-service/pkg/postgres"
)

// RiskProfileRepo implements port.RiskProfileRepository.
type RiskProfileRepo struct {
	pool *pgxpool.Pool
}

// NewRiskProfileRepo creates a new repository backed by PostgreSQL.
func NewRiskProfileRepo(pool *pgxpool.Pool) *RiskProfileRepo {
	return &RiskProfileRepo{pool: pool}
}

// Save persists a risk profile (upsert by ID with optimistic locking).
func (r *RiskProfileRepo) Save(ctx context.Context, profile model.RiskProfile) error {
	attrs, err := json.Marshal(attributesToRow(profile.Attributes()))
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}
	assessment, err := json.Marshal(assessmentToRow(profile.Assessment()))
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}

	query := `
		INSERT INTO risk_profiles (
			id, applicant_id, attributes, assessment,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			attributes = EXCLUDED.attributes,
			assessment = EXCLUDED.assessment,
			version    = risk_profiles.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE risk_profiles.version = $5
	`
	return pkgpostgres.WithTransaction(ctx, r.pool, func(q pkgpostgres.Querier) error {
		tag, err := q.Exec(ctx, query,
			profile.ID(), profile.ApplicantID(), attrs, assessment,
			profile.Version(), profile.CreatedAt(), profile.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save risk profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on risk profile")
		}
		return nil
	})
}

// FindByApplicantID retrieves the profile for a given applicant.
func (r *RiskProfileRepo) FindByApplicantID(ctx context.Context, applicantID string) (model.RiskProfile, error) {
	query := `
		SELECT id, applicant_id, attributes, assessment,
		       version, created_at, updated_at
		FROM risk_profiles
		WHERE applicant_id = $1
	`
	row := r.pool.QueryRow(ctx, query, applicantID)
	profile, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.RiskProfile{}, fmt.Errorf("risk profile for %s: %w", applicantID, port.ErrNotFound)
	}
	return profile, err
}

func scanProfile(s scannable) (model.RiskProfile, error) {
	var (
		id, applicantID       string
		attrsJSON, assessJSON []byte
		version               int
		createdAt, updatedAt  time.Time
	)

	err := s.Scan(
		&id, &applicantID, &attrsJSON, &assessJSON,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RiskProfile{}, err
		}
		return model.RiskProfile{}, fmt.Errorf("scan risk profile: %w", err)
	}

	var attrsRow attributesRow
	if err := json.Unmarshal(attrsJSON, &attrsRow); err != nil {
		return model.RiskProfile{}, fmt.Errorf("unmarshal attributes: %w", err)
	}
	attrs, err := attributesFromRow(attrsRow)
	if err != nil {
		return model.RiskProfile{}, err
	}

	var assessRow assessmentRow
	if err := json.Unmarshal(assessJSON, &assessRow); err != nil {
		return model.RiskProfile{}, fmt.Errorf("unmarshal assessment: %w", err)
	}
	assessment, err := assessmentFromRow(assessRow)
	if err != nil {
		return model.RiskProfile{}, err
	}

	return model.ReconstructRiskProfile(
		id, applicantID, attrs, assessment,
		version, createdAt, updatedAt,
	), nil
}
