package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pulsr-app/pulsr/internal/db"
	"github.com/pulsr-app/pulsr/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

var _ ProfileRepo = (*SQLiteProfileRepo)(nil)

const profileColumns = `user_id, first_name, last_name,
	practical, analytical, creative, social, entrepreneurial, organized,
	business_model, audience, tech_comfort, structure_flex, solo_team,
	interest_text, positioning_statement,
	content_pillars_ai, content_strategy_ai, ai_persona_summary,
	ai_generated_at, ai_version, ai_prompt_fingerprint, ai_regen_required,
	created_at, updated_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	now := nowUTC()
	query := `INSERT INTO profiles (user_id, first_name, last_name,
		practical, analytical, creative, social, entrepreneurial, organized,
		business_model, audience, tech_comfort, structure_flex, solo_team,
		interest_text, positioning_statement, ai_regen_required, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.FirstName, p.LastName,
		p.Practical, p.Analytical, p.Creative, p.Social, p.Entrepreneurial, p.Organized,
		p.BusinessModel, p.Audience, p.TechComfort, p.StructureFlex, p.SoloTeam,
		p.InterestText, p.PositioningStatement, boolToInt(p.RegenRequired), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = ?`, userID)

	var (
		p             domain.Profile
		pillarsJSON   sql.NullString
		strategyJSON  sql.NullString
		generatedAt   sql.NullString
		regenRequired int
		createdAt     string
		updatedAt     string
	)
	err := row.Scan(
		&p.UserID, &p.FirstName, &p.LastName,
		&p.Practical, &p.Analytical, &p.Creative, &p.Social, &p.Entrepreneurial, &p.Organized,
		&p.BusinessModel, &p.Audience, &p.TechComfort, &p.StructureFlex, &p.SoloTeam,
		&p.InterestText, &p.PositioningStatement,
		&pillarsJSON, &strategyJSON, &p.PersonaSummary,
		&generatedAt, &p.Version, &p.PromptFingerprint, &regenRequired,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	if pillarsJSON.Valid && pillarsJSON.String != "" {
		if err := json.Unmarshal([]byte(pillarsJSON.String), &p.Pillars); err != nil {
			return nil, fmt.Errorf("decoding pillars for %s: %w", userID, err)
		}
	}
	if strategyJSON.Valid && strategyJSON.String != "" {
		var s domain.Strategy
		if err := json.Unmarshal([]byte(strategyJSON.String), &s); err != nil {
			return nil, fmt.Errorf("decoding strategy for %s: %w", userID, err)
		}
		p.Strategy = &s
	}
	p.GeneratedAt = parseNullableTime(generatedAt)
	p.RegenRequired = intToBool(regenRequired)
	if t := parseNullableTime(sql.NullString{String: createdAt, Valid: true}); t != nil {
		p.CreatedAt = *t
	}
	if t := parseNullableTime(sql.NullString{String: updatedAt, Valid: true}); t != nil {
		p.UpdatedAt = *t
	}

	return &p, nil
}

func (r *SQLiteProfileRepo) SaveOnboarding(ctx context.Context, userID string, res *domain.OnboardingResult) error {
	query := `UPDATE profiles SET
		practical = ?, analytical = ?, creative = ?, social = ?,
		entrepreneurial = ?, organized = ?,
		business_model = ?, audience = ?, tech_comfort = ?, structure_flex = ?,
		solo_team = ?, interest_text = ?, positioning_statement = ?,
		ai_regen_required = 1, updated_at = ?
		WHERE user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		res.Totals[domain.TraitPractical], res.Totals[domain.TraitAnalytical],
		res.Totals[domain.TraitCreative], res.Totals[domain.TraitSocial],
		res.Totals[domain.TraitEntrepreneurial], res.Totals[domain.TraitOrganized],
		res.BusinessModel, res.Audience, res.TechComfort, res.StructureFlex,
		res.SoloTeam, res.InterestText, res.PositioningStatement,
		nowUTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("saving onboarding for %s: %w", userID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking onboarding update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProfileRepo) UpdateEnrichment(ctx context.Context, userID string, e *domain.Enrichment) error {
	pillarsJSON, err := json.Marshal(e.Pillars)
	if err != nil {
		return fmt.Errorf("encoding pillars: %w", err)
	}
	strategyJSON, err := json.Marshal(e.Strategy)
	if err != nil {
		return fmt.Errorf("encoding strategy: %w", err)
	}

	query := `UPDATE profiles SET
		content_pillars_ai = ?, content_strategy_ai = ?, ai_persona_summary = ?,
		ai_generated_at = ?, ai_version = ?, ai_prompt_fingerprint = ?,
		ai_regen_required = 0, updated_at = ?
		WHERE user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		string(pillarsJSON), string(strategyJSON), e.PersonaSummary,
		nullableTimeToString(&e.GeneratedAt), e.Version, e.PromptFingerprint,
		nowUTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("updating enrichment for %s: %w", userID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking enrichment update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return nil
}
