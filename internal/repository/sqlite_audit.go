package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsr-app/pulsr/internal/db"
	"github.com/pulsr-app/pulsr/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo using a SQLite database.
type SQLiteAuditRepo struct {
	db db.DBTX
}

// NewSQLiteAuditRepo creates a new SQLiteAuditRepo.
func NewSQLiteAuditRepo(conn db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: conn}
}

var _ AuditRepo = (*SQLiteAuditRepo)(nil)

func (r *SQLiteAuditRepo) Append(ctx context.Context, ev *domain.AuditEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	var fingerprint interface{}
	if ev.Fingerprint != "" {
		fingerprint = ev.Fingerprint
	}

	query := `INSERT INTO ai_generation_logs (id, user_id, status, fingerprint, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.UserID, string(ev.Outcome), fingerprint, ev.Message,
		ev.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("appending audit event: %w", err)
	}
	return nil
}

func (r *SQLiteAuditRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, status, fingerprint, message, created_at
		 FROM ai_generation_logs WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var (
			ev          domain.AuditEvent
			status      string
			fingerprint *string
			createdAt   string
		)
		if err := rows.Scan(&ev.ID, &ev.UserID, &status, &fingerprint, &ev.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning audit event: %w", err)
		}
		ev.Outcome = domain.AuditOutcome(status)
		if fingerprint != nil {
			ev.Fingerprint = *fingerprint
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			ev.CreatedAt = t
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit events: %w", err)
	}
	return events, nil
}
