package domain

import "time"

// AuditEvent records the outcome of one regeneration attempt. Events are
// append-only: they are never updated or deleted by the pipeline.
type AuditEvent struct {
	ID          string
	UserID      string
	Outcome     AuditOutcome
	Fingerprint string // empty when the attempt failed before fingerprinting
	Message     string
	CreatedAt   time.Time
}
