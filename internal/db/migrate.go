package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is IF NOT EXISTS, so
// re-running the full list on an existing database is a no-op.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id               TEXT PRIMARY KEY,
		first_name            TEXT NOT NULL DEFAULT '',
		last_name             TEXT NOT NULL DEFAULT '',

		practical             INTEGER NOT NULL DEFAULT 0,
		analytical            INTEGER NOT NULL DEFAULT 0,
		creative              INTEGER NOT NULL DEFAULT 0,
		social                INTEGER NOT NULL DEFAULT 0,
		entrepreneurial       INTEGER NOT NULL DEFAULT 0,
		organized             INTEGER NOT NULL DEFAULT 0,

		business_model        TEXT NOT NULL DEFAULT '',
		audience              TEXT NOT NULL DEFAULT '',
		tech_comfort          INTEGER NOT NULL DEFAULT 3,
		structure_flex        INTEGER NOT NULL DEFAULT 3,
		solo_team             INTEGER NOT NULL DEFAULT 3,
		interest_text         TEXT NOT NULL DEFAULT '',
		positioning_statement TEXT NOT NULL DEFAULT '',

		content_pillars_ai    TEXT,
		content_strategy_ai   TEXT,
		ai_persona_summary    TEXT NOT NULL DEFAULT '',
		ai_generated_at       TEXT,
		ai_version            TEXT NOT NULL DEFAULT '',
		ai_prompt_fingerprint TEXT NOT NULL DEFAULT '',
		ai_regen_required     INTEGER NOT NULL DEFAULT 0,

		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS ai_generation_logs (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		status      TEXT NOT NULL CHECK(status IN ('skip','success','error')),
		fingerprint TEXT,
		message     TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ai_logs_user ON ai_generation_logs(user_id, created_at)`,
}
