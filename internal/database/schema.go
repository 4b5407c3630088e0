package database

import (
	"context"
	"fmt"
)

// Schema statements applied at startup. Tables stay schemaless; the unique
// indexes are the authoritative enforcement for the uniqueness invariants
// (user email, amenity name, one review per author per place). Concurrent
// writers racing past the application-level checks lose here instead.
var schemaStatements = []string{
	`DEFINE INDEX IF NOT EXISTS idx_user_email ON TABLE user FIELDS email UNIQUE`,
	`DEFINE INDEX IF NOT EXISTS idx_amenity_name ON TABLE amenity FIELDS name UNIQUE`,
	`DEFINE INDEX IF NOT EXISTS idx_review_author_place ON TABLE review FIELDS author, place UNIQUE`,
}

// EnsureSchema applies index definitions. Idempotent; safe to run on every boot.
func EnsureSchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("apply schema statement %q: %w", stmt, err)
		}
	}
	return nil
}
