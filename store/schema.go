package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CreateTables creates the customers and plans tables if they do not exist,
// so the service comes up against a fresh database. Plan rows themselves are
// seeded out of band.
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*Customer)(nil),
		(*Plan)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", m, err)
		}
	}
	return nil
}
