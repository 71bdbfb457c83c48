package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// MaxPlanListSize caps how many plans a single listing returns.
const MaxPlanListSize = 10

type Plans interface {
	List(ctx context.Context, limit int) ([]Plan, error)
}

type PlansRepository struct {
	db *bun.DB
}

var _ Plans = (*PlansRepository)(nil)

func NewPlansRepository(db *bun.DB) *PlansRepository {
	return &PlansRepository{db: db}
}

// List returns up to limit plans ordered by id. An empty table yields an
// empty slice, not an error.
func (r *PlansRepository) List(ctx context.Context, limit int) ([]Plan, error) {
	if limit <= 0 || limit > MaxPlanListSize {
		limit = MaxPlanListSize
	}
	plans := make([]Plan, 0, limit)
	err := r.db.NewSelect().Model(&plans).Order("id ASC").Limit(limit).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select plans: %w", err)
	}
	return plans, nil
}
