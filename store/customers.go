package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Customers is the customer record store. Absent rows are reported as
// (nil, nil), not as an error; the caller decides whether absence matters.
type Customers interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id int64) (*Customer, error)
	SetEscalationLog(ctx context.Context, id int64, summary string) error
}

type CustomersRepository struct {
	db *bun.DB
}

var _ Customers = (*CustomersRepository)(nil)

func NewCustomersRepository(db *bun.DB) *CustomersRepository {
	return &CustomersRepository{db: db}
}

// Create inserts the customer and fills in the generated id.
func (r *CustomersRepository) Create(ctx context.Context, c *Customer) error {
	if _, err := r.db.NewInsert().Model(c).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomersRepository) GetByID(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := r.db.NewSelect().Model(&c).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer id=%d: %w", id, err)
	}
	return &c, nil
}

// SetEscalationLog overwrites the escalation log for the customer. Concurrent
// writers race with last-write-wins semantics; no ordering is guaranteed.
func (r *CustomersRepository) SetEscalationLog(ctx context.Context, id int64, summary string) error {
	_, err := r.db.NewUpdate().
		Model((*Customer)(nil)).
		Set("escalation_log = ?", summary).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update escalation log id=%d: %w", id, err)
	}
	return nil
}
