package store

import (
	"time"

	"github.com/uptrace/bun"
)

// Customer is a hosting tenant. EscalationLog holds the most recent L2
// escalation summary and is overwritten, never appended. Customers are never
// deleted by this service.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Name           string    `bun:"name,notnull"`
	SubscribedPlan string    `bun:"subscribed_plan,notnull"`
	RenewalDate    time.Time `bun:"renewal_date,notnull"`
	AverageUsage   int       `bun:"average_usage,notnull"` // percentage, >= 0
	EscalationLog  string    `bun:"escalation_log,nullzero"`
}

// Plan is a purchasable service tier. Read-only here; rows are seeded out of
// band.
type Plan struct {
	bun.BaseModel `bun:"table:plans"`

	ID          int64   `bun:"id,pk,autoincrement"`
	Name        string  `bun:"name,notnull"`
	Description string  `bun:"description"`
	Cost        float64 `bun:"cost,notnull"`
}
