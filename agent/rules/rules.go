package rules

import (
	"time"

	contractx "github.com/hostbridge/support-agent/agent/contract"
	storex "github.com/hostbridge/support-agent/store"
)

// EntryLevelPlan is the lowest service tier; the usage rule applies to it
// only.
const EntryLevelPlan = "Basic Hosting"

const (
	upgradeAdvice  = "Your plan is active, but you are exceeding your average usage. Consider upgrading your plan."
	renewalAdvice  = "Your renewal date has passed. Please renew your plan to avoid service interruption."
	healthyAdvice  = "Your plan is active. If you have any issues, please contact support."
	notFoundAdvice = "I was unable to find your account. Please check your customer ID and try again."

	pastDueSummary = "Customer's renewal date is past due."
)

// Evaluate computes the support recommendation for a customer at a given
// instant. It is deterministic and total over any well-formed customer.
// Rule order is load-bearing: the usage rule wins over the renewal rule.
func Evaluate(c *storex.Customer, now time.Time) contractx.SupportResult {
	if c == nil {
		return NotFoundResult()
	}

	switch {
	case c.SubscribedPlan == EntryLevelPlan && c.AverageUsage > 70:
		return contractx.SupportResult{
			SupportAdvice: upgradeAdvice,
			Risk:          5,
		}
	case c.RenewalDate.Before(now):
		return contractx.SupportResult{
			SupportAdvice:     renewalAdvice,
			Risk:              9,
			EscalationSummary: pastDueSummary,
		}
	default:
		return contractx.SupportResult{
			SupportAdvice: healthyAdvice,
			Risk:          0,
		}
	}
}

// NotFoundResult is the fixed outcome for a query against an unknown
// customer. Absence is a handled outcome in the query flow, never an error.
func NotFoundResult() contractx.SupportResult {
	return contractx.SupportResult{
		SupportAdvice: notFoundAdvice,
		Risk:          0,
	}
}
