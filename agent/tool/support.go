package tool

import (
	"context"
	"fmt"
	"time"

	contractx "github.com/hostbridge/support-agent/agent/contract"
	rulesx "github.com/hostbridge/support-agent/agent/rules"
	storex "github.com/hostbridge/support-agent/store"
)

// PlanStatusOutput is what customer.plan_status hands back to the model: the
// raw plan fields plus the deterministic rules assessment.
type PlanStatusOutput struct {
	Found        bool                    `json:"found"`
	Plan         string                  `json:"plan,omitempty"`
	RenewalDate  time.Time               `json:"renewal_date"`
	AverageUsage int                     `json:"average_usage"`
	Assessment   contractx.SupportResult `json:"assessment"`
}

type PlanListing struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

func executePlanStatus(ctx context.Context, deps Deps) (contractx.ToolResult, error) {
	customer, err := deps.Customers.GetByID(ctx, deps.CustomerID)
	if err != nil {
		return contractx.ToolResult{}, fmt.Errorf("plan status lookup: %w", err)
	}
	if customer == nil {
		return contractx.ToolResult{
			Tool: ToolPlanStatus,
			Result: PlanStatusOutput{
				Found:      false,
				Assessment: rulesx.NotFoundResult(),
			},
		}, nil
	}

	return contractx.ToolResult{
		Tool: ToolPlanStatus,
		Result: PlanStatusOutput{
			Found:        true,
			Plan:         customer.SubscribedPlan,
			RenewalDate:  customer.RenewalDate,
			AverageUsage: customer.AverageUsage,
			Assessment:   rulesx.Evaluate(customer, deps.Now()),
		},
	}, nil
}

func executeListPlans(ctx context.Context, deps Deps) (contractx.ToolResult, error) {
	plans, err := deps.Plans.List(ctx, storex.MaxPlanListSize)
	if err != nil {
		return contractx.ToolResult{}, fmt.Errorf("list plans: %w", err)
	}

	listings := make([]PlanListing, 0, len(plans))
	for _, p := range plans {
		listings = append(listings, PlanListing{
			Name:        p.Name,
			Description: p.Description,
			Cost:        p.Cost,
		})
	}

	return contractx.ToolResult{
		Tool:   ToolListPlans,
		Result: listings,
	}, nil
}

func executeEscalate(ctx context.Context, deps Deps, args map[string]any) (contractx.ToolResult, error) {
	rawSummary, ok := args["issue_summary"]
	if !ok {
		return contractx.ToolResult{
			Tool:  ToolEscalate,
			Error: "issue_summary is required",
		}, nil
	}
	summary, ok := rawSummary.(string)
	if !ok || summary == "" {
		return contractx.ToolResult{
			Tool:  ToolEscalate,
			Error: "issue_summary must be a non-empty string",
		}, nil
	}

	customer, err := deps.Customers.GetByID(ctx, deps.CustomerID)
	if err != nil {
		return contractx.ToolResult{}, fmt.Errorf("escalate lookup: %w", err)
	}
	if customer == nil {
		return contractx.ToolResult{
			Tool:   ToolEscalate,
			Result: "Escalation failed: Customer not found.",
		}, nil
	}

	if err := deps.Customers.SetEscalationLog(ctx, deps.CustomerID, summary); err != nil {
		return contractx.ToolResult{}, fmt.Errorf("escalate write: %w", err)
	}

	return contractx.ToolResult{
		Tool: ToolEscalate,
		Result: fmt.Sprintf(
			"Escalation Summary:\nCustomer: %s\nPlan: %s\nIssue: %s",
			customer.Name, customer.SubscribedPlan, summary,
		),
	}, nil
}
