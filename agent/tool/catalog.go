package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/hostbridge/support-agent/agent/contract"
	storex "github.com/hostbridge/support-agent/store"
)

const (
	ToolPlanStatus = "customer.plan_status"
	ToolListPlans  = "plans.list"
	ToolEscalate   = "support.escalate"
)

// Deps binds the tool surface to one query's customer identity and the shared
// record store. A fresh Deps is built per request; nothing here outlives the
// call.
type Deps struct {
	CustomerID int64
	Customers  storex.Customers
	Plans      storex.Plans
	Now        func() time.Time
}

// Executor runs one tool by name. Recoverable tool failures (unknown
// customer, bad args, unknown tool) come back in ToolResult.Error; the error
// return is reserved for store faults.
type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

var _ contractx.ToolGateway = Executor(nil)

// Execute makes Executor satisfy contract.ToolGateway.
func (e Executor) Execute(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
	return e(ctx, tool, args)
}

// Build returns the tool catalog exposed to the reasoning component together
// with an executor bound to deps.
func Build(deps Deps) ([]*schema.ToolInfo, Executor) {
	return Infos(), NewExecutor(deps)
}

func NewExecutor(deps Deps) Executor {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolPlanStatus:
			return executePlanStatus(ctx, deps)
		case ToolListPlans:
			return executeListPlans(ctx, deps)
		case ToolEscalate:
			return executeEscalate(ctx, deps, args)
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("tool=%s is not available", tool),
			}, nil
		}
	}
}

// Infos describes the three support tools in the shape the chat model binds.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolPlanStatus,
			Desc: "Look up the current customer's subscribed plan, renewal date, average usage, and a rule-based assessment of the plan state.",
		},
		{
			Name: ToolListPlans,
			Desc: "List available hosting plans with name, description, and cost.",
		},
		{
			Name: ToolEscalate,
			Desc: "Escalate the current customer's issue to Level 2 support with a detailed summary.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"issue_summary": {Type: schema.String, Desc: "Detailed summary of the issue for L2", Required: true},
			}),
		},
	}
}
