package contract

import "context"

// Advisor is the reasoning component behind the support query flow. Any
// backend may sit here as long as it honors the SupportResult schema and
// calls tools only through the supplied gateway.
type Advisor interface {
	Advise(ctx context.Context, req AdviseRequest, tools ToolGateway) (SupportResult, error)
}

// ToolGateway executes one named tool scoped to the current query's customer.
// Tool-level failures (unknown customer, bad args) come back inside
// ToolResult.Error; the error return is reserved for infrastructure faults.
type ToolGateway interface {
	Execute(ctx context.Context, tool string, args map[string]any) (ToolResult, error)
}
