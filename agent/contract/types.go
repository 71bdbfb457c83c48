package contract

// SupportResult is the structured decision returned for every support query.
// Risk is bounded to [0,10]; EscalationSummary is empty unless the query was
// escalated to L2.
type SupportResult struct {
	SupportAdvice     string `json:"support_advice"`
	BlockCard         bool   `json:"block_card"`
	Risk              int    `json:"risk"`
	EscalationSummary string `json:"escalation_summary"`
}

// AdviseRequest carries one customer query into the reasoning component.
// CustomerID is the already-decoded store identifier; decoding happens at the
// HTTP boundary, never here.
type AdviseRequest struct {
	CustomerID int64  `json:"customer_id"`
	Query      string `json:"query"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
