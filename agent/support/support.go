package support

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/hostbridge/support-agent/agent/contract"
	llmx "github.com/hostbridge/support-agent/agent/llm"
	promptx "github.com/hostbridge/support-agent/agent/prompt"
	toolx "github.com/hostbridge/support-agent/agent/tool"
	storex "github.com/hostbridge/support-agent/store"
)

type advisorImpl struct {
	structuredRunner compose.Runnable[map[string]any, supportLLMOutput]
	toolRunner       compose.Runnable[map[string]any, *schema.Message]
	allowedTools     map[string]struct{}

	now func() time.Time
}

var _ contractx.Advisor = (*advisorImpl)(nil)

type supportLLMOutput struct {
	SupportAdvice     string `json:"support_advice"`
	BlockCard         bool   `json:"block_card"`
	Risk              int    `json:"risk"`
	EscalationSummary string `json:"escalation_summary,omitempty"`
}

// New builds the support advisor from LLM configuration: one model behind two
// compiled graphs, a tool-planning pass and a structured finalize pass.
func New(ctx context.Context, cfg llmx.Config) (contractx.Advisor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	modelCfg := cfg.OpenRouter()
	chatModel, err := modelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create support model: %v", contractx.ErrModelInvoke, err)
	}

	return newAdvisor(ctx, chatModel, promptx.Support())
}

func newAdvisor(
	ctx context.Context,
	chatModel einomodel.ToolCallingChatModel,
	systemPrompt string,
) (*advisorImpl, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: support system prompt", contractx.ErrPromptMissing)
	}

	structuredRunner, err := compileStructuredGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile structured support graph: %v", contractx.ErrModelInvoke, err)
	}

	tools := toolx.Infos()
	toolModel, err := chatModel.WithTools(tools)
	if err != nil {
		return nil, fmt.Errorf("%w: bind support tools: %v", contractx.ErrModelInvoke, err)
	}
	toolRunner, err := compileToolPlanningGraph(ctx, toolModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile tool planning graph: %v", contractx.ErrModelInvoke, err)
	}

	allowedTools := make(map[string]struct{}, len(tools))
	for _, t := range tools {
		if t == nil || strings.TrimSpace(t.Name) == "" {
			continue
		}
		allowedTools[t.Name] = struct{}{}
	}

	return &advisorImpl{
		structuredRunner: structuredRunner,
		toolRunner:       toolRunner,
		allowedTools:     allowedTools,
		now:              time.Now,
	}, nil
}

// Advise runs one support query end to end: the model first decides which
// tools to call, the requested tools run through the gateway, and a second
// pass produces the schema-checked SupportResult.
func (a *advisorImpl) Advise(
	ctx context.Context,
	req contractx.AdviseRequest,
	tools contractx.ToolGateway,
) (contractx.SupportResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return contractx.SupportResult{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}
	if tools == nil {
		return contractx.SupportResult{}, fmt.Errorf("%w: tool gateway is required", contractx.ErrValidation)
	}

	toolRequests, err := a.planTools(ctx, req)
	if err != nil {
		return contractx.SupportResult{}, err
	}

	toolResults := make([]contractx.ToolResult, 0, len(toolRequests))
	for _, tr := range toolRequests {
		out, err := tools.Execute(ctx, tr.Tool, tr.Args)
		if err != nil {
			return contractx.SupportResult{}, fmt.Errorf("execute tool=%s: %w", tr.Tool, err)
		}
		toolResults = append(toolResults, out)
	}

	return a.finalize(ctx, req, toolResults)
}

func (a *advisorImpl) planTools(ctx context.Context, req contractx.AdviseRequest) ([]contractx.ToolRequest, error) {
	input, err := a.marshalPayload(map[string]any{
		"mode":        "act",
		"customer_id": storex.FormatCustomerID(req.CustomerID),
		"query":       req.Query,
	})
	if err != nil {
		return nil, err
	}

	msg, err := a.toolRunner.Invoke(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: tool planning invoke: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: empty tool planning response", contractx.ErrSchemaViolation)
	}

	toolRequests, err := toToolRequests(msg.ToolCalls)
	if err != nil {
		return nil, err
	}

	for _, tr := range toolRequests {
		if _, ok := a.allowedTools[tr.Tool]; !ok {
			return nil, fmt.Errorf("%w: tool=%s is not in the support catalog", contractx.ErrSchemaViolation, tr.Tool)
		}
	}
	return toolRequests, nil
}

func (a *advisorImpl) finalize(
	ctx context.Context,
	req contractx.AdviseRequest,
	toolResults []contractx.ToolResult,
) (contractx.SupportResult, error) {
	input, err := a.marshalPayload(map[string]any{
		"mode":         "finalize",
		"customer_id":  storex.FormatCustomerID(req.CustomerID),
		"query":        req.Query,
		"tool_results": toolResults,
	})
	if err != nil {
		return contractx.SupportResult{}, err
	}

	out, err := a.structuredRunner.Invoke(ctx, input)
	if err != nil {
		return contractx.SupportResult{}, fmt.Errorf("%w: support invoke: %v", contractx.ErrModelInvoke, err)
	}

	advice := strings.TrimSpace(out.SupportAdvice)
	if advice == "" {
		return contractx.SupportResult{}, fmt.Errorf("%w: support_advice is empty", contractx.ErrSchemaViolation)
	}
	if out.Risk < 0 || out.Risk > 10 {
		return contractx.SupportResult{}, fmt.Errorf("%w: risk=%d outside [0,10]", contractx.ErrSchemaViolation, out.Risk)
	}

	return contractx.SupportResult{
		SupportAdvice:     advice,
		BlockCard:         out.BlockCard,
		Risk:              out.Risk,
		EscalationSummary: strings.TrimSpace(out.EscalationSummary),
	}, nil
}

func (a *advisorImpl) marshalPayload(payload map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal support payload: %v", contractx.ErrValidation, err)
	}
	return map[string]any{
		"input":        string(raw),
		"current_time": a.now().Format(time.RFC1123),
	}, nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{
			Tool: tool,
			Args: args,
		})
	}
	return reqs, nil
}
