package tool

import (
	"context"
	"errors"
	"testing"
	"time"

	storex "github.com/hostbridge/support-agent/store"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type memCustomers struct {
	customers map[int64]*storex.Customer
	failWith  error
}

func (m *memCustomers) Create(_ context.Context, c *storex.Customer) error {
	if m.failWith != nil {
		return m.failWith
	}
	c.ID = int64(len(m.customers) + 1)
	m.customers[c.ID] = c
	return nil
}

func (m *memCustomers) GetByID(_ context.Context, id int64) (*storex.Customer, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomers) SetEscalationLog(_ context.Context, id int64, summary string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if c, ok := m.customers[id]; ok {
		c.EscalationLog = summary
	}
	return nil
}

type memPlans struct {
	plans    []storex.Plan
	failWith error
}

func (m *memPlans) List(_ context.Context, limit int) ([]storex.Plan, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if limit > len(m.plans) {
		limit = len(m.plans)
	}
	return append([]storex.Plan(nil), m.plans[:limit]...), nil
}

func testDeps(customers *memCustomers, plans *memPlans) Deps {
	if customers == nil {
		customers = &memCustomers{customers: map[int64]*storex.Customer{}}
	}
	if plans == nil {
		plans = &memPlans{}
	}
	return Deps{
		CustomerID: 1,
		Customers:  customers,
		Plans:      plans,
		Now:        func() time.Time { return testNow },
	}
}

func TestBuildCatalog(t *testing.T) {
	t.Parallel()

	infos, executor := Build(testDeps(nil, nil))
	if len(infos) != 3 {
		t.Fatalf("expected 3 tool infos, got %d", len(infos))
	}
	if infos[0].Name != ToolPlanStatus || infos[1].Name != ToolListPlans || infos[2].Name != ToolEscalate {
		t.Fatalf("unexpected tool order: %s, %s, %s", infos[0].Name, infos[1].Name, infos[2].Name)
	}
	if executor == nil {
		t.Fatal("executor must not be nil")
	}
}

func TestExecutorUnknownTool(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(testDeps(nil, nil))
	out, err := executor(context.Background(), "billing.refund", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("unknown tool must report a structured error")
	}
}

func TestPlanStatusFound(t *testing.T) {
	t.Parallel()

	customers := &memCustomers{customers: map[int64]*storex.Customer{
		1: {
			ID:             1,
			Name:           "Acme Hosting Co",
			SubscribedPlan: "Basic Hosting",
			AverageUsage:   85,
			RenewalDate:    testNow.AddDate(1, 0, 0),
		},
	}}

	executor := NewExecutor(testDeps(customers, nil))
	out, err := executor(context.Background(), ToolPlanStatus, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status, ok := out.Result.(PlanStatusOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if !status.Found {
		t.Fatal("customer must be found")
	}
	if status.Plan != "Basic Hosting" || status.AverageUsage != 85 {
		t.Fatalf("unexpected plan fields: %+v", status)
	}
	if status.Assessment.Risk != 5 {
		t.Fatalf("assessment risk = %d, want 5", status.Assessment.Risk)
	}
}

func TestPlanStatusNotFound(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(testDeps(nil, nil))
	out, err := executor(context.Background(), ToolPlanStatus, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status, ok := out.Result.(PlanStatusOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if status.Found {
		t.Fatal("customer must not be found")
	}
	if status.Assessment.Risk != 0 || status.Assessment.EscalationSummary != "" {
		t.Fatalf("not-found assessment has unexpected fields: %+v", status.Assessment)
	}
}

func TestPlanStatusStoreFaultPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	customers := &memCustomers{customers: map[int64]*storex.Customer{}, failWith: boom}

	executor := NewExecutor(testDeps(customers, nil))
	_, err := executor(context.Background(), ToolPlanStatus, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped store fault", err)
	}
}

func TestListPlansBounded(t *testing.T) {
	t.Parallel()

	plans := &memPlans{}
	for i := 0; i < 25; i++ {
		plans.plans = append(plans.plans, storex.Plan{Name: "Plan", Cost: float64(i)})
	}

	executor := NewExecutor(testDeps(nil, plans))
	out, err := executor(context.Background(), ToolListPlans, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listings, ok := out.Result.([]PlanListing)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if len(listings) != storex.MaxPlanListSize {
		t.Fatalf("listing size = %d, want %d", len(listings), storex.MaxPlanListSize)
	}
}

func TestListPlansEmpty(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(testDeps(nil, nil))
	out, err := executor(context.Background(), ToolListPlans, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listings, ok := out.Result.([]PlanListing)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if len(listings) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(listings))
	}
}

func TestEscalateOverwritesLog(t *testing.T) {
	t.Parallel()

	customers := &memCustomers{customers: map[int64]*storex.Customer{
		1: {ID: 1, Name: "Acme Hosting Co", SubscribedPlan: "Pro Hosting"},
	}}

	executor := NewExecutor(testDeps(customers, nil))

	for _, summary := range []string{"site down despite active plan", "site down despite active plan"} {
		out, err := executor(context.Background(), ToolEscalate, map[string]any{"issue_summary": summary})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, ok := out.Result.(string)
		if !ok {
			t.Fatalf("unexpected result type: %T", out.Result)
		}
		if text == "" || out.Error != "" {
			t.Fatalf("unexpected escalation output: %+v", out)
		}
	}

	// Repeated identical calls leave exactly the last summary written.
	if got := customers.customers[1].EscalationLog; got != "site down despite active plan" {
		t.Fatalf("escalation log = %q", got)
	}
}

func TestEscalateUnknownCustomer(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(testDeps(nil, nil))
	out, err := executor(context.Background(), ToolEscalate, map[string]any{"issue_summary": "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result != "Escalation failed: Customer not found." {
		t.Fatalf("unexpected result: %v", out.Result)
	}
}

func TestEscalateMissingSummary(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(testDeps(nil, nil))
	out, err := executor(context.Background(), ToolEscalate, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("missing issue_summary must yield a structured error")
	}
}
