package report

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// fakeFetcher 内存数据源，按域可注入失败
type fakeFetcher struct {
	issues     []entity.Issue
	costs      []entity.QualityCost
	complaints []entity.Complaint
	suppliers  []entity.Supplier
	equipments []entity.Equipment
	documents  []entity.Document
	kpis       []entity.KPI

	fail map[string]error

	gotRange Range
}

func (f *fakeFetcher) domainErr(domain string) error {
	if f.fail == nil {
		return nil
	}
	return f.fail[domain]
}

func (f *fakeFetcher) Issues(ctx context.Context, r Range) ([]entity.Issue, error) {
	f.gotRange = r
	return f.issues, f.domainErr("issues")
}

func (f *fakeFetcher) Costs(ctx context.Context, r Range) ([]entity.QualityCost, error) {
	return f.costs, f.domainErr("costs")
}

func (f *fakeFetcher) Complaints(ctx context.Context, r Range) ([]entity.Complaint, error) {
	return f.complaints, f.domainErr("complaints")
}

func (f *fakeFetcher) Audits(ctx context.Context, r Range) ([]entity.Audit, error) {
	return nil, f.domainErr("audits")
}

func (f *fakeFetcher) Quarantine(ctx context.Context, r Range) ([]entity.QuarantineRecord, error) {
	return nil, f.domainErr("quarantine")
}

func (f *fakeFetcher) Deviations(ctx context.Context, r Range) ([]entity.Deviation, error) {
	return nil, f.domainErr("deviations")
}

func (f *fakeFetcher) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	return f.suppliers, f.domainErr("suppliers")
}

func (f *fakeFetcher) Equipment(ctx context.Context) ([]entity.Equipment, error) {
	return f.equipments, f.domainErr("equipment")
}

func (f *fakeFetcher) Documents(ctx context.Context) ([]entity.Document, error) {
	return f.documents, f.domainErr("documents")
}

func (f *fakeFetcher) KPIs(ctx context.Context) ([]entity.KPI, error) {
	return f.kpis, f.domainErr("kpis")
}

func (f *fakeFetcher) QualityGoals(ctx context.Context) ([]entity.QualityGoal, error) {
	return nil, f.domainErr("quality_goals")
}

func (f *fakeFetcher) Benchmarks(ctx context.Context) ([]entity.Benchmark, error) {
	return nil, f.domainErr("benchmarks")
}

func (f *fakeFetcher) RiskAssessments(ctx context.Context) ([]entity.RiskAssessment, error) {
	return nil, f.domainErr("risk_assessments")
}

func newTestEngine(f Fetcher) *Engine {
	return NewEngine(f, WithClock(func() time.Time { return testNow }))
}

func TestComputeSnapshot(t *testing.T) {
	related := "i1"
	f := &fakeFetcher{
		issues: []entity.Issue{
			issue("i1", entity.IssueStatusOpen, datePtr(2026, time.January, 10), nil),
			issue("i2", entity.IssueStatusClosed, datePtr(2026, time.January, 5), datePtr(2026, time.February, 5)),
		},
		costs: []entity.QualityCost{
			{ID: "c1", Amount: 40_000, CostDate: datePtr(2026, time.January, 12), RelatedIssueID: &related},
		},
		complaints: []entity.Complaint{
			{ID: "cp1", Status: entity.ComplaintStatusOpen, ComplaintDate: datePtr(2026, time.February, 1)},
		},
		suppliers: []entity.Supplier{{ID: "s1", Name: "Acme"}},
		kpis:      []entity.KPI{{ID: "k1", Name: "FPY"}},
	}

	snap, err := newTestEngine(f).ComputeSnapshot(context.Background(), PeriodLast6Months)
	if err != nil {
		t.Fatal(err)
	}

	if len(snap.ID) != 32 {
		t.Errorf("id = %q, want 32 chars", snap.ID)
	}
	if snap.Period != PeriodLast6Months || snap.PeriodLabel != "Last 6 Months" {
		t.Errorf("period = %q %q", snap.Period, snap.PeriodLabel)
	}
	if !snap.GeneratedAt.Equal(testNow) {
		t.Errorf("generated at = %v", snap.GeneratedAt)
	}
	if len(snap.FailedDomains) != 0 {
		t.Errorf("failed domains = %v", snap.FailedDomains)
	}

	// 窗口透传给了窗口化的域
	wantRange, _ := PeriodLast6Months.Resolve(testNow)
	if !f.gotRange.Start.Equal(wantRange.Start) || !f.gotRange.End.Equal(wantRange.End) {
		t.Errorf("fetch range = %+v, want %+v", f.gotRange, wantRange)
	}

	if snap.Issues.Total != 2 || snap.Issues.OpenCount != 1 {
		t.Errorf("issues = %+v", snap.Issues)
	}
	if snap.Costs.Total != 40_000 {
		t.Errorf("costs = %+v", snap.Costs)
	}
	if len(snap.HighCostIssues) != 1 || snap.HighCostIssues[0].Issue.ID != "i1" {
		t.Errorf("high cost = %+v", snap.HighCostIssues)
	}
	if snap.Suppliers.Total != 1 || snap.Complaints.Total != 1 {
		t.Errorf("suppliers/complaints = %+v %+v", snap.Suppliers, snap.Complaints)
	}
	if len(snap.KPIs) != 1 || snap.KPIs[0].Name != "FPY" {
		t.Errorf("kpis = %+v", snap.KPIs)
	}
}

func TestComputeSnapshotPartialFailure(t *testing.T) {
	f := &fakeFetcher{
		issues: []entity.Issue{issue("i1", entity.IssueStatusOpen, datePtr(2026, time.January, 10), nil)},
		fail: map[string]error{
			"suppliers": errors.New("connection refused"),
			"costs":     errors.New("timeout"),
		},
	}

	snap, err := newTestEngine(f).ComputeSnapshot(context.Background(), PeriodLast12Months)
	if err != nil {
		t.Fatalf("partial failure must not fail the snapshot: %v", err)
	}
	if want := []string{"costs", "suppliers"}; !reflect.DeepEqual(snap.FailedDomains, want) {
		t.Errorf("failed domains = %v, want %v", snap.FailedDomains, want)
	}
	// 失败域为零值，健康域正常聚合
	if snap.Costs.Total != 0 || snap.Suppliers.Total != 0 {
		t.Errorf("failed domains must be zero-valued: %+v %+v", snap.Costs, snap.Suppliers)
	}
	if snap.Issues.Total != 1 {
		t.Errorf("issues = %+v", snap.Issues)
	}
}

func TestComputeSnapshotCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(&fakeFetcher{}).ComputeSnapshot(ctx, PeriodLast3Months)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestComputeSnapshotDeterministicID(t *testing.T) {
	e := newTestEngine(&fakeFetcher{})
	a, err := e.ComputeSnapshot(context.Background(), PeriodThisYear)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.ComputeSnapshot(context.Background(), PeriodThisYear)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("snapshot IDs must be unique per computation")
	}
}
