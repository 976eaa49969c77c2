package report

import (
	"testing"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

func scorePtr(v float64) *float64 { return &v }

func TestGradeBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "A"}, {90, "A"}, {89.9, "B"}, {75, "B"}, {74.9, "C"}, {60, "C"}, {59.9, "D"}, {0, "D"},
	}
	for _, c := range cases {
		var g GradeDistribution
		gradeOf(c.score)(&g)
		got := ""
		switch {
		case g.A == 1:
			got = "A"
		case g.B == 1:
			got = "B"
		case g.C == 1:
			got = "C"
		case g.D == 1:
			got = "D"
		}
		if got != c.want {
			t.Errorf("score %.1f graded %s, want %s", c.score, got, c.want)
		}
	}
}

func TestLatestScoredAuditPicksNewestCompleted(t *testing.T) {
	plans := []entity.SupplierAuditPlan{
		// 最新但未完成，必须被忽略
		{ID: "p3", Status: entity.AuditPlanStatusPlanned, Score: scorePtr(99), PlannedDate: datePtr(2026, time.March, 1)},
		// 已完成但无评分，必须被忽略
		{ID: "p4", Status: entity.AuditPlanStatusCompleted, ActualDate: datePtr(2026, time.February, 20)},
		{ID: "p1", Status: entity.AuditPlanStatusCompleted, Score: scorePtr(80), ActualDate: datePtr(2025, time.June, 1)},
		{ID: "p2", Status: entity.AuditPlanStatusCompleted, Score: scorePtr(62), ActualDate: datePtr(2026, time.January, 10)},
	}
	got := latestScoredAudit(plans)
	if got == nil || got.ID != "p2" {
		t.Fatalf("latest scored audit = %+v, want p2", got)
	}
}

func TestLatestScoredAuditFallsBackToPlannedDate(t *testing.T) {
	plans := []entity.SupplierAuditPlan{
		{ID: "p1", Status: entity.AuditPlanStatusCompleted, Score: scorePtr(70), PlannedDate: datePtr(2026, time.February, 1)},
		{ID: "p2", Status: entity.AuditPlanStatusCompleted, Score: scorePtr(91), ActualDate: datePtr(2026, time.January, 1)},
	}
	got := latestScoredAudit(plans)
	if got == nil || got.ID != "p1" {
		t.Fatalf("latest scored audit = %+v, want p1 via planned date", got)
	}
}

func TestAggregateSuppliersGradesAndRanking(t *testing.T) {
	suppliers := []entity.Supplier{
		{ID: "s1", Name: "Acme", AuditPlans: []entity.SupplierAuditPlan{
			{ID: "p1", Status: entity.AuditPlanStatusCompleted, Score: scorePtr(92), ActualDate: datePtr(2026, time.January, 1)},
		}, Issues: []entity.Issue{{ID: "i1"}, {ID: "i2"}}},
		{ID: "s2", Name: "Beta", AuditPlans: []entity.SupplierAuditPlan{
			{ID: "p2", Status: entity.AuditPlanStatusCompleted, Score: scorePtr(55), ActualDate: datePtr(2026, time.January, 1)},
		}, Issues: []entity.Issue{{ID: "i3"}, {ID: "i4"}}},
		{ID: "s3", Name: "Gamma"},
	}

	m := AggregateSuppliers(suppliers)
	if m.Total != 3 {
		t.Errorf("total = %d", m.Total)
	}
	if m.Grades.A != 1 || m.Grades.D != 1 || m.Grades.Unscored != 1 {
		t.Errorf("grades = %+v", m.Grades)
	}
	if len(m.TopByIssues) != 2 {
		t.Fatalf("top by issues = %+v", m.TopByIssues)
	}
	// 同样两条不合格项，按名称升序
	if m.TopByIssues[0].Name != "Acme" || m.TopByIssues[1].Name != "Beta" {
		t.Errorf("ranking order = %+v", m.TopByIssues)
	}
}

func TestAggregateSuppliersCapsTopTen(t *testing.T) {
	var suppliers []entity.Supplier
	for i := 0; i < 15; i++ {
		suppliers = append(suppliers, entity.Supplier{
			ID:     string(rune('a' + i)),
			Name:   string(rune('a' + i)),
			Issues: make([]entity.Issue, i+1),
		})
	}
	m := AggregateSuppliers(suppliers)
	if len(m.TopByIssues) != topSupplierLimit {
		t.Errorf("top list length = %d, want %d", len(m.TopByIssues), topSupplierLimit)
	}
	if m.TopByIssues[0].Count != 15 {
		t.Errorf("head of ranking = %+v", m.TopByIssues[0])
	}
}
