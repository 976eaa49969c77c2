package report

import (
	"testing"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

func deptIssue(id, status, unit string) entity.Issue {
	is := issue(id, status, datePtr(2026, time.January, 1), nil)
	if status == entity.IssueStatusClosed {
		is.ClosedAt = datePtr(2026, time.February, 1)
	}
	is.RequestingUnit = unit
	return is
}

func TestRankDepartments(t *testing.T) {
	issues := []entity.Issue{
		deptIssue("i1", entity.IssueStatusClosed, "Paint"),
		deptIssue("i2", entity.IssueStatusClosed, "Paint"),
		deptIssue("i3", entity.IssueStatusOpen, "Paint"),
		deptIssue("i4", entity.IssueStatusOpen, "Weld"),
		deptIssue("i5", entity.IssueStatusOpen, "Weld"),
		deptIssue("i6", entity.IssueStatusClosed, "Assembly"),
	}

	wall := RankDepartments(issues)
	if len(wall.Best) != 3 || len(wall.Worst) != 3 {
		t.Fatalf("wall = %+v", wall)
	}
	// Assembly 全关闭，未决为0，在最佳榜首
	if wall.Best[0].Name != "Assembly" || wall.Best[0].ClosureRate != 1 {
		t.Errorf("best head = %+v", wall.Best[0])
	}
	// Weld 未决最多，在最差榜首
	if wall.Worst[0].Name != "Weld" || wall.Worst[0].Open != 2 {
		t.Errorf("worst head = %+v", wall.Worst[0])
	}
}

func TestRankDepartmentsClosureRateTieBreak(t *testing.T) {
	issues := []entity.Issue{
		// 两部门未决同为1，Paint关闭率 2/3，Weld 0/1
		deptIssue("i1", entity.IssueStatusClosed, "Paint"),
		deptIssue("i2", entity.IssueStatusClosed, "Paint"),
		deptIssue("i3", entity.IssueStatusOpen, "Paint"),
		deptIssue("i4", entity.IssueStatusOpen, "Weld"),
	}
	wall := RankDepartments(issues)
	if wall.Best[0].Name != "Paint" {
		t.Errorf("best head = %+v, closure rate must break the tie", wall.Best[0])
	}
	if wall.Worst[0].Name != "Weld" {
		t.Errorf("worst head = %+v", wall.Worst[0])
	}
}

func TestRankDepartmentsRejectedExcluded(t *testing.T) {
	issues := []entity.Issue{
		deptIssue("i1", entity.IssueStatusRejected, "Paint"),
		deptIssue("i2", entity.IssueStatusRejected, "Paint"),
	}
	wall := RankDepartments(issues)
	if len(wall.Best) != 0 || len(wall.Worst) != 0 {
		t.Errorf("departments with only rejected records must not appear: %+v", wall)
	}
}

func TestRankDepartmentsUnitFallback(t *testing.T) {
	withDept := issue("i1", entity.IssueStatusOpen, datePtr(2026, time.January, 1), nil)
	withDept.Department = "Logistics"
	bare := issue("i2", entity.IssueStatusOpen, datePtr(2026, time.January, 1), nil)

	wall := RankDepartments([]entity.Issue{withDept, bare})
	names := map[string]bool{}
	for _, s := range wall.Best {
		names[s.Name] = true
	}
	if !names["Logistics"] || !names["Unspecified"] {
		t.Errorf("fallback names missing: %+v", wall.Best)
	}
}

func TestBuildHeatmap(t *testing.T) {
	a := deptIssue("i1", entity.IssueStatusOpen, "Paint")
	a.Severity = 8
	a.EightDRootCause = "Nozzle wear"
	b := deptIssue("i2", entity.IssueStatusOpen, "Paint")
	b.Severity = 3
	b.RootCause = "Nozzle wear"
	c := deptIssue("i3", entity.IssueStatusOpen, "Weld")
	// 未评分 → 按5计

	h := BuildHeatmap([]entity.Issue{a, b, c})
	if len(h.ByDepartment) != 2 {
		t.Fatalf("departments = %+v", h.ByDepartment)
	}
	if h.ByDepartment[0].Name != "Paint" || h.ByDepartment[0].AvgSeverity != 5.5 {
		t.Errorf("paint cell = %+v", h.ByDepartment[0])
	}
	if h.ByDepartment[1].AvgSeverity != 5 {
		t.Errorf("unscored severity must default to 5: %+v", h.ByDepartment[1])
	}
	// 结构化根因与自由文本根因归并到同一键
	if len(h.ByRootCause) != 2 || h.ByRootCause[0].Cause != "Nozzle wear" || h.ByRootCause[0].Count != 2 {
		t.Errorf("root causes = %+v", h.ByRootCause)
	}
}

func TestBuildHeatmapRootCauseTruncation(t *testing.T) {
	long := "Operator skipped the torque verification step because the fixture was misaligned during setup"
	a := deptIssue("i1", entity.IssueStatusOpen, "Weld")
	a.RootCause = long
	b := deptIssue("i2", entity.IssueStatusOpen, "Weld")
	b.RootCause = long + " again"

	h := BuildHeatmap([]entity.Issue{a, b})
	if len(h.ByRootCause) != 1 || h.ByRootCause[0].Count != 2 {
		t.Fatalf("long causes sharing a prefix must merge: %+v", h.ByRootCause)
	}
	if got := h.ByRootCause[0].Cause; len([]rune(got)) != rootCauseKeyLen {
		t.Errorf("cause key = %q, want %d-rune prefix", got, rootCauseKeyLen)
	}
}

func TestDetectCostAnomaly(t *testing.T) {
	costs := []entity.QualityCost{
		cost("c1", 100_000, timePtr(testNow.AddDate(0, -1, 0)), ""),
		cost("c2", 160_000, timePtr(testNow), ""),
	}
	anomaly := DetectCostAnomaly(costs, testNow)
	if anomaly == nil {
		t.Fatal("expected anomaly at 60% increase")
	}
	if anomaly.CurrentMonthTotal != 160_000 || anomaly.PreviousMonthTotal != 100_000 {
		t.Errorf("anomaly = %+v", anomaly)
	}
	if anomaly.IncreasePct != 60 {
		t.Errorf("increase = %.2f, want 60", anomaly.IncreasePct)
	}
}

func TestDetectCostAnomalyExactThresholdQuiet(t *testing.T) {
	costs := []entity.QualityCost{
		cost("c1", 100_000, timePtr(testNow.AddDate(0, -1, 0)), ""),
		cost("c2", 150_000, timePtr(testNow), ""),
	}
	if got := DetectCostAnomaly(costs, testNow); got != nil {
		t.Errorf("exactly 1.5x must not fire: %+v", got)
	}
}

func TestDetectCostAnomalyZeroBaselineQuiet(t *testing.T) {
	costs := []entity.QualityCost{
		cost("c1", 5_000_000, timePtr(testNow), ""),
	}
	if got := DetectCostAnomaly(costs, testNow); got != nil {
		t.Errorf("zero previous month must never fire: %+v", got)
	}
}

func TestBuildActionListEightD(t *testing.T) {
	dueToday := issue("i1", entity.IssueStatusOpen, datePtr(2026, time.February, 1), nil)
	dueToday.Type = entity.IssueTypeEightD
	dueToday.DueAt = datePtr(2026, time.March, 15)
	pastDue := issue("i2", entity.IssueStatusOpen, datePtr(2026, time.January, 1), nil)
	pastDue.Type = entity.IssueTypeEightD
	pastDue.DueAt = datePtr(2026, time.March, 1)
	// 非8D，即使超期也不上今日清单
	df := issue("i3", entity.IssueStatusOpen, datePtr(2026, time.January, 1), nil)
	df.DueAt = datePtr(2026, time.February, 1)
	closed := issue("i4", entity.IssueStatusClosed, datePtr(2026, time.January, 1), datePtr(2026, time.March, 2))
	closed.Type = entity.IssueTypeEightD
	closed.DueAt = datePtr(2026, time.February, 1)

	list := BuildActionList([]entity.Issue{dueToday, pastDue, df, closed}, nil, testNow)
	if len(list.OverdueEightD) != 2 {
		t.Fatalf("8d actions = %+v", list.OverdueEightD)
	}
	if list.OverdueEightD[0].RefID != "i2" || list.OverdueEightD[0].DaysOverdue != 14 {
		t.Errorf("head = %+v", list.OverdueEightD[0])
	}
	if list.OverdueEightD[1].RefID != "i1" || list.OverdueEightD[1].DaysOverdue != 0 {
		t.Errorf("due today = %+v", list.OverdueEightD[1])
	}
}

func TestBuildActionListScansAllCalibrations(t *testing.T) {
	// 设备最新校准正常，但一条旧的有效校准已到期：今日清单逐条扫描，仍要列出
	eq := entity.Equipment{ID: "e1", Name: "CMM-01", Status: entity.EquipmentStatusActive, Calibrations: []entity.Calibration{
		{ID: "c1", IsActive: true, CalibrationDate: datePtr(2025, time.January, 1), NextCalibrationDate: datePtr(2026, time.February, 1)},
		{ID: "c2", IsActive: true, CalibrationDate: datePtr(2026, time.February, 2), NextCalibrationDate: datePtr(2027, time.February, 2)},
	}}
	scrapped := entity.Equipment{ID: "e2", Name: "OLD-99", Status: entity.EquipmentStatusScrapped, Calibrations: []entity.Calibration{
		{ID: "c3", IsActive: true, NextCalibrationDate: datePtr(2025, time.January, 1)},
	}}

	list := BuildActionList(nil, []entity.Equipment{eq, scrapped}, testNow)
	if len(list.DueCalibrations) != 1 {
		t.Fatalf("calibration actions = %+v", list.DueCalibrations)
	}
	if list.DueCalibrations[0].RefID != "c1" || list.DueCalibrations[0].Name != "CMM-01" {
		t.Errorf("action = %+v", list.DueCalibrations[0])
	}
}
