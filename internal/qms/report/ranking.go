package report

import (
	"math"
	"sort"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

const (
	wallLimit        = 3
	heatmapLimit     = 10
	rootCauseKeyLen  = 50
	anomalyThreshold = 1.5
)

// DepartmentScore 部门质量表现
type DepartmentScore struct {
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	Open        int     `json:"open"`
	Closed      int     `json:"closed"`
	ClosureRate float64 `json:"closure_rate"` // closed/total，无记录时为0
}

// QualityWall 质量墙：最佳/最差部门各Top3
type QualityWall struct {
	Best  []DepartmentScore `json:"best"`
	Worst []DepartmentScore `json:"worst"`
}

// wallDept 质量墙部门键：申请单位，回退开立部门
func wallDept(i entity.Issue) string {
	if i.RequestingUnit != "" {
		return i.RequestingUnit
	}
	if i.Department != "" {
		return i.Department
	}
	return "Unspecified"
}

// RankDepartments 部门排名。被驳回的记录整体排除，不进入任何一项计数。
func RankDepartments(issues []entity.Issue) QualityWall {
	stats := map[string]*DepartmentScore{}
	for _, is := range issues {
		if is.Status == entity.IssueStatusRejected {
			continue
		}
		dept := wallDept(is)
		s, ok := stats[dept]
		if !ok {
			s = &DepartmentScore{Name: dept}
			stats[dept] = s
		}
		s.Total++
		if is.Status == entity.IssueStatusClosed {
			s.Closed++
		} else {
			s.Open++
		}
	}

	scored := make([]DepartmentScore, 0, len(stats))
	for _, s := range stats {
		if s.Total > 0 {
			s.ClosureRate = float64(s.Closed) / float64(s.Total)
		}
		scored = append(scored, *s)
	}

	best := append([]DepartmentScore(nil), scored...)
	sort.Slice(best, func(i, j int) bool {
		if best[i].Open != best[j].Open {
			return best[i].Open < best[j].Open
		}
		if best[i].ClosureRate != best[j].ClosureRate {
			return best[i].ClosureRate > best[j].ClosureRate
		}
		return best[i].Name < best[j].Name
	})

	worst := append([]DepartmentScore(nil), scored...)
	sort.Slice(worst, func(i, j int) bool {
		if worst[i].Open != worst[j].Open {
			return worst[i].Open > worst[j].Open
		}
		if worst[i].ClosureRate != worst[j].ClosureRate {
			return worst[i].ClosureRate < worst[j].ClosureRate
		}
		return worst[i].Name < worst[j].Name
	})

	if len(best) > wallLimit {
		best = best[:wallLimit]
	}
	if len(worst) > wallLimit {
		worst = worst[:wallLimit]
	}
	return QualityWall{Best: best, Worst: worst}
}

// HeatmapCell 部门热力格
type HeatmapCell struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	AvgSeverity float64 `json:"avg_severity"` // 保留1位小数
}

// RootCauseCount 根因计数
type RootCauseCount struct {
	Cause string `json:"cause"`
	Count int    `json:"count"`
}

// Heatmap 根因热力图
type Heatmap struct {
	ByDepartment []HeatmapCell    `json:"by_department"`
	ByRootCause  []RootCauseCount `json:"by_root_cause"`
}

// rootCauseKey 归一化根因文本：优先8D结构化根因，回退自由文本，截前50字符
func rootCauseKey(i entity.Issue) string {
	cause := i.EightDRootCause
	if cause == "" {
		cause = i.RootCause
	}
	if cause == "" {
		return "Unspecified"
	}
	r := []rune(cause)
	if len(r) > rootCauseKeyLen {
		r = r[:rootCauseKeyLen]
	}
	return string(r)
}

// BuildHeatmap 根因热力图：部门维度（计数+平均严重度）与根因维度（计数），各取Top10
func BuildHeatmap(issues []entity.Issue) Heatmap {
	type deptAcc struct {
		count    int
		severity int
	}
	depts := map[string]*deptAcc{}
	causes := map[string]int{}

	for _, is := range issues {
		dept := wallDept(is)
		d, ok := depts[dept]
		if !ok {
			d = &deptAcc{}
			depts[dept] = d
		}
		d.count++
		d.severity += clampRating(is.Severity)

		causes[rootCauseKey(is)]++
	}

	cells := make([]HeatmapCell, 0, len(depts))
	for name, d := range depts {
		avg := math.Round(float64(d.severity)/float64(d.count)*10) / 10
		cells = append(cells, HeatmapCell{Name: name, Count: d.count, AvgSeverity: avg})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Count != cells[j].Count {
			return cells[i].Count > cells[j].Count
		}
		return cells[i].Name < cells[j].Name
	})
	if len(cells) > heatmapLimit {
		cells = cells[:heatmapLimit]
	}

	ranked := make([]RootCauseCount, 0, len(causes))
	for cause, count := range causes {
		ranked = append(ranked, RootCauseCount{Cause: cause, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Cause < ranked[j].Cause
	})
	if len(ranked) > heatmapLimit {
		ranked = ranked[:heatmapLimit]
	}

	return Heatmap{ByDepartment: cells, ByRootCause: ranked}
}

// CostAnomaly 成本异常：当月总额相对上月超过阈值的一次性告警
type CostAnomaly struct {
	CurrentMonthTotal  int64   `json:"current_month_total"`
	PreviousMonthTotal int64   `json:"previous_month_total"`
	IncreasePct        float64 `json:"increase_pct"`
}

// DetectCostAnomaly 当月总成本 > 1.5×上月 且上月 > 0 时触发；
// 上月为0时无论当月多大都不触发。
func DetectCostAnomaly(costs []entity.QualityCost, now time.Time) *CostAnomaly {
	curKey := monthKey(now)
	prevKey := curKey - 1

	var cur, prev int64
	for _, c := range costs {
		if c.CostDate == nil {
			continue
		}
		switch monthKey(*c.CostDate) {
		case curKey:
			cur += c.Amount
		case prevKey:
			prev += c.Amount
		}
	}

	if prev <= 0 || float64(cur) <= anomalyThreshold*float64(prev) {
		return nil
	}
	return &CostAnomaly{
		CurrentMonthTotal:  cur,
		PreviousMonthTotal: prev,
		IncreasePct:        float64(cur-prev) / float64(prev) * 100,
	}
}

// ActionItem 今日行动项
type ActionItem struct {
	RefID       string    `json:"ref_id"`
	Name        string    `json:"name"`
	DueDate     time.Time `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
}

// ActionList 今日行动清单
type ActionList struct {
	OverdueEightD   []ActionItem `json:"overdue_8d"`
	DueCalibrations []ActionItem `json:"due_calibrations"`
}

// BuildActionList 今日行动清单。
// 8D项：未关闭且目标关闭日不晚于今天。
// 校准项：逐条扫描全部有效校准记录（不限每台设备最新一条），已报废设备除外。
func BuildActionList(issues []entity.Issue, equipments []entity.Equipment, now time.Time) ActionList {
	var list ActionList
	today := dateOnly(now)

	for _, is := range issues {
		if is.Type != entity.IssueTypeEightD || !isOpenIssue(is) || is.DueAt == nil {
			continue
		}
		due := dateOnly(*is.DueAt)
		if due.After(today) {
			continue
		}
		list.OverdueEightD = append(list.OverdueEightD, ActionItem{
			RefID:       is.ID,
			Name:        is.IssueNo,
			DueDate:     *is.DueAt,
			DaysOverdue: daysBetween(due, today),
		})
	}

	for _, eq := range equipments {
		if eq.Status == entity.EquipmentStatusScrapped {
			continue
		}
		for _, cal := range eq.Calibrations {
			if !cal.IsActive || cal.NextCalibrationDate == nil {
				continue
			}
			due := dateOnly(*cal.NextCalibrationDate)
			if due.After(today) {
				continue
			}
			list.DueCalibrations = append(list.DueCalibrations, ActionItem{
				RefID:       cal.ID,
				Name:        eq.Name,
				DueDate:     *cal.NextCalibrationDate,
				DaysOverdue: daysBetween(due, today),
			})
		}
	}

	sortActions := func(items []ActionItem) {
		sort.Slice(items, func(i, j int) bool {
			if items[i].DaysOverdue != items[j].DaysOverdue {
				return items[i].DaysOverdue > items[j].DaysOverdue
			}
			return items[i].RefID < items[j].RefID
		})
	}
	sortActions(list.OverdueEightD)
	sortActions(list.DueCalibrations)

	return list
}
