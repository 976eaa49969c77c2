package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

// amountYuan 货币最小单位转元
func amountYuan(minor int64) float64 {
	return float64(minor) / 100
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	return style
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

// SnapshotWorkbook 把报表快照渲染为xlsx工作簿
func SnapshotWorkbook(snap *report.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	bold := headerStyle(f)

	// 概览
	overview := "概览"
	f.SetSheetName("Sheet1", overview)
	writeHeaders(f, overview, []string{"指标", "数值"}, bold)
	rows := [][2]interface{}{
		{"统计周期", snap.PeriodLabel},
		{"窗口起点", snap.WindowStart.Format("2006-01-02")},
		{"窗口终点", snap.WindowEnd.Format("2006-01-02")},
		{"生成时间", snap.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"不合格项总数", snap.Issues.Total},
		{"未关闭不合格项", snap.Issues.OpenCount},
		{"平均关闭天数", snap.Issues.AvgClosureDays},
		{"质量成本总额(元)", amountYuan(snap.Costs.Total)},
		{"客诉总数", snap.Complaints.Total},
		{"SLA超期客诉", snap.Complaints.SLAOverdue},
		{"供应商总数", snap.Suppliers.Total},
		{"设备总数", snap.Equipment.Total},
		{"校准超期设备", snap.Equipment.OverdueCalibrations},
		{"内审完成数", snap.Audits.Completed},
		{"在隔离品", snap.Quarantine.InQuarantine},
		{"未决偏离许可", snap.Deviations.Open},
	}
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(overview, fmt.Sprintf("A%d", row), r[0])
		f.SetCellValue(overview, fmt.Sprintf("B%d", row), r[1])
	}
	f.SetColWidth(overview, "A", "A", 22)
	f.SetColWidth(overview, "B", "B", 18)

	// 月度趋势
	trend := "月度趋势"
	f.NewSheet(trend)
	writeHeaders(f, trend, []string{"月份", "新开", "关闭", "成本(元)"}, bold)
	costByKey := map[int]int64{}
	for _, b := range snap.Costs.MonthlyTrend {
		costByKey[b.Key] = b.Total
	}
	for i, b := range snap.Issues.MonthlyTrend {
		row := i + 2
		f.SetCellValue(trend, fmt.Sprintf("A%d", row), b.Label)
		f.SetCellValue(trend, fmt.Sprintf("B%d", row), b.Opened)
		f.SetCellValue(trend, fmt.Sprintf("C%d", row), b.Closed)
		f.SetCellValue(trend, fmt.Sprintf("D%d", row), amountYuan(costByKey[b.Key]))
	}

	// 高成本项
	highCost := "高成本项"
	f.NewSheet(highCost)
	writeHeaders(f, highCost, []string{"单号", "标题", "状态", "累计成本(元)"}, bold)
	for i, r := range snap.HighCostIssues {
		row := i + 2
		f.SetCellValue(highCost, fmt.Sprintf("A%d", row), r.Issue.IssueNo)
		f.SetCellValue(highCost, fmt.Sprintf("B%d", row), r.Issue.Title)
		f.SetCellValue(highCost, fmt.Sprintf("C%d", row), r.Issue.Status)
		f.SetCellValue(highCost, fmt.Sprintf("D%d", row), amountYuan(r.TotalCost))
	}

	// 高风险项
	highRPN := "高风险项"
	f.NewSheet(highRPN)
	writeHeaders(f, highRPN, []string{"单号", "标题", "严重度", "发生度", "探测度", "RPN"}, bold)
	for i, r := range snap.HighRPNIssues {
		row := i + 2
		f.SetCellValue(highRPN, fmt.Sprintf("A%d", row), r.Issue.IssueNo)
		f.SetCellValue(highRPN, fmt.Sprintf("B%d", row), r.Issue.Title)
		f.SetCellValue(highRPN, fmt.Sprintf("C%d", row), r.Severity)
		f.SetCellValue(highRPN, fmt.Sprintf("D%d", row), r.Occurrence)
		f.SetCellValue(highRPN, fmt.Sprintf("E%d", row), r.Detection)
		f.SetCellValue(highRPN, fmt.Sprintf("F%d", row), r.RPN)
	}

	// 质量墙
	wall := "质量墙"
	f.NewSheet(wall)
	writeHeaders(f, wall, []string{"榜单", "部门", "未关闭", "已关闭", "关闭率"}, bold)
	row := 2
	for _, s := range snap.QualityWall.Best {
		f.SetCellValue(wall, fmt.Sprintf("A%d", row), "最佳")
		f.SetCellValue(wall, fmt.Sprintf("B%d", row), s.Name)
		f.SetCellValue(wall, fmt.Sprintf("C%d", row), s.Open)
		f.SetCellValue(wall, fmt.Sprintf("D%d", row), s.Closed)
		f.SetCellValue(wall, fmt.Sprintf("E%d", row), fmt.Sprintf("%.0f%%", s.ClosureRate*100))
		row++
	}
	for _, s := range snap.QualityWall.Worst {
		f.SetCellValue(wall, fmt.Sprintf("A%d", row), "待改进")
		f.SetCellValue(wall, fmt.Sprintf("B%d", row), s.Name)
		f.SetCellValue(wall, fmt.Sprintf("C%d", row), s.Open)
		f.SetCellValue(wall, fmt.Sprintf("D%d", row), s.Closed)
		f.SetCellValue(wall, fmt.Sprintf("E%d", row), fmt.Sprintf("%.0f%%", s.ClosureRate*100))
		row++
	}

	// 告警
	alerts := "告警"
	f.NewSheet(alerts)
	writeHeaders(f, alerts, []string{"类型", "对象", "数值"}, bold)
	row = 2
	for _, a := range snap.Alerts.StaleIssues {
		f.SetCellValue(alerts, fmt.Sprintf("A%d", row), "长期未关闭")
		f.SetCellValue(alerts, fmt.Sprintf("B%d", row), a.IssueNo)
		f.SetCellValue(alerts, fmt.Sprintf("C%d", row), fmt.Sprintf("%d天", a.AgeDays))
		row++
	}
	for _, a := range snap.Alerts.OverdueCalibrations {
		f.SetCellValue(alerts, fmt.Sprintf("A%d", row), "校准逾期")
		f.SetCellValue(alerts, fmt.Sprintf("B%d", row), a.EquipmentName)
		f.SetCellValue(alerts, fmt.Sprintf("C%d", row), fmt.Sprintf("逾期%d天", a.DaysOverdue))
		row++
	}
	for _, a := range snap.Alerts.ExpiringDocuments {
		f.SetCellValue(alerts, fmt.Sprintf("A%d", row), "文件临期")
		f.SetCellValue(alerts, fmt.Sprintf("B%d", row), a.Name)
		f.SetCellValue(alerts, fmt.Sprintf("C%d", row), fmt.Sprintf("剩%d天", a.DaysRemaining))
		row++
	}
	if a := snap.Alerts.CostAnomaly; a != nil {
		f.SetCellValue(alerts, fmt.Sprintf("A%d", row), "成本异常")
		f.SetCellValue(alerts, fmt.Sprintf("B%d", row), "当月质量成本")
		f.SetCellValue(alerts, fmt.Sprintf("C%d", row), fmt.Sprintf("环比+%.1f%%", a.IncreasePct))
	}

	return f, nil
}
