package report

import (
	"sort"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

const (
	alertLimit     = 10
	staleIssueDays = 30
	expiryWindow   = 30
)

// StaleIssueAlert 长期未关闭的问题
type StaleIssueAlert struct {
	IssueID string `json:"issue_id"`
	IssueNo string `json:"issue_no"`
	Title   string `json:"title"`
	AgeDays int    `json:"age_days"`
}

// CalibrationAlert 校准逾期告警
type CalibrationAlert struct {
	CalibrationID string    `json:"calibration_id"`
	EquipmentName string    `json:"equipment_name"`
	DueDate       time.Time `json:"due_date"`
	DaysOverdue   int       `json:"days_overdue"`
}

// DocumentAlert 文件临期告警
type DocumentAlert struct {
	DocumentID    string    `json:"document_id"`
	Name          string    `json:"name"`
	ValidUntil    time.Time `json:"valid_until"`
	DaysRemaining int       `json:"days_remaining"`
}

// AlertBundle 告警汇总
type AlertBundle struct {
	StaleIssues         []StaleIssueAlert  `json:"stale_issues"`
	OverdueCalibrations []CalibrationAlert `json:"overdue_calibrations"`
	ExpiringDocuments   []DocumentAlert    `json:"expiring_documents"`
	CostAnomaly         *CostAnomaly       `json:"cost_anomaly,omitempty"`
}

// BuildAlerts 构建告警汇总。
// 问题告警：未关闭且开立已超过30天，按账龄降序取前10；
// 校准告警：全部逾期有效校准记录，不截断；
// 文件告警：有效期落在今天起30天内（含已到今天），按剩余天数升序取前10。
func BuildAlerts(
	issues []entity.Issue,
	equipments []entity.Equipment,
	documents []entity.Document,
	costs []entity.QualityCost,
	now time.Time,
) AlertBundle {
	var bundle AlertBundle
	today := dateOnly(now)
	staleBefore := now.AddDate(0, 0, -staleIssueDays)

	for _, is := range issues {
		if !isOpenIssue(is) || is.OpenedAt == nil || !is.OpenedAt.Before(staleBefore) {
			continue
		}
		bundle.StaleIssues = append(bundle.StaleIssues, StaleIssueAlert{
			IssueID: is.ID,
			IssueNo: is.IssueNo,
			Title:   is.Title,
			AgeDays: daysBetween(*is.OpenedAt, now),
		})
	}
	sort.Slice(bundle.StaleIssues, func(i, j int) bool {
		if bundle.StaleIssues[i].AgeDays != bundle.StaleIssues[j].AgeDays {
			return bundle.StaleIssues[i].AgeDays > bundle.StaleIssues[j].AgeDays
		}
		return bundle.StaleIssues[i].IssueID < bundle.StaleIssues[j].IssueID
	})
	if len(bundle.StaleIssues) > alertLimit {
		bundle.StaleIssues = bundle.StaleIssues[:alertLimit]
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
			if !due.Before(today) {
				continue
			}
			bundle.OverdueCalibrations = append(bundle.OverdueCalibrations, CalibrationAlert{
				CalibrationID: cal.ID,
				EquipmentName: eq.Name,
				DueDate:       *cal.NextCalibrationDate,
				DaysOverdue:   daysBetween(due, today),
			})
		}
	}
	sort.Slice(bundle.OverdueCalibrations, func(i, j int) bool {
		if bundle.OverdueCalibrations[i].DaysOverdue != bundle.OverdueCalibrations[j].DaysOverdue {
			return bundle.OverdueCalibrations[i].DaysOverdue > bundle.OverdueCalibrations[j].DaysOverdue
		}
		return bundle.OverdueCalibrations[i].CalibrationID < bundle.OverdueCalibrations[j].CalibrationID
	})

	expiryEnd := today.AddDate(0, 0, expiryWindow)
	for _, doc := range documents {
		if doc.ValidUntil == nil {
			continue
		}
		until := dateOnly(*doc.ValidUntil)
		if until.Before(today) || until.After(expiryEnd) {
			continue
		}
		bundle.ExpiringDocuments = append(bundle.ExpiringDocuments, DocumentAlert{
			DocumentID:    doc.ID,
			Name:          doc.Name,
			ValidUntil:    *doc.ValidUntil,
			DaysRemaining: daysBetween(today, until),
		})
	}
	sort.Slice(bundle.ExpiringDocuments, func(i, j int) bool {
		if bundle.ExpiringDocuments[i].DaysRemaining != bundle.ExpiringDocuments[j].DaysRemaining {
			return bundle.ExpiringDocuments[i].DaysRemaining < bundle.ExpiringDocuments[j].DaysRemaining
		}
		return bundle.ExpiringDocuments[i].DocumentID < bundle.ExpiringDocuments[j].DocumentID
	})
	if len(bundle.ExpiringDocuments) > alertLimit {
		bundle.ExpiringDocuments = bundle.ExpiringDocuments[:alertLimit]
	}

	bundle.CostAnomaly = DetectCostAnomaly(costs, now)
	return bundle
}
