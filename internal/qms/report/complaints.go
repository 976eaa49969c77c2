package report

import (
	"sort"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// ComplaintMetrics 客诉领域指标
type ComplaintMetrics struct {
	Total        int                `json:"total"`
	OpenCount    int                `json:"open_count"`
	ByStatus     []NameCount        `json:"by_status"`
	BySeverity   []NameCount        `json:"by_severity"`
	SLAOverdue   int                `json:"sla_overdue"`
	MonthlyTrend []CountMonthBucket `json:"monthly_trend"`
}

// slaOverdue SLA超期：状态已标超期，或解决期限已过
func slaOverdue(c entity.Complaint, now time.Time) bool {
	if c.SLAStatus == entity.SLAStatusOverdue {
		return true
	}
	return c.SLAResolutionDue != nil && c.SLAResolutionDue.Before(now)
}

// AggregateComplaints 客诉聚合
func AggregateComplaints(complaints []entity.Complaint, now time.Time) ComplaintMetrics {
	m := ComplaintMetrics{Total: len(complaints)}

	byStatus := map[string]int{}
	bySeverity := map[string]int{}
	buckets := map[int]*CountMonthBucket{}

	for _, c := range complaints {
		status := c.Status
		if status == "" {
			status = entity.ComplaintStatusOpen
		}
		byStatus[status]++
		if status != entity.ComplaintStatusClosed && status != entity.ComplaintStatusRejected {
			m.OpenCount++
		}

		sev := c.Severity
		if sev == "" {
			sev = "Unspecified"
		}
		bySeverity[sev]++

		if slaOverdue(c, now) {
			m.SLAOverdue++
		}

		if c.ComplaintDate != nil {
			k := monthKey(*c.ComplaintDate)
			b, ok := buckets[k]
			if !ok {
				b = &CountMonthBucket{Key: k, Label: monthLabel(*c.ComplaintDate)}
				buckets[k] = b
			}
			b.Count++
		}
	}

	m.ByStatus = sortedNameCounts(byStatus)
	m.BySeverity = sortedNameCounts(bySeverity)

	m.MonthlyTrend = make([]CountMonthBucket, 0, len(buckets))
	for _, b := range buckets {
		m.MonthlyTrend = append(m.MonthlyTrend, *b)
	}
	sort.Slice(m.MonthlyTrend, func(i, j int) bool { return m.MonthlyTrend[i].Key < m.MonthlyTrend[j].Key })

	return m
}
