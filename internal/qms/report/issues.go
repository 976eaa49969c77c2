package report

import (
	"math"
	"sort"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

const defaultRating = 5 // 未填写的风险评分按中等风险处理

// clampRating 把严重度/发生度/探测度钳制到 [1,10]，0 视为未填写
func clampRating(v int) int {
	if v == 0 {
		v = defaultRating
	}
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// RPN 风险优先数 = 严重度 × 发生度 × 探测度，三项先钳制，结果落在 [1,1000]
func RPN(i entity.Issue) int {
	return clampRating(i.Severity) * clampRating(i.Occurrence) * clampRating(i.Detection)
}

// isOpenIssue 未关闭且未被驳回；驳回不算解决，不参与任何关闭率统计
func isOpenIssue(i entity.Issue) bool {
	return i.Status != entity.IssueStatusClosed && i.Status != entity.IssueStatusRejected
}

// OverdueIssue 超期不合格项
type OverdueIssue struct {
	Issue     entity.Issue `json:"issue"`
	DelayDays int          `json:"delay_days"`
}

// IssueMetrics 不合格项领域指标
type IssueMetrics struct {
	Total          int            `json:"total"`
	OpenCount      int            `json:"open_count"`
	ClosedCount    int            `json:"closed_count"`
	AvgClosureDays int            `json:"avg_closure_days"`
	MonthlyTrend   []MonthBucket  `json:"monthly_trend"`
	Departments    []NameCount    `json:"departments"`
	Overdue        []OverdueIssue `json:"overdue"`
}

// ensureBucket 懒创建月度桶
func ensureBucket(buckets map[int]*MonthBucket, t time.Time) *MonthBucket {
	k := monthKey(t)
	b, ok := buckets[k]
	if !ok {
		b = &MonthBucket{Key: k, Label: monthLabel(t)}
		buckets[k] = b
	}
	return b
}

// flattenBuckets 按日历键升序展开，排序与输入顺序无关
func flattenBuckets(buckets map[int]*MonthBucket) []MonthBucket {
	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// AggregateIssues 不合格项聚合。
// 关闭时长只统计开闭时间齐全且未倒置的记录，缺失或倒置的记录静默跳过。
func AggregateIssues(issues []entity.Issue, now time.Time) IssueMetrics {
	m := IssueMetrics{Total: len(issues)}

	buckets := map[int]*MonthBucket{}
	depts := map[string]int{}

	var closureDays, closureCount int

	for _, is := range issues {
		if isOpenIssue(is) {
			m.OpenCount++
		}
		if is.Status == entity.IssueStatusClosed {
			m.ClosedCount++
			if is.OpenedAt != nil && is.ClosedAt != nil && !is.ClosedAt.Before(*is.OpenedAt) {
				closureDays += roundDays(is.ClosedAt.Sub(*is.OpenedAt))
				closureCount++
			}
		}

		if is.OpenedAt != nil {
			ensureBucket(buckets, *is.OpenedAt).Opened++
		}
		if is.Status == entity.IssueStatusClosed && is.ClosedAt != nil {
			ensureBucket(buckets, *is.ClosedAt).Closed++
		}

		dept := is.Department
		if dept == "" {
			dept = "Unspecified"
		}
		depts[dept]++

		if isOpenIssue(is) && is.DueAt != nil && is.DueAt.Before(now) {
			m.Overdue = append(m.Overdue, OverdueIssue{
				Issue:     is,
				DelayDays: daysBetween(*is.DueAt, now),
			})
		}
	}

	if closureCount > 0 {
		m.AvgClosureDays = int(math.Round(float64(closureDays) / float64(closureCount)))
	}

	m.MonthlyTrend = flattenBuckets(buckets)
	m.Departments = sortedNameCounts(depts)

	sort.Slice(m.Overdue, func(i, j int) bool {
		if m.Overdue[i].DelayDays != m.Overdue[j].DelayDays {
			return m.Overdue[i].DelayDays > m.Overdue[j].DelayDays
		}
		return m.Overdue[i].Issue.ID < m.Overdue[j].Issue.ID
	})

	return m
}
