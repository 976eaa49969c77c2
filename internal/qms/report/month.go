package report

import (
	"math"
	"sort"
	"time"
)

// monthKey 可排序的日历月键（年×12+月），与展示标签解耦，
// 保证时间序列排序不受展示语言影响。
func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func monthLabel(t time.Time) string {
	return t.Format("Jan 06")
}

// MonthBucket 月度开闭趋势桶
type MonthBucket struct {
	Key    int    `json:"key"`
	Label  string `json:"label"`
	Opened int    `json:"opened"`
	Closed int    `json:"closed"`
}

// CostMonthBucket 月度成本桶，金额为货币最小单位
type CostMonthBucket struct {
	Key   int    `json:"key"`
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// CountMonthBucket 月度计数桶
type CountMonthBucket struct {
	Key   int    `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// NameCount 名称-计数对
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// sortedNameCounts 将计数表展开为确定性序列：计数降序，同数按名称升序
func sortedNameCounts(m map[string]int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, count := range m {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// daysBetween 整天之差（截断），from 在 to 之后时为负
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// roundDays 时长按最近整数天取整
func roundDays(d time.Duration) int {
	return int(math.Round(d.Hours() / 24))
}

// dateOnly 去掉时间部分，只保留日期
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
