package report

import (
	"fmt"
	"time"
)

// Period 报表周期选择器
type Period string

const (
	PeriodLast3Months  Period = "last3months"
	PeriodLast6Months  Period = "last6months"
	PeriodThisYear     Period = "thisyear"
	PeriodLast12Months Period = "last12months"
)

// ParsePeriod 解析周期参数，未知值回退到最近12个月
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodLast3Months, PeriodLast6Months, PeriodThisYear, PeriodLast12Months:
		return Period(s)
	default:
		return PeriodLast12Months
	}
}

// Range 半开区间 [Start, End)
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains 判断时间是否落在区间内
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Resolve 把周期选择器解析为以 now 为锚点的具体区间和展示标签。
// thisyear 使用自然年边界，其余为回看窗口。
func (p Period) Resolve(now time.Time) (Range, string) {
	switch p {
	case PeriodLast3Months:
		return Range{Start: now.AddDate(0, -3, 0), End: now}, "Last 3 Months"
	case PeriodLast6Months:
		return Range{Start: now.AddDate(0, -6, 0), End: now}, "Last 6 Months"
	case PeriodThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: start.AddDate(1, 0, 0)}, fmt.Sprintf("Year %d", now.Year())
	case PeriodLast12Months:
		return Range{Start: now.AddDate(0, -12, 0), End: now}, "Last 12 Months"
	default:
		return PeriodLast12Months.Resolve(now)
	}
}
