package report

import (
	"sort"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// CostMetrics 质量成本领域指标，金额为货币最小单位
type CostMetrics struct {
	Total        int64             `json:"total"`
	ByType       []CostTypeTotal   `json:"by_type"`
	MonthlyTrend []CostMonthBucket `json:"monthly_trend"`
}

// CostTypeTotal 按成本类型汇总
type CostTypeTotal struct {
	CostType string `json:"cost_type"`
	Total    int64  `json:"total"`
}

// AggregateCosts 质量成本聚合；无日期的记录计入总额但不进入月度趋势
func AggregateCosts(costs []entity.QualityCost) CostMetrics {
	var m CostMetrics

	buckets := map[int]*CostMonthBucket{}
	byType := map[string]int64{}

	for _, c := range costs {
		m.Total += c.Amount

		ct := c.CostType
		if ct == "" {
			ct = "Unspecified"
		}
		byType[ct] += c.Amount

		if c.CostDate == nil {
			continue
		}
		k := monthKey(*c.CostDate)
		b, ok := buckets[k]
		if !ok {
			b = &CostMonthBucket{Key: k, Label: monthLabel(*c.CostDate)}
			buckets[k] = b
		}
		b.Total += c.Amount
	}

	m.MonthlyTrend = make([]CostMonthBucket, 0, len(buckets))
	for _, b := range buckets {
		m.MonthlyTrend = append(m.MonthlyTrend, *b)
	}
	sort.Slice(m.MonthlyTrend, func(i, j int) bool { return m.MonthlyTrend[i].Key < m.MonthlyTrend[j].Key })

	m.ByType = make([]CostTypeTotal, 0, len(byType))
	for ct, total := range byType {
		m.ByType = append(m.ByType, CostTypeTotal{CostType: ct, Total: total})
	}
	sort.Slice(m.ByType, func(i, j int) bool {
		if m.ByType[i].Total != m.ByType[j].Total {
			return m.ByType[i].Total > m.ByType[j].Total
		}
		return m.ByType[i].CostType < m.ByType[j].CostType
	})

	return m
}
