package report

import (
	"sort"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

const topSupplierLimit = 10

// GradeDistribution 供应商等级分布，按最近一次已完成且有评分的审核划分
type GradeDistribution struct {
	A        int `json:"a"`        // score >= 90
	B        int `json:"b"`        // score >= 75
	C        int `json:"c"`        // score >= 60
	D        int `json:"d"`        // score < 60
	Unscored int `json:"unscored"` // 无已评分审核
}

// SupplierIssueCount 供应商及其关联不合格项数
type SupplierIssueCount struct {
	SupplierID string `json:"supplier_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// SupplierMetrics 供应商领域指标
type SupplierMetrics struct {
	Total       int                  `json:"total"`
	Grades      GradeDistribution    `json:"grades"`
	TopByIssues []SupplierIssueCount `json:"top_by_issues"`
}

// latestScoredAudit 最近一次已完成且有评分的审核，按实际（回退计划）日期取最新，
// 同一日期按ID降序决出，保证与输入顺序无关。
func latestScoredAudit(plans []entity.SupplierAuditPlan) *entity.SupplierAuditPlan {
	var best *entity.SupplierAuditPlan
	for idx := range plans {
		p := &plans[idx]
		if p.Status != entity.AuditPlanStatusCompleted || p.Score == nil {
			continue
		}
		if best == nil {
			best = p
			continue
		}
		bd, pd := best.EffectiveDate(), p.EffectiveDate()
		switch {
		case pd == nil:
			// 无日期的排最后
		case bd == nil, pd.After(*bd):
			best = p
		case pd.Equal(*bd) && p.ID > best.ID:
			best = p
		}
	}
	return best
}

func gradeOf(score float64) func(g *GradeDistribution) {
	switch {
	case score >= 90:
		return func(g *GradeDistribution) { g.A++ }
	case score >= 75:
		return func(g *GradeDistribution) { g.B++ }
	case score >= 60:
		return func(g *GradeDistribution) { g.C++ }
	default:
		return func(g *GradeDistribution) { g.D++ }
	}
}

// AggregateSuppliers 供应商聚合：等级分布 + 不合格项数Top10
func AggregateSuppliers(suppliers []entity.Supplier) SupplierMetrics {
	m := SupplierMetrics{Total: len(suppliers)}

	for _, s := range suppliers {
		if audit := latestScoredAudit(s.AuditPlans); audit != nil {
			gradeOf(*audit.Score)(&m.Grades)
		} else {
			m.Grades.Unscored++
		}
	}

	ranked := make([]SupplierIssueCount, 0, len(suppliers))
	for _, s := range suppliers {
		if len(s.Issues) == 0 {
			continue
		}
		ranked = append(ranked, SupplierIssueCount{
			SupplierID: s.ID,
			Name:       s.Name,
			Count:      len(s.Issues),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		if ranked[i].Name != ranked[j].Name {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].SupplierID < ranked[j].SupplierID
	})
	if len(ranked) > topSupplierLimit {
		ranked = ranked[:topSupplierLimit]
	}
	m.TopByIssues = ranked

	return m
}
