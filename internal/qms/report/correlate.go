package report

import (
	"sort"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

const (
	topRankLimit    = 5
	criticalRPN     = 100 // 5×5×4，达到即视为关键项
	recurringKeyLen = 30
)

// CostRankedIssue 按累计成本排名的不合格项
type CostRankedIssue struct {
	Issue     entity.Issue `json:"issue"`
	TotalCost int64        `json:"total_cost"`
}

// RPNRankedIssue 按风险优先数排名的不合格项，附钳制后的三要素
type RPNRankedIssue struct {
	Issue      entity.Issue `json:"issue"`
	RPN        int          `json:"rpn"`
	Severity   int          `json:"severity"`
	Occurrence int          `json:"occurrence"`
	Detection  int          `json:"detection"`
}

// RecurringGroup 重复发生的不合格项分组
type RecurringGroup struct {
	Key         string         `json:"key"`
	Count       int            `json:"count"`
	Occurrences []entity.Issue `json:"occurrences"`
}

// issueCostIndex 按不合格项外键累加窗口内成本；外键为空的成本不参与关联
func issueCostIndex(costs []entity.QualityCost) map[string]int64 {
	index := map[string]int64{}
	for _, c := range costs {
		if c.RelatedIssueID == nil || *c.RelatedIssueID == "" {
			continue
		}
		index[*c.RelatedIssueID] += c.Amount
	}
	return index
}

// TopCostIssues 累计成本最高的未关闭不合格项 Top5
func TopCostIssues(issues []entity.Issue, costs []entity.QualityCost) []CostRankedIssue {
	index := issueCostIndex(costs)

	var ranked []CostRankedIssue
	for _, is := range issues {
		if is.Status == entity.IssueStatusClosed {
			continue
		}
		total, ok := index[is.ID]
		if !ok {
			continue
		}
		ranked = append(ranked, CostRankedIssue{Issue: is, TotalCost: total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalCost != ranked[j].TotalCost {
			return ranked[i].TotalCost > ranked[j].TotalCost
		}
		return ranked[i].Issue.ID < ranked[j].Issue.ID
	})
	if len(ranked) > topRankLimit {
		ranked = ranked[:topRankLimit]
	}
	return ranked
}

// TopRPNIssues 风险优先数 >= 100 的未关闭不合格项 Top5
func TopRPNIssues(issues []entity.Issue) []RPNRankedIssue {
	var ranked []RPNRankedIssue
	for _, is := range issues {
		if is.Status == entity.IssueStatusClosed {
			continue
		}
		rpn := RPN(is)
		if rpn < criticalRPN {
			continue
		}
		ranked = append(ranked, RPNRankedIssue{
			Issue:      is,
			RPN:        rpn,
			Severity:   clampRating(is.Severity),
			Occurrence: clampRating(is.Occurrence),
			Detection:  clampRating(is.Detection),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RPN != ranked[j].RPN {
			return ranked[i].RPN > ranked[j].RPN
		}
		return ranked[i].Issue.ID < ranked[j].Issue.ID
	})
	if len(ranked) > topRankLimit {
		ranked = ranked[:topRankLimit]
	}
	return ranked
}

// recurringKey 重复项分组键：件号，其次标题前30字符，其次单号，兜底ID
func recurringKey(i entity.Issue) string {
	if i.PartCode != "" {
		return i.PartCode
	}
	if i.Title != "" {
		r := []rune(i.Title)
		if len(r) > recurringKeyLen {
			r = r[:recurringKeyLen]
		}
		return string(r)
	}
	if i.IssueNo != "" {
		return i.IssueNo
	}
	return i.ID
}

// RecurringIssues 重复发生（同键出现两次以上）的不合格项分组 Top5，
// 附完整发生列表；组内按单号升序
func RecurringIssues(issues []entity.Issue) []RecurringGroup {
	groups := map[string][]entity.Issue{}
	for _, is := range issues {
		k := recurringKey(is)
		groups[k] = append(groups[k], is)
	}

	var recurring []RecurringGroup
	for k, members := range groups {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		recurring = append(recurring, RecurringGroup{Key: k, Count: len(members), Occurrences: members})
	}

	sort.Slice(recurring, func(i, j int) bool {
		if recurring[i].Count != recurring[j].Count {
			return recurring[i].Count > recurring[j].Count
		}
		return recurring[i].Key < recurring[j].Key
	})
	if len(recurring) > topRankLimit {
		recurring = recurring[:topRankLimit]
	}
	return recurring
}
