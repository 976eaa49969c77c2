package report

import (
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// 测试锚点：2026-03-15 12:00 UTC
var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func issue(id, status string, opened, closed *time.Time) entity.Issue {
	return entity.Issue{
		ID:       id,
		IssueNo:  "NC-" + id,
		Title:    "issue " + id,
		Type:     entity.IssueTypeCorrectiveAction,
		Status:   status,
		OpenedAt: opened,
		ClosedAt: closed,
	}
}

func cost(id string, amount int64, date *time.Time, issueID string) entity.QualityCost {
	c := entity.QualityCost{
		ID:       id,
		Amount:   amount,
		CostDate: date,
		CostType: entity.CostTypeInternalFailure,
	}
	if issueID != "" {
		c.RelatedIssueID = &issueID
	}
	return c
}
