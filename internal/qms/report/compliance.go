package report

import "github.com/bitfantasy/nimo-qms/internal/qms/entity"

// AuditMetrics 内审领域指标
type AuditMetrics struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// AggregateAudits 内审聚合
func AggregateAudits(audits []entity.Audit) AuditMetrics {
	m := AuditMetrics{Total: len(audits)}
	for _, a := range audits {
		if a.Status == entity.AuditStatusCompleted {
			m.Completed++
		}
	}
	return m
}

// QuarantineMetrics 隔离品领域指标
type QuarantineMetrics struct {
	Total        int `json:"total"`
	InQuarantine int `json:"in_quarantine"`
}

// AggregateQuarantine 隔离品聚合
func AggregateQuarantine(records []entity.QuarantineRecord) QuarantineMetrics {
	m := QuarantineMetrics{Total: len(records)}
	for _, r := range records {
		if r.Status == entity.QuarantineStatusHeld {
			m.InQuarantine++
		}
	}
	return m
}

// DeviationMetrics 偏离许可领域指标
type DeviationMetrics struct {
	Total    int         `json:"total"`
	Open     int         `json:"open"`
	ByStatus []NameCount `json:"by_status"`
}

// AggregateDeviations 偏离许可聚合
func AggregateDeviations(deviations []entity.Deviation) DeviationMetrics {
	m := DeviationMetrics{Total: len(deviations)}
	byStatus := map[string]int{}
	for _, d := range deviations {
		status := d.Status
		if status == "" {
			status = entity.DeviationStatusOpen
		}
		byStatus[status]++
		if status != entity.DeviationStatusClosed && status != entity.DeviationStatusRejected {
			m.Open++
		}
	}
	m.ByStatus = sortedNameCounts(byStatus)
	return m
}

// DocumentMetrics 受控文件领域指标
type DocumentMetrics struct {
	Total int `json:"total"`
}
