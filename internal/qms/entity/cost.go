package entity

import "time"

// 质量成本类型
const (
	CostTypePrevention      = "prevention"       // 预防成本
	CostTypeAppraisal       = "appraisal"        // 鉴定成本
	CostTypeInternalFailure = "internal_failure" // 内部损失
	CostTypeExternalFailure = "external_failure" // 外部损失
)

// QualityCost 质量成本记录，金额以货币最小单位（分）存储
type QualityCost struct {
	ID       string     `json:"id" gorm:"primaryKey;size:32"`
	Amount   int64      `json:"amount" gorm:"not null"`
	CostDate *time.Time `json:"cost_date" gorm:"index"`
	CostType string     `json:"cost_type" gorm:"size:32;index"`

	// 关联不合格项，可为空；为空时仅计入领域总额
	RelatedIssueID *string `json:"related_issue_id" gorm:"size:32;index"`

	Description string `json:"description" gorm:"size:500"`
	Unit        string `json:"unit" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QualityCost) TableName() string {
	return "qms_quality_costs"
}
