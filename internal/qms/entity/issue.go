package entity

import "time"

// 不合格项类型
const (
	IssueTypeCorrectiveAction = "corrective_action" // 纠正措施 (DF)
	IssueTypeEightD           = "8d"                // 8D报告
	IssueTypeDeviation        = "mdi"               // 管理偏差
)

// 不合格项状态
const (
	IssueStatusOpen            = "open"
	IssueStatusPendingApproval = "pending_approval"
	IssueStatusApproved        = "approved"
	IssueStatusRejected        = "rejected"
	IssueStatusClosed          = "closed"
)

// Issue 不合格项（DF/8D/管理偏差）
type Issue struct {
	ID      string `json:"id" gorm:"primaryKey;size:32"`
	IssueNo string `json:"issue_no" gorm:"size:32;uniqueIndex;not null"`
	Title   string `json:"title" gorm:"size:200"`
	Type    string `json:"type" gorm:"size:20;not null;index"`
	Status  string `json:"status" gorm:"size:20;not null;default:open;index"`

	// 风险评分三要素，来源数据未校验，使用前必须钳制到 [1,10]
	Severity   int `json:"severity"`
	Occurrence int `json:"occurrence"`
	Detection  int `json:"detection"`

	Department     string `json:"department" gorm:"size:100"`
	RequestingUnit string `json:"requesting_unit" gorm:"size:100"`

	OpenedAt *time.Time `json:"opened_at" gorm:"index"`
	DueAt    *time.Time `json:"due_at"`
	ClosedAt *time.Time `json:"closed_at"`

	PartCode        string `json:"part_code" gorm:"size:64;index"`
	RootCause       string `json:"root_cause" gorm:"type:text"`
	EightDRootCause string `json:"eight_d_root_cause" gorm:"type:text"` // 8D D4 根因

	SupplierID *string `json:"supplier_id" gorm:"size:32;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Issue) TableName() string {
	return "qms_issues"
}
