package entity

import "time"

// 内审状态
const (
	AuditStatusPlanned   = "planned"
	AuditStatusOngoing   = "ongoing"
	AuditStatusCompleted = "completed"
)

// Audit 内部审核
type Audit struct {
	ID       string     `json:"id" gorm:"primaryKey;size:32"`
	ReportNo string     `json:"report_no" gorm:"size:32;uniqueIndex"`
	Status   string     `json:"status" gorm:"size:20;not null;default:planned;index"`
	AuditDate *time.Time `json:"audit_date" gorm:"index"`
	Department string   `json:"department" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Audit) TableName() string {
	return "qms_audits"
}

// 隔离状态
const (
	QuarantineStatusHeld     = "quarantined"
	QuarantineStatusReleased = "released"
	QuarantineStatusScrapped = "scrapped"
)

// QuarantineRecord 隔离品记录
type QuarantineRecord struct {
	ID             string     `json:"id" gorm:"primaryKey;size:32"`
	PartCode       string     `json:"part_code" gorm:"size:64"`
	Status         string     `json:"status" gorm:"size:20;not null;default:quarantined;index"`
	Quantity       int        `json:"quantity"`
	QuarantineDate *time.Time `json:"quarantine_date" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuarantineRecord) TableName() string {
	return "qms_quarantine_records"
}

// 偏离许可状态
const (
	DeviationStatusOpen            = "open"
	DeviationStatusPendingApproval = "pending_approval"
	DeviationStatusApproved        = "approved"
	DeviationStatusRejected        = "rejected"
	DeviationStatusClosed          = "closed"
)

// Deviation 偏离许可申请
type Deviation struct {
	ID             string `json:"id" gorm:"primaryKey;size:32"`
	RequestNo      string `json:"request_no" gorm:"size:32;uniqueIndex"`
	Status         string `json:"status" gorm:"size:20;not null;default:open;index"`
	RequestingUnit string `json:"requesting_unit" gorm:"size:100"`
	RequestedBy    string `json:"requested_by" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Deviation) TableName() string {
	return "qms_deviations"
}
