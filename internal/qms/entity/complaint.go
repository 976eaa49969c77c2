package entity

import "time"

// 客诉状态
const (
	ComplaintStatusOpen     = "open"
	ComplaintStatusAnalyzing = "analyzing"
	ComplaintStatusResolved = "resolved"
	ComplaintStatusClosed   = "closed"
	ComplaintStatusRejected = "rejected"
)

// SLA状态
const (
	SLAStatusOnTrack = "on_track"
	SLAStatusAtRisk  = "at_risk"
	SLAStatusOverdue = "overdue"
)

// Complaint 客户投诉
type Complaint struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	ComplaintNo string     `json:"complaint_no" gorm:"size:32;uniqueIndex"`
	Title       string     `json:"title" gorm:"size:200"`
	Status      string     `json:"status" gorm:"size:20;not null;default:open;index"`
	Severity    string     `json:"severity" gorm:"size:20"` // low/medium/high/critical
	CustomerName string    `json:"customer_name" gorm:"size:200"`

	ComplaintDate    *time.Time `json:"complaint_date" gorm:"index"`
	SLAResolutionDue *time.Time `json:"sla_resolution_due"`
	SLAStatus        string     `json:"sla_status" gorm:"size:20"` // 可为空

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Complaint) TableName() string {
	return "qms_complaints"
}
