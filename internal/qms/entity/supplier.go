package entity

import "time"

// 供应商状态
const (
	SupplierStatusApproved    = "approved"
	SupplierStatusAlternative = "alternative"
	SupplierStatusBlocked     = "blocked"
)

// 供应商审核计划状态
const (
	AuditPlanStatusPlanned   = "planned"
	AuditPlanStatusCompleted = "completed"
	AuditPlanStatusCancelled = "cancelled"
)

// Supplier 供应商
type Supplier struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Code     string `json:"code" gorm:"size:32;uniqueIndex"`
	Name     string `json:"name" gorm:"size:200;not null"`
	Status   string `json:"status" gorm:"size:20;not null;default:approved;index"`
	Category string `json:"category" gorm:"size:50"`

	Issues     []Issue             `json:"issues" gorm:"foreignKey:SupplierID"`
	AuditPlans []SupplierAuditPlan `json:"audit_plans" gorm:"foreignKey:SupplierID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "qms_suppliers"
}

// SupplierAuditPlan 供应商审核计划
type SupplierAuditPlan struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	SupplierID string `json:"supplier_id" gorm:"size:32;index;not null"`
	Status     string `json:"status" gorm:"size:20;not null;default:planned"`

	// 百分制评分，未评分为 nil
	Score *float64 `json:"score"`

	PlannedDate *time.Time `json:"planned_date"`
	ActualDate  *time.Time `json:"actual_date"`

	CreatedAt time.Time `json:"created_at"`
}

func (SupplierAuditPlan) TableName() string {
	return "qms_supplier_audit_plans"
}

// EffectiveDate 实际完成日期，未完成时退回计划日期
func (p SupplierAuditPlan) EffectiveDate() *time.Time {
	if p.ActualDate != nil {
		return p.ActualDate
	}
	return p.PlannedDate
}
