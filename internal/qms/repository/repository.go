package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories QMS仓库集合
type Repositories struct {
	Issue      *IssueRepository
	Cost       *CostRepository
	Complaint  *ComplaintRepository
	Supplier   *SupplierRepository
	Equipment  *EquipmentRepository
	Document   *DocumentRepository
	Compliance *ComplianceRepository
	Indicator  *IndicatorRepository
}

// NewRepositories 创建QMS仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Issue:      NewIssueRepository(db),
		Cost:       NewCostRepository(db),
		Complaint:  NewComplaintRepository(db),
		Supplier:   NewSupplierRepository(db),
		Equipment:  NewEquipmentRepository(db),
		Document:   NewDocumentRepository(db),
		Compliance: NewComplianceRepository(db),
		Indicator:  NewIndicatorRepository(db),
	}
}
