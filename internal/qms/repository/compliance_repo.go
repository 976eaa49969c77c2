package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

// ComplianceRepository 合规记录仓库：内审、隔离品、偏离许可
type ComplianceRepository struct {
	db *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) *ComplianceRepository {
	return &ComplianceRepository{db: db}
}

// FindAuditsInWindow 查询审核日期落在统计区间内的内审
func (r *ComplianceRepository) FindAuditsInWindow(ctx context.Context, window report.Range) ([]entity.Audit, error) {
	var items []entity.Audit
	err := r.db.WithContext(ctx).
		Where("audit_date >= ? AND audit_date < ?", window.Start, window.End).
		Order("audit_date ASC").
		Find(&items).Error
	return items, err
}

// FindQuarantineInWindow 查询隔离日期落在统计区间内的隔离品记录
func (r *ComplianceRepository) FindQuarantineInWindow(ctx context.Context, window report.Range) ([]entity.QuarantineRecord, error) {
	var items []entity.QuarantineRecord
	err := r.db.WithContext(ctx).
		Where("quarantine_date >= ? AND quarantine_date < ?", window.Start, window.End).
		Order("quarantine_date ASC").
		Find(&items).Error
	return items, err
}

// FindDeviationsInWindow 查询创建时间落在统计区间内的偏离许可
func (r *ComplianceRepository) FindDeviationsInWindow(ctx context.Context, window report.Range) ([]entity.Deviation, error) {
	var items []entity.Deviation
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", window.Start, window.End).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
