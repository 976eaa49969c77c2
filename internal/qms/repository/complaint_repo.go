package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

// ComplaintRepository 客诉仓库
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// FindInWindow 查询投诉日期落在统计区间内的客诉
func (r *ComplaintRepository) FindInWindow(ctx context.Context, window report.Range) ([]entity.Complaint, error) {
	var items []entity.Complaint
	err := r.db.WithContext(ctx).
		Where("complaint_date >= ? AND complaint_date < ?", window.Start, window.End).
		Order("complaint_date ASC").
		Find(&items).Error
	return items, err
}
