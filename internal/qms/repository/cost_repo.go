package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

// CostRepository 质量成本仓库
type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

// FindInWindow 查询发生日期落在统计区间内的成本记录。
// 无日期的记录一并返回，由聚合侧决定是否计入趋势。
func (r *CostRepository) FindInWindow(ctx context.Context, window report.Range) ([]entity.QualityCost, error) {
	var items []entity.QualityCost
	err := r.db.WithContext(ctx).
		Where("(cost_date >= ? AND cost_date < ?) OR cost_date IS NULL", window.Start, window.End).
		Order("cost_date ASC").
		Find(&items).Error
	return items, err
}
