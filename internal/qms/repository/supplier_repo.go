package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// SupplierRepository 供应商仓库
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// FindAllWithRelations 查询全部供应商，预载审核计划与关联不合格项
func (r *SupplierRepository) FindAllWithRelations(ctx context.Context) ([]entity.Supplier, error) {
	var items []entity.Supplier
	err := r.db.WithContext(ctx).
		Preload("AuditPlans").
		Preload("Issues").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找供应商
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).
		Preload("AuditPlans").
		Where("id = ?", id).
		First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}
