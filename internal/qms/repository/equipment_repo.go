package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// EquipmentRepository 设备仓库
type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// FindAllWithCalibrations 查询全部设备，预载校准记录
func (r *EquipmentRepository) FindAllWithCalibrations(ctx context.Context) ([]entity.Equipment, error) {
	var items []entity.Equipment
	err := r.db.WithContext(ctx).
		Preload("Calibrations").
		Order("code ASC").
		Find(&items).Error
	return items, err
}
