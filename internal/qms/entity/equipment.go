package entity

import "time"

// 设备状态
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusScrapped    = "scrapped" // 已报废，不参与校准统计
)

// Equipment 计量/检测设备
type Equipment struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Code     string `json:"code" gorm:"size:32;uniqueIndex"`
	Name     string `json:"name" gorm:"size:200;not null"`
	Status   string `json:"status" gorm:"size:20;not null;default:active;index"`
	Location string `json:"location" gorm:"size:200"`

	Calibrations []Calibration `json:"calibrations" gorm:"foreignKey:EquipmentID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "qms_equipments"
}

// Calibration 设备校准记录
type Calibration struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	EquipmentID string `json:"equipment_id" gorm:"size:32;index;not null"`

	CalibrationDate     *time.Time `json:"calibration_date"`
	NextCalibrationDate *time.Time `json:"next_calibration_date"`
	IsActive            bool       `json:"is_active" gorm:"default:true"`

	Result      string `json:"result" gorm:"size:20"`
	PerformedBy string `json:"performed_by" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
}

func (Calibration) TableName() string {
	return "qms_equipment_calibrations"
}
