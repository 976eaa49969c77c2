package report

import (
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// EquipmentMetrics 设备领域指标
type EquipmentMetrics struct {
	Total               int `json:"total"`
	OverdueCalibrations int `json:"overdue_calibrations"`
}

// latestActiveCalibration 有效校准记录中校准日期最新的一条。
// 无日期的记录排最后，同日期按ID降序决出。
func latestActiveCalibration(calibrations []entity.Calibration) *entity.Calibration {
	var latest *entity.Calibration
	for idx := range calibrations {
		c := &calibrations[idx]
		if !c.IsActive {
			continue
		}
		if latest == nil {
			latest = c
			continue
		}
		switch {
		case c.CalibrationDate == nil:
		case latest.CalibrationDate == nil, c.CalibrationDate.After(*latest.CalibrationDate):
			latest = c
		case c.CalibrationDate.Equal(*latest.CalibrationDate) && c.ID > latest.ID:
			latest = c
		}
	}
	return latest
}

// AggregateEquipment 设备聚合。
// 超期校准按每台设备最新一次有效校准的下次到期日判断；已报废设备整体排除。
func AggregateEquipment(equipments []entity.Equipment, now time.Time) EquipmentMetrics {
	m := EquipmentMetrics{Total: len(equipments)}

	for _, eq := range equipments {
		if eq.Status == entity.EquipmentStatusScrapped {
			continue
		}
		latest := latestActiveCalibration(eq.Calibrations)
		if latest == nil || latest.NextCalibrationDate == nil {
			continue
		}
		if dateOnly(*latest.NextCalibrationDate).Before(dateOnly(now)) {
			m.OverdueCalibrations++
		}
	}

	return m
}
