package entity

import "time"

// 以下四类记录为透传集合：聚合引擎只读取并原样暴露，不做任何变换。

// KPI 质量KPI
type KPI struct {
	ID          string  `json:"id" gorm:"primaryKey;size:32"`
	Name        string  `json:"name" gorm:"size:200;not null"`
	Unit        string  `json:"unit" gorm:"size:32"`
	TargetValue float64 `json:"target_value"`
	ActualValue float64 `json:"actual_value"`
	Period      string  `json:"period" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KPI) TableName() string {
	return "qms_kpis"
}

// QualityGoal 质量目标
type QualityGoal struct {
	ID         string     `json:"id" gorm:"primaryKey;size:32"`
	Title      string     `json:"title" gorm:"size:200;not null"`
	TargetDate *time.Time `json:"target_date"`
	Progress   int        `json:"progress"` // 0-100
	Owner      string     `json:"owner" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QualityGoal) TableName() string {
	return "qms_quality_goals"
}

// Benchmark 对标数据
type Benchmark struct {
	ID            string  `json:"id" gorm:"primaryKey;size:32"`
	Metric        string  `json:"metric" gorm:"size:200;not null"`
	OwnValue      float64 `json:"own_value"`
	IndustryValue float64 `json:"industry_value"`
	Source        string  `json:"source" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Benchmark) TableName() string {
	return "qms_benchmarks"
}

// RiskAssessment 风险评估
type RiskAssessment struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Title    string `json:"title" gorm:"size:200;not null"`
	Category string `json:"category" gorm:"size:50"`
	Score    int    `json:"score"`
	Level    string `json:"level" gorm:"size:20"` // low/medium/high

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RiskAssessment) TableName() string {
	return "qms_risk_assessments"
}
