package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// IndicatorRepository 指标类仓库：KPI、质量目标、对标、风险评估
type IndicatorRepository struct {
	db *gorm.DB
}

func NewIndicatorRepository(db *gorm.DB) *IndicatorRepository {
	return &IndicatorRepository{db: db}
}

// FindKPIs 查询全部KPI
func (r *IndicatorRepository) FindKPIs(ctx context.Context) ([]entity.KPI, error) {
	var items []entity.KPI
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// FindQualityGoals 查询全部质量目标
func (r *IndicatorRepository) FindQualityGoals(ctx context.Context) ([]entity.QualityGoal, error) {
	var items []entity.QualityGoal
	err := r.db.WithContext(ctx).Order("target_date ASC").Find(&items).Error
	return items, err
}

// FindBenchmarks 查询全部对标数据
func (r *IndicatorRepository) FindBenchmarks(ctx context.Context) ([]entity.Benchmark, error) {
	var items []entity.Benchmark
	err := r.db.WithContext(ctx).Order("metric ASC").Find(&items).Error
	return items, err
}

// FindRiskAssessments 查询全部风险评估
func (r *IndicatorRepository) FindRiskAssessments(ctx context.Context) ([]entity.RiskAssessment, error) {
	var items []entity.RiskAssessment
	err := r.db.WithContext(ctx).Order("score DESC").Find(&items).Error
	return items, err
}
