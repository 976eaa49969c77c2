package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

// Store 把仓库集合适配成聚合引擎的数据源
type Store struct {
	repos *Repositories
}

var _ report.Fetcher = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{repos: NewRepositories(db)}
}

func (s *Store) Issues(ctx context.Context, r report.Range) ([]entity.Issue, error) {
	return s.repos.Issue.FindInWindow(ctx, r)
}

func (s *Store) Costs(ctx context.Context, r report.Range) ([]entity.QualityCost, error) {
	return s.repos.Cost.FindInWindow(ctx, r)
}

func (s *Store) Complaints(ctx context.Context, r report.Range) ([]entity.Complaint, error) {
	return s.repos.Complaint.FindInWindow(ctx, r)
}

func (s *Store) Audits(ctx context.Context, r report.Range) ([]entity.Audit, error) {
	return s.repos.Compliance.FindAuditsInWindow(ctx, r)
}

func (s *Store) Quarantine(ctx context.Context, r report.Range) ([]entity.QuarantineRecord, error) {
	return s.repos.Compliance.FindQuarantineInWindow(ctx, r)
}

func (s *Store) Deviations(ctx context.Context, r report.Range) ([]entity.Deviation, error) {
	return s.repos.Compliance.FindDeviationsInWindow(ctx, r)
}

func (s *Store) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	return s.repos.Supplier.FindAllWithRelations(ctx)
}

func (s *Store) Equipment(ctx context.Context) ([]entity.Equipment, error) {
	return s.repos.Equipment.FindAllWithCalibrations(ctx)
}

func (s *Store) Documents(ctx context.Context) ([]entity.Document, error) {
	return s.repos.Document.FindAll(ctx)
}

func (s *Store) KPIs(ctx context.Context) ([]entity.KPI, error) {
	return s.repos.Indicator.FindKPIs(ctx)
}

func (s *Store) QualityGoals(ctx context.Context) ([]entity.QualityGoal, error) {
	return s.repos.Indicator.FindQualityGoals(ctx)
}

func (s *Store) Benchmarks(ctx context.Context) ([]entity.Benchmark, error) {
	return s.repos.Indicator.FindBenchmarks(ctx)
}

func (s *Store) RiskAssessments(ctx context.Context) ([]entity.RiskAssessment, error) {
	return s.repos.Indicator.FindRiskAssessments(ctx)
}
