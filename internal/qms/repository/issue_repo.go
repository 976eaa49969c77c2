package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
	"github.com/bitfantasy/nimo-qms/internal/qms/report"
)

// IssueRepository 不合格项仓库
type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// FindInWindow 查询开立时间落在统计区间内的不合格项
func (r *IssueRepository) FindInWindow(ctx context.Context, window report.Range) ([]entity.Issue, error) {
	var items []entity.Issue
	err := r.db.WithContext(ctx).
		Where("opened_at >= ? AND opened_at < ?", window.Start, window.End).
		Order("opened_at ASC").
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找不合格项
func (r *IssueRepository) FindByID(ctx context.Context, id string) (*entity.Issue, error) {
	var issue entity.Issue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&issue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &issue, nil
}
