package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

// DocumentRepository 受控文件仓库
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// FindAll 查询全部受控文件
func (r *DocumentRepository) FindAll(ctx context.Context) ([]entity.Document, error) {
	var items []entity.Document
	err := r.db.WithContext(ctx).
		Order("doc_no ASC").
		Find(&items).Error
	return items, err
}
