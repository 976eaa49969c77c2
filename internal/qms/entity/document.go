package entity

import "time"

// Document 受控文件
type Document struct {
	ID         string     `json:"id" gorm:"primaryKey;size:32"`
	DocNo      string     `json:"doc_no" gorm:"size:32;uniqueIndex"`
	Name       string     `json:"name" gorm:"size:200;not null"`
	Category   string     `json:"category" gorm:"size:50"`
	ValidUntil *time.Time `json:"valid_until" gorm:"index"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Document) TableName() string {
	return "qms_documents"
}
