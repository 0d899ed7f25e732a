package model

import "gorm.io/gorm"

type Announcement struct {
	gorm.Model
	TenantID uint   `json:"tenant_id" gorm:"index;not null"`
	AuthorID uint   `json:"author_id" gorm:"not null"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Author Member `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
