package model

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	MemberID uint   `json:"member_id" gorm:"index;not null"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	IsRead   bool   `json:"is_read" gorm:"default:false"`
}
