package model

import "gorm.io/gorm"

// Tenant is a customer company. Never physically deleted: IsActive is
// toggled instead so member rows keep a resolvable owner.
type Tenant struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
