package model

import "gorm.io/gorm"

// User is the auth identity. Membership, role and tenant live on Member;
// a freshly registered User has no Member row until onboarding or an invite.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
}
