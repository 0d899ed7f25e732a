package model

import "gorm.io/gorm"

// Closed role set. Role lives on the membership row, never in the JWT.
const (
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

// Member binds a User to a Tenant with a role plus employment metadata.
// One membership per identity.
type Member struct {
	gorm.Model
	UserID     uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	TenantID   uint    `json:"tenant_id" gorm:"index;not null"`
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	HireDate   string  `json:"hire_date"` // "2006-01-02"
	Salary     float64 `json:"salary"`
	Role       string  `json:"role" gorm:"not null"`
	ManagerID  *uint   `json:"manager_id"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`

	Tenant  Tenant  `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Manager *Member `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}
