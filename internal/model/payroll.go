package model

import (
	"time"

	"gorm.io/gorm"
)

// SalarySlip is immutable once generated; there is no update path. The
// composite unique index rejects a second slip for the same period.
type SalarySlip struct {
	gorm.Model
	MemberID    uint      `json:"member_id" gorm:"uniqueIndex:idx_member_period;not null"`
	Month       int       `json:"month" gorm:"uniqueIndex:idx_member_period;not null"`
	Year        int       `json:"year" gorm:"uniqueIndex:idx_member_period;not null"`
	Basic       float64   `json:"basic"`
	Allowances  float64   `json:"allowances"`
	Deductions  float64   `json:"deductions"`
	Net         float64   `json:"net"`
	DaysPresent int       `json:"days_present"`
	DaysAbsent  int       `json:"days_absent"`
	GeneratedAt time.Time `json:"generated_at"`

	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}
