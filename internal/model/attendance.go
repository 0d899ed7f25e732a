package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceLate    = "late"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord holds one row per member per calendar date. The unique
// index backs the check-in pre-check so a concurrent double check-in loses.
type AttendanceRecord struct {
	gorm.Model
	MemberID   uint       `json:"member_id" gorm:"uniqueIndex:idx_member_date;not null"`
	Date       string     `json:"date" gorm:"uniqueIndex:idx_member_date;not null"` // "2006-01-02"
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	TotalHours float64    `json:"total_hours"`
	Status     string     `json:"status"`
}
