package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeaveCasual = "casual"
	LeaveSick   = "sick"
	LeaveEarned = "earned"

	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

func ValidLeaveType(t string) bool {
	return t == LeaveCasual || t == LeaveSick || t == LeaveEarned
}

// LeaveBalance tracks per-category annual entitlement. Available is always
// derived as total - used, never stored. Nothing in the approval flow
// mutates the used counters; see DESIGN.md.
type LeaveBalance struct {
	gorm.Model
	MemberID    uint `json:"member_id" gorm:"uniqueIndex:idx_member_year;not null"`
	Year        int  `json:"year" gorm:"uniqueIndex:idx_member_year;not null"`
	CasualTotal int  `json:"casual_total" gorm:"default:12"`
	CasualUsed  int  `json:"casual_used" gorm:"default:0"`
	SickTotal   int  `json:"sick_total" gorm:"default:10"`
	SickUsed    int  `json:"sick_used" gorm:"default:0"`
	EarnedTotal int  `json:"earned_total" gorm:"default:15"`
	EarnedUsed  int  `json:"earned_used" gorm:"default:0"`
}

// NewLeaveBalance seeds the default annual entitlement. Defaults live here
// rather than in column defaults so freshly created rows round-trip the
// same values they were stored with.
func NewLeaveBalance(memberID uint, year int) LeaveBalance {
	return LeaveBalance{
		MemberID:    memberID,
		Year:        year,
		CasualTotal: 12,
		SickTotal:   10,
		EarnedTotal: 15,
	}
}

type LeaveRequest struct {
	gorm.Model
	MemberID      uint       `json:"member_id" gorm:"index;not null"`
	LeaveType     string     `json:"leave_type" gorm:"not null"`
	StartDate     string     `json:"start_date" gorm:"not null"` // "2006-01-02"
	EndDate       string     `json:"end_date" gorm:"not null"`
	DaysRequested int        `json:"days_requested"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status" gorm:"default:pending"`
	ApprovedBy    *uint      `json:"approved_by"`
	ApprovedAt    *time.Time `json:"approved_at"`

	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}
