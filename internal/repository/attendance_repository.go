package repository

import (
	"fmt"

	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

// monthPrefix formats "2024-03" style prefixes for date-column LIKE scans.
func monthPrefix(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

type AttendanceRepository interface {
	Create(record *model.AttendanceRecord) error
	GetByDate(memberID uint, date string) (*model.AttendanceRecord, error)
	Update(record *model.AttendanceRecord) error
	GetHistory(memberID uint, startDate, endDate string) ([]model.AttendanceRecord, error)
	GetByMonth(memberID uint, month, year int) ([]model.AttendanceRecord, error)
	CountPresentOnDate(tenantID uint, date string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(record *model.AttendanceRecord) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) GetByDate(memberID uint, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.Where("member_id = ? AND date = ?", memberID, date).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) Update(record *model.AttendanceRecord) error {
	return r.db.Save(record).Error
}

func (r *attendanceRepository) GetHistory(memberID uint, startDate, endDate string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	q := r.db.Where("member_id = ?", memberID).Order("date desc")
	if startDate != "" {
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("date <= ?", endDate)
	}
	err := q.Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetByMonth(memberID uint, month, year int) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("member_id = ? AND date LIKE ?", memberID, monthPrefix(month, year)+"%").
		Order("date asc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) CountPresentOnDate(tenantID uint, date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceRecord{}).
		Joins("JOIN members ON members.id = attendance_records.member_id").
		Where("attendance_records.date = ? AND members.tenant_id = ?", date, tenantID).
		Count(&count).Error
	return count, err
}
