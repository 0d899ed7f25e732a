package repository

import (
	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

type PayrollRepository interface {
	Create(slip *model.SalarySlip) error
	GetByPeriod(memberID uint, month, year int) (*model.SalarySlip, error)
	ListByMember(memberID uint) ([]model.SalarySlip, error)
	ListByTenant(tenantID uint, month, year int) ([]model.SalarySlip, error)
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db}
}

func (r *payrollRepository) Create(slip *model.SalarySlip) error {
	return r.db.Create(slip).Error
}

func (r *payrollRepository) GetByPeriod(memberID uint, month, year int) (*model.SalarySlip, error) {
	var slip model.SalarySlip
	err := r.db.Where("member_id = ? AND month = ? AND year = ?", memberID, month, year).
		First(&slip).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *payrollRepository) ListByMember(memberID uint) ([]model.SalarySlip, error) {
	var slips []model.SalarySlip
	err := r.db.Where("member_id = ?", memberID).
		Order("year desc").Order("month desc").Find(&slips).Error
	return slips, err
}

func (r *payrollRepository) ListByTenant(tenantID uint, month, year int) ([]model.SalarySlip, error) {
	var slips []model.SalarySlip
	q := r.db.Preload("Member").
		Joins("JOIN members ON members.id = salary_slips.member_id").
		Where("members.tenant_id = ?", tenantID).
		Order("salary_slips.year desc").Order("salary_slips.month desc")
	if month > 0 {
		q = q.Where("salary_slips.month = ?", month)
	}
	if year > 0 {
		q = q.Where("salary_slips.year = ?", year)
	}
	err := q.Find(&slips).Error
	return slips, err
}
