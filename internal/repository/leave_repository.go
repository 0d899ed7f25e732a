package repository

import (
	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	CreateRequest(request *model.LeaveRequest) error
	GetRequestByID(id uint) (*model.LeaveRequest, error)
	ListByMember(memberID uint) ([]model.LeaveRequest, error)
	ListByTenant(tenantID uint, status string) ([]model.LeaveRequest, error)
	UpdateRequest(request *model.LeaveRequest) error
	CountPendingByTenant(tenantID uint) (int64, error)

	GetBalance(memberID uint, year int) (*model.LeaveBalance, error)
	CreateBalance(balance *model.LeaveBalance) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) CreateRequest(request *model.LeaveRequest) error {
	return r.db.Create(request).Error
}

func (r *leaveRepository) GetRequestByID(id uint) (*model.LeaveRequest, error) {
	var request model.LeaveRequest
	err := r.db.Preload("Member").First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) ListByMember(memberID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("member_id = ?", memberID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) ListByTenant(tenantID uint, status string) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	q := r.db.Preload("Member").
		Joins("JOIN members ON members.id = leave_requests.member_id").
		Where("members.tenant_id = ?", tenantID).
		Order("leave_requests.created_at desc")
	if status != "" {
		q = q.Where("leave_requests.status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *leaveRepository) UpdateRequest(request *model.LeaveRequest) error {
	return r.db.Save(request).Error
}

func (r *leaveRepository) CountPendingByTenant(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequest{}).
		Joins("JOIN members ON members.id = leave_requests.member_id").
		Where("members.tenant_id = ? AND leave_requests.status = ?", tenantID, model.LeavePending).
		Count(&count).Error
	return count, err
}

func (r *leaveRepository) GetBalance(memberID uint, year int) (*model.LeaveBalance, error) {
	var balance model.LeaveBalance
	err := r.db.Where("member_id = ? AND year = ?", memberID, year).First(&balance).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *leaveRepository) CreateBalance(balance *model.LeaveBalance) error {
	return r.db.Create(balance).Error
}
