package repository

import (
	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id uint) (*model.Member, error)
	FindByUserID(userID uint) (*model.Member, error)
	FindByTenantAndID(tenantID, id uint) (*model.Member, error)
	ListByTenant(tenantID uint) ([]model.Member, error)
	ListOrphaned() ([]model.Member, error)
	Update(member *model.Member) error
	Delete(id uint) error
	CountByTenant(tenantID uint) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db}
}

func (r *memberRepository) Create(member *model.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepository) FindByID(id uint) (*model.Member, error) {
	var member model.Member
	err := r.db.Preload("Tenant").First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByUserID is the membership-role lookup the session resolver runs on
// every cache miss. gorm.ErrRecordNotFound means "needs onboarding".
func (r *memberRepository) FindByUserID(userID uint) (*model.Member, error) {
	var member model.Member
	err := r.db.Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByTenantAndID(tenantID, id uint) (*model.Member, error) {
	var member model.Member
	err := r.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) ListByTenant(tenantID uint) ([]model.Member, error) {
	var members []model.Member
	err := r.db.Where("tenant_id = ?", tenantID).Order("first_name asc").Find(&members).Error
	return members, err
}

// ListOrphaned returns members whose tenant row is gone or deactivated,
// left behind by pre-transactional multi-step creations.
func (r *memberRepository) ListOrphaned() ([]model.Member, error) {
	var members []model.Member
	err := r.db.
		Joins("LEFT JOIN tenants ON tenants.id = members.tenant_id AND tenants.deleted_at IS NULL").
		Where("tenants.id IS NULL OR tenants.is_active = ?", false).
		Find(&members).Error
	return members, err
}

func (r *memberRepository) Update(member *model.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepository) Delete(id uint) error {
	return r.db.Delete(&model.Member{}, id).Error
}

func (r *memberRepository) CountByTenant(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Member{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}
