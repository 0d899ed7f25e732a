package repository

import (
	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(tenant *model.Tenant) error
	FindByID(id uint) (*model.Tenant, error)
	FindActiveByID(id uint) (*model.Tenant, error)
	List(includeInactive bool) ([]model.Tenant, error)
	Update(tenant *model.Tenant) error
	SetActive(id uint, active bool) error
}

type tenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db}
}

func (r *tenantRepository) Create(tenant *model.Tenant) error {
	return r.db.Create(tenant).Error
}

func (r *tenantRepository) FindByID(id uint) (*model.Tenant, error) {
	var tenant model.Tenant
	err := r.db.First(&tenant, id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// FindActiveByID is what the session resolver uses: a soft-deleted tenant
// must resolve the same as a missing one.
func (r *tenantRepository) FindActiveByID(id uint) (*model.Tenant, error) {
	var tenant model.Tenant
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) List(includeInactive bool) ([]model.Tenant, error) {
	var tenants []model.Tenant
	q := r.db.Order("name asc")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&tenants).Error
	return tenants, err
}

func (r *tenantRepository) Update(tenant *model.Tenant) error {
	return r.db.Save(tenant).Error
}

func (r *tenantRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&model.Tenant{}).Where("id = ?", id).Update("is_active", active).Error
}
