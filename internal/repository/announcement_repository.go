package repository

import (
	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(announcement *model.Announcement) error
	GetByID(id uint) (*model.Announcement, error)
	ListActiveByTenant(tenantID uint) ([]model.Announcement, error)
	Update(announcement *model.Announcement) error
	CountActiveByTenant(tenantID uint) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db}
}

func (r *announcementRepository) Create(announcement *model.Announcement) error {
	return r.db.Create(announcement).Error
}

func (r *announcementRepository) GetByID(id uint) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.db.First(&announcement, id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) ListActiveByTenant(tenantID uint) ([]model.Announcement, error) {
	var list []model.Announcement
	err := r.db.Preload("Author").
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *announcementRepository) Update(announcement *model.Announcement) error {
	return r.db.Save(announcement).Error
}

func (r *announcementRepository) CountActiveByTenant(tenantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Announcement{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).Count(&count).Error
	return count, err
}
