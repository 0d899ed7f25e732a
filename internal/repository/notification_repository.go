package repository

import (
	"peoplepulse/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	ListByMember(memberID uint) ([]model.Notification, error)
	MarkRead(memberID, id uint) error
	MarkAllRead(memberID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) ListByMember(memberID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.Where("member_id = ?", memberID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *notificationRepository) MarkRead(memberID, id uint) error {
	return r.db.Model(&model.Notification{}).
		Where("id = ? AND member_id = ?", id, memberID).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(memberID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("member_id = ? AND is_read = ?", memberID, false).
		Update("is_read", true).Error
}
