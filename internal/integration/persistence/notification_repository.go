// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create stores a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	return r.db.WithContext(ctx).Create(notificationModel).Error
}

// FindByUser retrieves the most recent notifications for a user.
func (r *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// MarkRead stamps a notification as read.
func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", &now).Error
}
