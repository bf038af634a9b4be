// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create stores a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves the most recent notifications for a user.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkRead stamps a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
