// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// MarkNotificationReadInput represents the input for marking a notification read.
type MarkNotificationReadInput struct {
	UserID         uuid.UUID
	NotificationID uuid.UUID
}

// MarkNotificationReadUseCase stamps a notification as read.
type MarkNotificationReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkNotificationReadUseCase creates a new MarkNotificationReadUseCase instance.
func NewMarkNotificationReadUseCase(notificationRepo adapter.NotificationRepository) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notificationRepo: notificationRepo}
}

// Execute marks the notification as read.
func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, input MarkNotificationReadInput) error {
	if err := uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.UserID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
