// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DefaultListLimit bounds how many notifications a listing returns.
const DefaultListLimit = 50

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
}

// ListNotificationsUseCase lists a user's most recent notifications.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo}
}

// Execute retrieves the notifications.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	notifications, err := uc.notificationRepo.FindByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return &ListNotificationsOutput{Notifications: notifications}, nil
}
