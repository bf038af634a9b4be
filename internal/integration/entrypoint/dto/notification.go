// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Channels  []string   `json:"channels"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain Notification entity to a NotificationResponse DTO.
func ToNotificationResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID.String(),
		Type:      string(notification.Type),
		Title:     notification.Title,
		Body:      notification.Body,
		Channels:  notification.Channels,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}

// ToNotificationListResponse converts a list of notifications to NotificationListResponse.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = ToNotificationResponse(n)
	}
	return NotificationListResponse{
		Notifications: responses,
	}
}
