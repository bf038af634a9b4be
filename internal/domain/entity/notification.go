// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a stored notification.
type NotificationType string

const (
	NotificationTypeBudgetOverrun NotificationType = "budget_overrun"
	NotificationTypeBudgetWarning NotificationType = "budget_warning"
)

// Notification channels.
const (
	NotificationChannelInApp = "in_app"
	NotificationChannelEmail = "email"
)

// Notification represents an alert raised for a user, e.g. when spending in a
// category exceeds its budget.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Channels  []string
	ReadAt    *time.Time
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification.
func NewNotification(userID uuid.UUID, notificationType NotificationType, title, body string, channels []string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Body:      body,
		Channels:  channels,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkRead stamps the notification as read.
func (n *Notification) MarkRead(at time.Time) {
	n.ReadAt = &at
}
