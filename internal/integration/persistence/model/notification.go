// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ChannelList is a Postgres text array column that also scans from drivers
// returning plain strings.
type ChannelList pq.StringArray

// Value implements driver.Valuer.
func (c ChannelList) Value() (driver.Value, error) {
	return pq.StringArray(c).Value()
}

// Scan implements sql.Scanner.
func (c *ChannelList) Scan(src any) error {
	if s, ok := src.(string); ok {
		src = []byte(s)
	}
	return (*pq.StringArray)(c).Scan(src)
}

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type      string      `gorm:"type:varchar(30);not null"`
	Title     string      `gorm:"type:varchar(255);not null"`
	Body      string      `gorm:"type:text"`
	Channels  ChannelList `gorm:"type:text[]"`
	ReadAt    *time.Time  `gorm:"type:timestamptz"`
	CreatedAt time.Time   `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.NotificationType(m.Type),
		Title:     m.Title,
		Body:      m.Body,
		Channels:  []string(m.Channels),
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Body:      notification.Body,
		Channels:  ChannelList(notification.Channels),
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}
