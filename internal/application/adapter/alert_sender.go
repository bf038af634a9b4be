// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// BudgetAlertInput represents the input for sending a budget-overrun alert.
type BudgetAlertInput struct {
	To           string
	Name         string
	CategoryName string
	Budget       decimal.Decimal
	Spent        decimal.Decimal
	MonthKey     string // "YYYY-MM"
}

// AlertSenderResult represents the result of sending an alert.
type AlertSenderResult struct {
	ProviderID string
}

// AlertSender defines the interface for delivering budget alerts via an
// external provider (e.g., Resend).
type AlertSender interface {
	// SendBudgetAlert sends a budget-overrun alert email.
	SendBudgetAlert(ctx context.Context, input BudgetAlertInput) (*AlertSenderResult, error)
}
