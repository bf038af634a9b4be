package mock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// AlertSender records budget alert emails instead of delivering them.
type AlertSender struct {
	mu   sync.Mutex
	sent []adapter.BudgetAlertInput
}

func NewAlertSender() *AlertSender {
	return &AlertSender{}
}

func (s *AlertSender) SendBudgetAlert(_ context.Context, input adapter.BudgetAlertInput) (*adapter.AlertSenderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, input)
	return &adapter.AlertSenderResult{ProviderID: uuid.NewString()}, nil
}

// Sent returns a copy of every alert recorded so far.
func (s *AlertSender) Sent() []adapter.BudgetAlertInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]adapter.BudgetAlertInput, len(s.sent))
	copy(out, s.sent)
	return out
}

// Reset discards all recorded alerts.
func (s *AlertSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}
