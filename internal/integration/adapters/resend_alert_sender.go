// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// resendAlertSender implements the adapter.AlertSender interface using Resend.
type resendAlertSender struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendAlertSender creates an alert sender backed by the Resend API.
func NewResendAlertSender(apiKey, fromName, fromEmail string) adapter.AlertSender {
	return &resendAlertSender{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendBudgetAlert sends a budget-overrun alert email.
func (s *resendAlertSender) SendBudgetAlert(ctx context.Context, input adapter.BudgetAlertInput) (*adapter.AlertSenderResult, error) {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	subject := fmt.Sprintf("Budget exceeded: %s (%s)", input.CategoryName, input.MonthKey)

	overspend := input.Spent.Sub(input.Budget)
	html := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your spending in <strong>%s</strong> reached <strong>%s</strong> in %s, "+
			"which is <strong>%s</strong> over your budget of %s.</p>"+
			"<p>You can review the transactions and adjust your budget in the app.</p>",
		input.Name, input.CategoryName, input.Spent.String(), input.MonthKey,
		overspend.String(), input.Budget.String(),
	)
	text := fmt.Sprintf(
		"Hi %s,\n\nYour spending in %s reached %s in %s, which is %s over your budget of %s.\n",
		input.Name, input.CategoryName, input.Spent.String(), input.MonthKey,
		overspend.String(), input.Budget.String(),
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	resp, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to send budget alert: %w", err)
	}

	return &adapter.AlertSenderResult{
		ProviderID: resp.Id,
	}, nil
}
