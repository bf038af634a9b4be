// Package notification contains notification-related use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// CheckBudgetAlertsInput represents the input for a budget alert sweep.
type CheckBudgetAlertsInput struct {
	UserID uuid.UUID
}

// CheckBudgetAlertsOutput represents the output of a budget alert sweep.
type CheckBudgetAlertsOutput struct {
	Raised []*entity.Notification
}

// CheckBudgetAlertsUseCase computes the current month's summary and records a
// notification for every category whose spending exceeds its budget. Email
// delivery is best effort and respects the user's notification settings.
type CheckBudgetAlertsUseCase struct {
	loader           *report.SnapshotLoader
	clock            adapter.Clock
	userRepo         adapter.UserRepository
	notificationRepo adapter.NotificationRepository
	alertSender      adapter.AlertSender
}

// NewCheckBudgetAlertsUseCase creates a new CheckBudgetAlertsUseCase instance.
func NewCheckBudgetAlertsUseCase(
	loader *report.SnapshotLoader,
	clock adapter.Clock,
	userRepo adapter.UserRepository,
	notificationRepo adapter.NotificationRepository,
	alertSender adapter.AlertSender,
) *CheckBudgetAlertsUseCase {
	return &CheckBudgetAlertsUseCase{
		loader:           loader,
		clock:            clock,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		alertSender:      alertSender,
	}
}

// Execute performs the sweep for the current month.
func (uc *CheckBudgetAlertsUseCase) Execute(ctx context.Context, input CheckBudgetAlertsInput) (*CheckBudgetAlertsOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.BudgetAlerts {
		return &CheckBudgetAlertsOutput{}, nil
	}

	month := valueobject.MonthOf(uc.clock.Now())
	snapshot, err := uc.loader.LoadMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, err
	}
	summary := report.ComputeMonth(*snapshot, month)

	output := &CheckBudgetAlertsOutput{}
	for _, row := range summary.Categories {
		if row.Budget.IsZero() || !row.Spent.GreaterThan(row.Budget) {
			continue
		}

		channels := []string{entity.NotificationChannelInApp}
		if user.EmailNotifications {
			channels = append(channels, entity.NotificationChannelEmail)
		}
		n := entity.NewNotification(
			input.UserID,
			entity.NotificationTypeBudgetOverrun,
			fmt.Sprintf("Budget exceeded for %s", row.Category),
			fmt.Sprintf("You spent %s of a %s budget in %s.", row.Spent, row.Budget, month.Key()),
			channels,
		)
		if err := uc.notificationRepo.Create(ctx, n); err != nil {
			return nil, fmt.Errorf("failed to record notification: %w", err)
		}
		output.Raised = append(output.Raised, n)

		if user.EmailNotifications && uc.alertSender != nil {
			uc.sendEmail(ctx, user, row, month)
		}
	}
	return output, nil
}

// sendEmail delivers the alert email; failures are logged and never fail the
// sweep.
func (uc *CheckBudgetAlertsUseCase) sendEmail(ctx context.Context, user *entity.User, row report.CategoryRow, month valueobject.Month) {
	_, err := uc.alertSender.SendBudgetAlert(ctx, adapter.BudgetAlertInput{
		To:           user.Email,
		Name:         user.Name,
		CategoryName: row.Category,
		Budget:       row.Budget,
		Spent:        row.Spent,
		MonthKey:     month.Key(),
	})
	if err != nil {
		slog.Warn("Failed to send budget alert email",
			"userID", user.ID,
			"category", row.Category,
			"error", err,
		)
	}
}
