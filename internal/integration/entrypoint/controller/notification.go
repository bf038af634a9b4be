// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/notification"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase     *notification.ListNotificationsUseCase
	markReadUseCase *notification.MarkNotificationReadUseCase
	checkUseCase    *notification.CheckBudgetAlertsUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkNotificationReadUseCase,
	checkUseCase *notification.CheckBudgetAlertsUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
		checkUseCase:    checkUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := notification.ListNotificationsInput{UserID: userID}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}

// MarkRead handles POST /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	input := notification.MarkNotificationReadInput{
		UserID:         userID,
		NotificationID: notificationID,
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark notification as read",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CheckBudgetAlerts handles POST /notifications/check requests. It evaluates
// the current month's budgets and raises overrun alerts.
func (c *NotificationController) CheckBudgetAlerts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), notification.CheckBudgetAlertsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to check budget alerts",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"alerts_raised": len(output.Raised),
		"notifications": dto.ToNotificationListResponse(output.Raised).Notifications,
	})
}
