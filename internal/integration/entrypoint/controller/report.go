// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	dashboardUseCase *report.GetDashboardSummaryUseCase
	overviewUseCase  *report.GetBudgetOverviewUseCase
	spendingUseCase  *report.GetSpendingReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.GetDashboardSummaryUseCase,
	overviewUseCase *report.GetBudgetOverviewUseCase,
	spendingUseCase *report.GetSpendingReportUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase: dashboardUseCase,
		overviewUseCase:  overviewUseCase,
		spendingUseCase:  spendingUseCase,
	}
}

// Dashboard handles GET /reports/dashboard requests. It renders the current
// month's summary, served from cache when fresh.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.GetDashboardSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// BudgetOverview handles GET /reports/budget-overview requests.
func (c *ReportController) BudgetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetBudgetOverviewInput{UserID: userID}
	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = year
		}
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Spending handles GET /reports/spending requests.
func (c *ReportController) Spending(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetSpendingReportInput{
		UserID: userID,
		Mode:   report.ReportMode(ctx.DefaultQuery("mode", string(report.ReportModeMonthly))),
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = year
		}
	}

	output, err := c.spendingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportMonth,
		domainerror.ErrCodeInvalidReportYear,
		domainerror.ErrCodeInvalidReportMode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
