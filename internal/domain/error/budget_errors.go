// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetMonth is returned when the budget month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("budget month must be between 1 and 12")

	// ErrMissingBudgetCategory is returned when the budget category name is empty.
	ErrMissingBudgetCategory = errors.New("budget category is required")

	// ErrEmptyBudgetMonths is returned when no months are selected for a budget.
	ErrEmptyBudgetMonths = errors.New("at least one month is required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BGT-010002"
	ErrCodeMissingBudgetCategory BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010004"
	ErrCodeNotAuthorizedBudget   BudgetErrorCode = "BGT-010005"
	ErrCodeEmptyBudgetMonths     BudgetErrorCode = "BGT-010006"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
