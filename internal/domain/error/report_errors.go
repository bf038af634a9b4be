// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportMonth is returned when the report month is outside 1-12.
	ErrInvalidReportMonth = errors.New("report month must be between 1 and 12")

	// ErrInvalidReportYear is returned when the report year is not a positive number.
	ErrInvalidReportYear = errors.New("invalid report year")

	// ErrInvalidReportMode is returned when the report mode is not monthly or yearly.
	ErrInvalidReportMode = errors.New("report mode must be: monthly or yearly")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportYear  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportMode  ReportErrorCode = "RPT-010003"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
