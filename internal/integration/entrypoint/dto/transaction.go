// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecurrenceRequest represents the recurrence window in transaction requests.
// Months are "YYYY-MM" keys.
type RecurrenceRequest struct {
	StartMonth string `json:"start_month" binding:"required"`
	EndMonth   string `json:"end_month" binding:"required"`
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount     string             `json:"amount" binding:"required"`
	Category   string             `json:"category" binding:"required"`
	Note       string             `json:"note,omitempty" binding:"omitempty,max=500"`
	Date       string             `json:"date,omitempty"`
	Type       string             `json:"type" binding:"required,oneof=expense income"`
	Recurrence *RecurrenceRequest `json:"recurrence,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// ClearRecurrence turns a recurring template back into a one-off transaction.
type UpdateTransactionRequest struct {
	Amount          *string            `json:"amount,omitempty"`
	Category        *string            `json:"category,omitempty"`
	Note            *string            `json:"note,omitempty" binding:"omitempty,max=500"`
	Date            *string            `json:"date,omitempty"`
	Type            *string            `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Recurrence      *RecurrenceRequest `json:"recurrence,omitempty"`
	ClearRecurrence bool               `json:"clear_recurrence,omitempty"`
}

// RecurrenceResponse represents the recurrence window in transaction responses.
type RecurrenceResponse struct {
	StartMonth string `json:"start_month"`
	EndMonth   string `json:"end_month"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	Amount            string              `json:"amount"`
	Category          string              `json:"category"`
	Note              string              `json:"note"`
	Date              string              `json:"date"`
	Type              string              `json:"type"`
	Recurrence        *RecurrenceResponse `json:"recurrence,omitempty"`
	RecurringSourceID *string             `json:"recurring_source_id,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	Materialized int                 `json:"materialized,omitempty"`
}

// UpdateTransactionResponse represents the response for transaction update.
type UpdateTransactionResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	Materialized int                 `json:"materialized,omitempty"`
	Retracted    int64               `json:"retracted,omitempty"`
}

// DeleteTransactionResponse represents the response for transaction deletion.
type DeleteTransactionResponse struct {
	Retracted int64 `json:"retracted"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:        txn.ID.String(),
		UserID:    txn.UserID.String(),
		Amount:    txn.Amount.String(),
		Category:  txn.CategoryRef,
		Note:      txn.Note,
		Date:      txn.Date.Format("2006-01-02"),
		Type:      string(txn.Type),
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}

	if txn.Recurrence != nil {
		response.Recurrence = &RecurrenceResponse{
			StartMonth: txn.Recurrence.StartMonth.Key(),
			EndMonth:   txn.Recurrence.EndMonth.Key(),
		}
	}
	if txn.RecurringSourceID != nil {
		sourceID := txn.RecurringSourceID.String()
		response.RecurringSourceID = &sourceID
	}

	return response
}

// ToTransactionListResponse converts a TransactionListResult to TransactionListResponse.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, txn := range result.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}
