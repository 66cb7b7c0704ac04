package ledger

import "time"

type CreateTransactionRequest struct {
	Type        string     `json:"type" validate:"required"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Description string     `json:"description" validate:"required"`
	Account     int64      `json:"account" validate:"required"`
	Reference   string     `json:"reference" validate:"required"`
	ReferenceID *int64     `json:"referenceId"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
}

type ListTransactionsRequest struct {
	AccountID int64
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}
