package accounts

import "time"

// AccountType is the kind of financial account held by the hotel.
type AccountType string

const (
	TypeChecking AccountType = "Checking"
	TypeSavings  AccountType = "Savings"
	TypeCredit   AccountType = "Credit"
	TypeCash     AccountType = "Cash"
)

// Account is a bank or cash account whose balance the ledger maintains.
type Account struct {
	ID            int64       `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Institution   string      `json:"institution" db:"institution"`
	Balance       float64     `json:"balance" db:"balance"`
	Type          AccountType `json:"type" db:"type"`
	AccountNumber string      `json:"accountNumber" db:"account_number"`
	Description   string      `json:"description" db:"description"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}
