package ledger

import "time"

// TxType is the direction of a transaction.
type TxType string

const (
	TypeIncome  TxType = "Income"
	TypeExpense TxType = "Expense"
)

// Reference names the origin of a posting.
type Reference string

const (
	ReferenceBooking Reference = "Booking"
	ReferenceService Reference = "Service"
	ReferenceManual  Reference = "Manual"
)

// TxAccount is the slim account view embedded in transaction listings.
type TxAccount struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
}

// Transaction is a single ledger entry. Creating one moves its account's
// balance by exactly its amount, Income up and Expense down.
type Transaction struct {
	ID          int64      `json:"id" db:"id"`
	Date        time.Time  `json:"date" db:"date"`
	Type        TxType     `json:"type" db:"type"`
	Amount      float64    `json:"amount" db:"amount"`
	Description string     `json:"description" db:"description"`
	AccountID   int64      `json:"accountId" db:"account_id"`
	Account     *TxAccount `json:"account,omitempty"`
	Reference   Reference  `json:"reference" db:"reference"`
	ReferenceID *int64     `json:"referenceId,omitempty" db:"reference_id"`
	Category    *string    `json:"category,omitempty" db:"category"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// BalanceDelta returns the signed effect of a posting on its account balance.
// Types outside Income and Expense move nothing; the entry is still recorded.
func BalanceDelta(txType TxType, amount float64) float64 {
	switch txType {
	case TypeIncome:
		return amount
	case TypeExpense:
		return -amount
	default:
		return 0
	}
}
