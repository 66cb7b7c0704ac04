package receipts

import "time"

// ReceiptStatus is the settlement state of a receipt.
type ReceiptStatus string

const (
	StatusPending   ReceiptStatus = "Pending"
	StatusCompleted ReceiptStatus = "Completed"
	StatusCancelled ReceiptStatus = "Cancelled"
)

// Payment methods accepted at the front desk.
const (
	MethodCash       = "Cash"
	MethodEVCPlus    = "EVC Plus"
	MethodBank       = "Bank"
	MethodCreditCard = "Credit Card"
)

// ReceiptCustomer is the slim customer view embedded in receipt responses.
type ReceiptCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ReceiptAccount is the slim account view embedded in receipt responses.
type ReceiptAccount struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Receipt is a numbered proof of payment handed to a customer.
type Receipt struct {
	ID            int64            `json:"id" db:"id"`
	ReceiptNumber string           `json:"receiptNumber" db:"receipt_number"`
	CustomerID    int64            `json:"customerId" db:"customer_id"`
	BookingID     *int64           `json:"bookingId,omitempty" db:"booking_id"`
	Customer      *ReceiptCustomer `json:"customer,omitempty"`
	Account       *ReceiptAccount  `json:"account,omitempty"`
	PaymentMethod string           `json:"paymentMethod" db:"payment_method"`
	Amount        float64          `json:"amount" db:"amount"`
	Date          time.Time        `json:"date" db:"date"`
	Description   *string          `json:"description,omitempty" db:"description"`
	AccountID     int64            `json:"accountId" db:"account_id"`
	Status        ReceiptStatus    `json:"status" db:"status"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
}
