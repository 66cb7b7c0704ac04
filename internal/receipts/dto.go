package receipts

import "time"

type CreateReceiptRequest struct {
	ReceiptNumber string     `json:"receiptNumber"`
	Customer      int64      `json:"customer" validate:"required"`
	Booking       *int64     `json:"booking"`
	PaymentMethod string     `json:"paymentMethod" validate:"required,oneof=Cash 'EVC Plus' Bank 'Credit Card'"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Date          *time.Time `json:"date"`
	Description   *string    `json:"description"`
	Account       int64      `json:"account" validate:"required"`
	Status        string     `json:"status" validate:"omitempty,oneof=Pending Completed Cancelled"`
}

type ListReceiptsRequest struct {
	CustomerID int64
	Status     string
	Page       int
	Limit      int
}
