package serviceorders

import "time"

type CreateServiceOrderRequest struct {
	Service      int64      `json:"service" validate:"required"`
	Customer     int64      `json:"customer" validate:"required"`
	Booking      *int64     `json:"booking"`
	Quantity     int        `json:"quantity" validate:"gte=0"`
	UnitPrice    *float64   `json:"unitPrice"`
	DateProvided *time.Time `json:"dateProvided"`
	Status       string     `json:"status" validate:"omitempty,oneof=Pending Completed Cancelled"`
	Notes        *string    `json:"notes"`
}
