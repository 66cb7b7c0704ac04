package bookings

import "time"

type CreateBookingRequest struct {
	Customer        int64     `json:"customer" validate:"required"`
	Room            int64     `json:"room" validate:"required"`
	CheckInDate     time.Time `json:"checkInDate" validate:"required"`
	CheckOutDate    time.Time `json:"checkOutDate" validate:"required"`
	TotalAmount     float64   `json:"totalAmount" validate:"gte=0"`
	Status          string    `json:"status" validate:"omitempty,oneof=confirmed checked-in checked-out cancelled"`
	SpecialRequests string    `json:"specialRequests"`
}

type UpdateBookingStatusRequest struct {
	ID     int64  `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type ListBookingsRequest struct {
	Status string
	Page   int
	Limit  int
}
