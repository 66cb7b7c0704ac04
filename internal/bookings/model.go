package bookings

import "time"

// BookingStatus is the lifecycle state of a stay.
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked-out"
	StatusCancelled  BookingStatus = "cancelled"
)

// BookingCustomer is the slim customer view embedded in booking responses.
type BookingCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingRoom is the slim room view embedded in booking responses.
type BookingRoom struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
}

// Booking is a reservation of one room for one customer over [checkIn, checkOut).
type Booking struct {
	ID              int64            `json:"id" db:"id"`
	CustomerID      int64            `json:"customerId" db:"customer_id"`
	RoomID          int64            `json:"roomId" db:"room_id"`
	Customer        *BookingCustomer `json:"customer,omitempty"`
	Room            *BookingRoom     `json:"room,omitempty"`
	CheckInDate     time.Time        `json:"checkInDate" db:"check_in_date"`
	CheckOutDate    time.Time        `json:"checkOutDate" db:"check_out_date"`
	TotalAmount     float64          `json:"totalAmount" db:"total_amount"`
	Status          BookingStatus    `json:"status" db:"status"`
	SpecialRequests string           `json:"specialRequests" db:"special_requests"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// Overlaps reports whether two half-open stay intervals collide. A stay that
// ends on the day another begins does not conflict; the room turns over the
// same day.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}
