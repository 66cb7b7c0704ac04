package serviceorders

import "time"

// OrderStatus is the fulfilment state of a service order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// OrderService is the slim catalog view embedded in order responses.
type OrderService struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderCustomer is the slim customer view embedded in order responses.
type OrderCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// OrderBooking is the slim booking view embedded in order responses.
type OrderBooking struct {
	ID           int64     `json:"id"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
}

// ServiceOrder records one delivery of a catalog service to a customer.
// TotalAmount is always Quantity times UnitPrice, fixed when the order is
// created.
type ServiceOrder struct {
	ID           int64          `json:"id" db:"id"`
	ServiceID    int64          `json:"serviceId" db:"service_id"`
	BookingID    *int64         `json:"bookingId,omitempty" db:"booking_id"`
	CustomerID   int64          `json:"customerId" db:"customer_id"`
	Service      *OrderService  `json:"service,omitempty"`
	Customer     *OrderCustomer `json:"customer,omitempty"`
	Booking      *OrderBooking  `json:"booking,omitempty"`
	Quantity     int            `json:"quantity" db:"quantity"`
	UnitPrice    float64        `json:"unitPrice" db:"unit_price"`
	TotalAmount  float64        `json:"totalAmount" db:"total_amount"`
	DateProvided time.Time      `json:"dateProvided" db:"date_provided"`
	Status       OrderStatus    `json:"status" db:"status"`
	Notes        *string        `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}
