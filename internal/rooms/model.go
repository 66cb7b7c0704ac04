package rooms

import "time"

// RoomStatus is the administrative state of a room, set by staff. It is not
// synchronised automatically with bookings.
type RoomStatus string

const (
	StatusAvailable   RoomStatus = "available"
	StatusOccupied    RoomStatus = "occupied"
	StatusMaintenance RoomStatus = "maintenance"
)

// Room is a bookable hotel room.
type Room struct {
	ID          int64      `json:"id" db:"id"`
	RoomNumber  string     `json:"roomNumber" db:"room_number"`
	Type        string     `json:"type" db:"type"`
	Capacity    int        `json:"capacity" db:"capacity"`
	Price       float64    `json:"price" db:"price"`
	Amenities   []string   `json:"amenities" db:"amenities"`
	Status      RoomStatus `json:"status" db:"status"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
