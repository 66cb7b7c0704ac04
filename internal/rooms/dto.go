package rooms

type CreateRoomRequest struct {
	RoomNumber  string   `json:"roomNumber" validate:"required,max=20"`
	Type        string   `json:"type" validate:"required,max=100"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	Description string   `json:"description"`
}

type ListRoomsRequest struct {
	Status string
	Page   int
	Limit  int
}
