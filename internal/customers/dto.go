package customers

type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=50"`
	Address  string `json:"address" validate:"required,max=500"`
	IDNumber string `json:"idNumber" validate:"required,max=50"`
}

type ListCustomersRequest struct {
	Search string
	Page   int
	Limit  int
}
