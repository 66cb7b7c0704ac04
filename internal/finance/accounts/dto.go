package accounts

type CreateAccountRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Institution   string  `json:"institution" validate:"required,max=200"`
	Balance       float64 `json:"balance"`
	Type          string  `json:"type" validate:"required,oneof=Checking Savings Credit Cash"`
	AccountNumber string  `json:"accountNumber" validate:"required,max=50"`
	Description   string  `json:"description"`
}
