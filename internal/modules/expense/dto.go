package expense

type CreateExpenseRequest struct {
	PropertyID  int64   `json:"property_id" validate:"required"`
	Month       string  `json:"month" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

type UpdateExpenseRequest struct {
	Month       *string  `json:"month"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}
