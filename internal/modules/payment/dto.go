package payment

type CreatePaymentRequest struct {
	ReservationID int64    `json:"reservation_id" validate:"required"`
	Amount        float64  `json:"amount" validate:"gte=0"`
	CommissionPct *float64 `json:"commission_pct" validate:"omitempty,gte=0,lte=100"`
	Method        string   `json:"method" validate:"required"`
	Notes         string   `json:"notes"`
}

type UpdatePaymentRequest struct {
	Status *string `json:"status"`
	Method *string `json:"method"`
	Notes  *string `json:"notes"`
}
