package reservation

type CreateReservationRequest struct {
	PropertyID int64   `json:"property_id" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	GuestEmail string  `json:"guest_email"`
	GuestPhone string  `json:"guest_phone"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	Guests     int     `json:"guests" binding:"required,gte=1"`
	TotalPrice float64 `json:"total_price" binding:"gte=0"`
	Origin     string  `json:"origin" binding:"required"`
	Notes      string  `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
