package property

type CreatePropertyRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Type         string   `json:"type" binding:"required"`
	Capacity     int      `json:"capacity" binding:"required,gte=1"`
	Bedrooms     int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms    int      `json:"bathrooms" binding:"gte=0"`
	NightlyPrice float64  `json:"nightly_price" binding:"gte=0"`
	Photos       []string `json:"photos"`
	Amenities    []string `json:"amenities"`
}

type UpdatePropertyRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Country      *string   `json:"country"`
	Type         *string   `json:"type"`
	Capacity     *int      `json:"capacity"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	NightlyPrice *float64  `json:"nightly_price"`
	Photos       *[]string `json:"photos"`
	Amenities    *[]string `json:"amenities"`
}
