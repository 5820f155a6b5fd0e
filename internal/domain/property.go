package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyRoom      PropertyType = "room"
	PropertyStudio    PropertyType = "studio"
)

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyApartment, PropertyHouse, PropertyRoom, PropertyStudio:
		return PropertyType(s), nil
	}
	return "", errors.New("unknown property type: " + s)
}

type Property struct {
	ID           int64                       `json:"id"`
	OwnerID      int64                       `json:"owner_id" validate:"required"`
	Name         string                      `json:"name" validate:"required"`
	Description  string                      `json:"description,omitempty" gorm:"type:text"`
	Address      string                      `json:"address,omitempty"`
	City         string                      `json:"city,omitempty"`
	Country      string                      `json:"country,omitempty"`
	Type         PropertyType                `json:"type"`
	Capacity     int                         `json:"capacity" validate:"gte=1"`
	Bedrooms     int                         `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int                         `json:"bathrooms" validate:"gte=0"`
	NightlyPrice float64                     `json:"nightly_price" validate:"gte=0"`
	Photos       datatypes.JSONSlice[string] `json:"photos,omitempty"`
	Amenities    datatypes.JSONSlice[string] `json:"amenities,omitempty"`
	IsActive     bool                        `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
