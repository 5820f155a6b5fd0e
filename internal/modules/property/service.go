package property

import (
	"context"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"
)

type Service struct {
	properties PropertyRepository
}

func NewService(properties PropertyRepository) *Service {
	return &Service{properties: properties}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreatePropertyRequest) (*domain.Property, error) {
	ptype, err := domain.ParsePropertyType(req.Type)
	if err != nil {
		return nil, ErrInvalidType
	}

	p := &domain.Property{
		OwnerID:      ownerID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		Type:         ptype,
		Capacity:     req.Capacity,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		NightlyPrice: req.NightlyPrice,
		Photos:       req.Photos,
		Amenities:    req.Amenities,
		IsActive:     true,
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	return s.properties.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error) {
	return s.properties.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Country != nil {
		p.Country = *req.Country
	}
	if req.Type != nil {
		ptype, err := domain.ParsePropertyType(*req.Type)
		if err != nil {
			return nil, ErrInvalidType
		}
		p.Type = ptype
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		p.Capacity = *req.Capacity
	}
	if req.Bedrooms != nil && *req.Bedrooms >= 0 {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil && *req.Bathrooms >= 0 {
		p.Bathrooms = *req.Bathrooms
	}
	if req.NightlyPrice != nil && *req.NightlyPrice >= 0 {
		p.NightlyPrice = *req.NightlyPrice
	}
	if req.Photos != nil {
		p.Photos = *req.Photos
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes: the row stays for reservation history.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.properties.SetActive(ctx, id, false)
}
