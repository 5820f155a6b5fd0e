package repository

import (
	"context"
	"time"

	"rentadmin/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

type propertyModel struct {
	ID           int64                       `gorm:"column:id;primaryKey"`
	OwnerID      int64                       `gorm:"column:owner_id;index"`
	Name         string                      `gorm:"column:name"`
	Description  *string                     `gorm:"column:description;type:text"`
	Address      *string                     `gorm:"column:address"`
	City         *string                     `gorm:"column:city"`
	Country      *string                     `gorm:"column:country"`
	Type         string                      `gorm:"column:type"`
	Capacity     int                         `gorm:"column:capacity"`
	Bedrooms     int                         `gorm:"column:bedrooms"`
	Bathrooms    int                         `gorm:"column:bathrooms"`
	NightlyPrice float64                     `gorm:"column:nightly_price"`
	Photos       datatypes.JSONSlice[string] `gorm:"column:photos"`
	Amenities    datatypes.JSONSlice[string] `gorm:"column:amenities"`
	IsActive     bool                        `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time                   `gorm:"column:created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string { return "properties" }

func toDomainProperty(m propertyModel) *domain.Property {
	deref := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}
	return &domain.Property{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Description:  deref(m.Description),
		Address:      deref(m.Address),
		City:         deref(m.City),
		Country:      deref(m.Country),
		Type:         domain.PropertyType(m.Type),
		Capacity:     m.Capacity,
		Bedrooms:     m.Bedrooms,
		Bathrooms:    m.Bathrooms,
		NightlyPrice: m.NightlyPrice,
		Photos:       m.Photos,
		Amenities:    m.Amenities,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPropertyModel(p *domain.Property) propertyModel {
	nullable := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	return propertyModel{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Description:  nullable(p.Description),
		Address:      nullable(p.Address),
		City:         nullable(p.City),
		Country:      nullable(p.Country),
		Type:         string(p.Type),
		Capacity:     p.Capacity,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		NightlyPrice: p.NightlyPrice,
		Photos:       p.Photos,
		Amenities:    p.Amenities,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type PropertyFilters struct {
	OwnerID int64
	Active  *bool
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProperty(m)
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var m propertyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProperty(m), nil
}

func (r *PropertyRepository) List(ctx context.Context, f PropertyFilters) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).Model(&propertyModel{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}

	var rows []propertyModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Property, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProperty(m))
	}
	return out, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

// SetActive flips the soft-delete flag without touching the rest of the
// row.
func (r *PropertyRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).Model(&propertyModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PropertyRepository) CountActive(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&propertyModel{}).Where("is_active = ?", true).Count(&cnt)
	return cnt, tx.Error
}
