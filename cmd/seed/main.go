package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"rentadmin/internal/config"
	"rentadmin/internal/database"
	"rentadmin/internal/domain"
	"rentadmin/internal/modules/payment"
	"rentadmin/internal/pkg/logger"
	"rentadmin/internal/repository"
)

// Seeds a demo dataset: one admin, one owner, three properties and a
// handful of reservations with settled payments.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(cfg.Env, cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// wipe old demo data, children first
	for _, table := range []string{"payments", "expenses", "reservations", "properties", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	properties := repository.NewPropertyRepository(db)
	reservations := repository.NewReservationRepository(db)
	expenses := repository.NewExpenseRepository(db)
	payments := repository.NewPaymentRepository(db)

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		return string(h)
	}

	admin := &domain.User{
		Email:        "admin@rentadmin.local",
		PasswordHash: hash("admin123"),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}

	owner := &domain.User{
		Email:        "marta@rentadmin.local",
		PasswordHash: hash("owner123"),
		Name:         "Marta Gimenez",
		Phone:        "+54 223 555 0101",
		Role:         domain.RoleOwner,
		IsActive:     true,
	}
	if err := users.Create(ctx, owner); err != nil {
		log.Fatal().Err(err).Msg("seed owner")
	}

	demoProperties := []domain.Property{
		{
			OwnerID:      owner.ID,
			Name:         "Depto Playa Grande",
			Description:  "Two-room apartment a block from the sea",
			Address:      "Alem 3420",
			City:         "Mar del Plata",
			Country:      "Argentina",
			Type:         domain.PropertyApartment,
			Capacity:     4,
			Bedrooms:     1,
			Bathrooms:    1,
			NightlyPrice: 45000,
			Amenities:    datatypes.NewJSONSlice([]string{"wifi", "kitchen", "balcony"}),
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Casa Los Troncos",
			Description:  "House with garden and parking",
			Address:      "Matheu 1250",
			City:         "Mar del Plata",
			Country:      "Argentina",
			Type:         domain.PropertyHouse,
			Capacity:     6,
			Bedrooms:     3,
			Bathrooms:    2,
			NightlyPrice: 80000,
			Amenities:    datatypes.NewJSONSlice([]string{"wifi", "garden", "parking", "grill"}),
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Monoambiente Centro",
			Description:  "Studio next to the casino",
			Address:      "San Martin 2200",
			City:         "Mar del Plata",
			Country:      "Argentina",
			Type:         domain.PropertyStudio,
			Capacity:     2,
			Bedrooms:     0,
			Bathrooms:    1,
			NightlyPrice: 28000,
			Amenities:    datatypes.NewJSONSlice([]string{"wifi", "kitchenette"}),
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Depto Guemes",
			Description:  "Bright two-bedroom in the Guemes district",
			Address:      "Guemes 2870",
			City:         "Mar del Plata",
			Country:      "Argentina",
			Type:         domain.PropertyApartment,
			Capacity:     5,
			Bedrooms:     2,
			Bathrooms:    1,
			NightlyPrice: 60000,
			Amenities:    datatypes.NewJSONSlice([]string{"wifi", "kitchen", "washer"}),
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Habitacion La Perla",
			Description:  "Private room with sea view",
			Address:      "Boulevard Maritimo 1900",
			City:         "Mar del Plata",
			Country:      "Argentina",
			Type:         domain.PropertyRoom,
			Capacity:     2,
			Bedrooms:     1,
			Bathrooms:    1,
			NightlyPrice: 18000,
			Amenities:    datatypes.NewJSONSlice([]string{"wifi"}),
			IsActive:     true,
		},
		{
			OwnerID:      owner.ID,
			Name:         "Casa Chauvin",
			Description:  "Quiet family house, currently off the listing",
			Address:      "Almafuerte 340",
			City:         "Mar del Plata",
			Country:      "Argentina",
			Type:         domain.PropertyHouse,
			Capacity:     8,
			Bedrooms:     4,
			Bathrooms:    3,
			NightlyPrice: 120000,
			Amenities:    datatypes.NewJSONSlice([]string{"wifi", "garden", "pool"}),
			IsActive:     false,
		},
	}
	for i := range demoProperties {
		if err := properties.Create(ctx, &demoProperties[i]); err != nil {
			log.Fatal().Err(err).Msg("seed property")
		}
	}

	day := func(offset int) time.Time {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	demoReservations := []domain.Reservation{
		{
			PropertyID: demoProperties[0].ID,
			GuestName:  "Julian Soto",
			GuestEmail: "julian.soto@example.com",
			StartDate:  day(-10),
			EndDate:    day(-6),
			Guests:     2,
			TotalPrice: 225000,
			Origin:     domain.OriginAirbnb,
			Status:     domain.ReservationCompleted,
		},
		{
			PropertyID: demoProperties[0].ID,
			GuestName:  "Carla Mendez",
			GuestPhone: "+54 11 5555 0202",
			StartDate:  day(3),
			EndDate:    day(7),
			Guests:     4,
			TotalPrice: 225000,
			Origin:     domain.OriginBooking,
			Status:     domain.ReservationConfirmed,
		},
		{
			PropertyID: demoProperties[1].ID,
			GuestName:  "Familia Ortega",
			StartDate:  day(1),
			EndDate:    day(11),
			Guests:     6,
			TotalPrice: 880000,
			Origin:     domain.OriginReferred,
			Status:     domain.ReservationConfirmed,
		},
		{
			PropertyID: demoProperties[2].ID,
			GuestName:  "Pedro Lanza",
			StartDate:  day(5),
			EndDate:    day(6),
			Guests:     1,
			TotalPrice: 56000,
			Origin:     domain.OriginFacebook,
			Status:     domain.ReservationPending,
		},
	}
	for i := range demoReservations {
		if err := reservations.Create(ctx, &demoReservations[i]); err != nil {
			log.Fatal().Err(err).Msg("seed reservation")
		}
	}

	month := time.Now().UTC().Format("2006-01")
	demoExpenses := []domain.Expense{
		{PropertyID: demoProperties[0].ID, Month: month, Category: domain.ExpenseCleaning, Description: "Turnover cleaning", Amount: 15000},
		{PropertyID: demoProperties[1].ID, Month: month, Category: domain.ExpenseMaintenance, Description: "Boiler service", Amount: 42000},
	}
	for i := range demoExpenses {
		if err := expenses.Create(ctx, &demoExpenses[i]); err != nil {
			log.Fatal().Err(err).Msg("seed expense")
		}
	}

	paidAt := day(-6)
	commission, ownerAmount := payment.ComputeCommission(demoReservations[0].TotalPrice, cfg.DefaultCommission)
	settled := &domain.Payment{
		ReservationID:    demoReservations[0].ID,
		PropertyID:       demoReservations[0].PropertyID,
		OwnerID:          owner.ID,
		Amount:           demoReservations[0].TotalPrice,
		CommissionPct:    cfg.DefaultCommission,
		CommissionAmount: commission,
		OwnerAmount:      ownerAmount,
		Method:           domain.MethodTransfer,
		Status:           domain.PaymentPaid,
		PaidAt:           &paidAt,
		Reference:        "rcpt-seed-0001",
	}
	if err := payments.Create(ctx, settled); err != nil {
		log.Fatal().Err(err).Msg("seed payment")
	}

	log.Info().
		Int("properties", len(demoProperties)).
		Int("reservations", len(demoReservations)).
		Msg("seed complete")
}
