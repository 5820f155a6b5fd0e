package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"rentadmin/internal/cache"
	"rentadmin/internal/config"
	"rentadmin/internal/database"
	"rentadmin/internal/middleware"
	"rentadmin/internal/modules/analytics"
	"rentadmin/internal/modules/auth"
	"rentadmin/internal/modules/calendar"
	"rentadmin/internal/modules/expense"
	"rentadmin/internal/modules/notification"
	"rentadmin/internal/modules/payment"
	"rentadmin/internal/modules/property"
	"rentadmin/internal/modules/reservation"
	jwtsvc "rentadmin/internal/pkg/jwt"
	"rentadmin/internal/pkg/logger"
	"rentadmin/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(cfg.Env, cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx := context.Background()

	c, err := cache.Connect(ctx, cfg.RedisURL, 5*time.Minute)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, caching disabled")
		c = nil
	}

	telegram, err := notification.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Warn().Err(err).Msg("telegram unavailable, alerts disabled")
		telegram = nil
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notifier := notification.NewService(hub, telegram)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	propertyService := property.NewService(propertyRepo)
	propertyHandler := property.NewHandler(propertyService)

	reservationService := reservation.NewService(reservationRepo, propertyRepo, notifier, c)
	reservationHandler := reservation.NewHandler(reservationService)

	calendarService := calendar.NewService(reservationRepo)
	calendarHandler := calendar.NewHandler(calendarService)

	expenseService := expense.NewService(expenseRepo, propertyRepo)
	expenseHandler := expense.NewHandler(expenseService)

	paymentService := payment.NewService(paymentRepo, reservationRepo, propertyRepo, notifier, c, cfg.DefaultCommission)
	paymentHandler := payment.NewHandler(paymentService)

	analyticsService := analytics.NewService(reservationRepo, paymentRepo, expenseRepo, propertyRepo, c)
	analyticsHandler := analytics.NewHandler(analyticsService)

	eventsHandler := notification.NewHandler(hub)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	authHandler.RegisterRoutes(api)
	propertyHandler.RegisterRoutes(api)
	reservationHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(j))
	authHandler.RegisterProtectedRoutes(protected)
	propertyHandler.RegisterProtectedRoutes(protected)
	reservationHandler.RegisterProtectedRoutes(protected)
	calendarHandler.RegisterProtectedRoutes(protected)
	expenseHandler.RegisterProtectedRoutes(protected)
	paymentHandler.RegisterProtectedRoutes(protected)
	analyticsHandler.RegisterProtectedRoutes(protected)
	eventsHandler.RegisterProtectedRoutes(protected)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
