package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"frontdesk/internal/cache"
	"frontdesk/internal/config"
	"frontdesk/internal/database"
	"frontdesk/internal/jobs"
	"frontdesk/internal/middleware"
	"frontdesk/internal/modules/catalog"
	"frontdesk/internal/modules/customers"
	"frontdesk/internal/modules/feed"
	"frontdesk/internal/modules/reservation"
	"frontdesk/internal/modules/settings"
	"frontdesk/internal/modules/staff"
	"frontdesk/internal/notifier"
	jwtsvc "frontdesk/internal/pkg/jwt"
	"frontdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var store *cache.Cache
	if cfg.CacheConfigured() {
		store, err = cache.Connect(cfg.RedisAddr, cfg.RedisUser, cfg.RedisPassword)
		if err != nil {
			// The catalog works without redis, just slower.
			log.Printf("redis unavailable, running without cache: %v", err)
			store = nil
		}
	}

	reservationRepo := repository.NewReservationRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	var mailer notifier.Notifier = notifier.LogMailer{}
	if cfg.MailConfigured() {
		boot, err := settingsRepo.Get(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		mailer = notifier.NewSMTPMailer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPFrom,
			cfg.SMTPPassword,
			boot.HotelName,
		)
	}

	hub := feed.NewHub()
	defer hub.Close()

	reservationService := reservation.NewService(
		reservationRepo,
		roomRepo,
		roomTypeRepo,
		customerRepo,
		settingsRepo,
		mailer,
		hub,
		nil,
	)
	reservationHandler := reservation.NewHandler(reservationService)

	sweeper := reservation.NewSweeper(
		reservationRepo,
		customerRepo,
		settingsRepo,
		mailer,
		hub,
		nil,
	)

	catalogService := catalog.NewService(roomTypeRepo, roomRepo, store)
	catalogHandler := catalog.NewHandler(catalogService)

	customersService := customers.NewService(customerRepo)
	customersHandler := customers.NewHandler(customersService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	staffService := staff.NewService(staffRepo, j)
	staffHandler := staff.NewHandler(staffService)

	feedHandler := feed.NewHandler(hub, j)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		staffHandler.RegisterPublicRoutes(v1)
		feedHandler.RegisterRoutes(v1) // authenticates via ?token=

		// protected (everything the desk does)
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			reservationHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			customersHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			staffHandler.RegisterRoutes(protected)

			manager := protected.Group("/")
			manager.Use(middleware.ManagerOnly())
			{
				catalogHandler.RegisterManagerRoutes(manager)
				settingsHandler.RegisterManagerRoutes(manager)
				staffHandler.RegisterManagerRoutes(manager)
			}
		}
	}

	c := cron.New()
	if err := jobs.InitCronJobs(c, sweeper, cfg.SweepSpec); err != nil {
		log.Fatal(err)
	}
	defer c.Stop()

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
