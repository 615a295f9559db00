package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"jobconnect-backend/handlers"
	"jobconnect-backend/internal/repository"
	"jobconnect-backend/internal/service"
	"jobconnect-backend/pkg/config"
	"jobconnect-backend/pkg/database"
	"jobconnect-backend/pkg/logger"
	"jobconnect-backend/pkg/places"
	"jobconnect-backend/pkg/ratelimit"
	"jobconnect-backend/pkg/security"
)

const retryAfterSeconds = 1

func main() {
	// .env is optional; real deployments set environment variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		fmt.Println("✅ .env file loaded")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.Debug); err != nil {
		log.Fatal("❌ Logger init error: ", err)
	}
	defer logger.Sync()

	// 1. Database
	db, err := database.Connect(database.Options{
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		Name:            cfg.DBName,
		SSLMode:         cfg.DBSSLMode,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("❌ Database connection error: ", err)
	}
	defer db.Close()
	fmt.Printf("✅ Database connected! (%s@%s:%s/%s)\n", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatal("❌ Migration error: ", err)
	}

	// 2. Shared infrastructure
	hasher := security.NewHasher(cfg.Argon2Time, cfg.Argon2MemoryKiB, cfg.Argon2Parallelism)
	limiter := ratelimit.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	placesClient := places.NewClient(cfg.PlacesAPIKey, cfg.ProviderTimeout)
	geolocationClient := places.NewGeolocationClient(cfg.GeolocationAPIKey, cfg.ProviderTimeout)

	// 3. Repositories
	adminRepo := repository.NewAdminRepo(db, hasher, cfg.DBTimeout)
	clientRepo := repository.NewClientRepo(db, hasher, cfg.DBTimeout)
	technicianRepo := repository.NewTechnicianRepo(db, hasher, cfg.DBTimeout)
	bookingRepo := repository.NewBookingRepo(db, cfg.DBTimeout)
	paymentRepo := repository.NewPaymentRepo(db, cfg.DBTimeout)
	reviewRepo := repository.NewReviewRepo(db, cfg.DBTimeout)
	notificationRepo := repository.NewNotificationRepo(db, cfg.DBTimeout)
	favoriteRepo := repository.NewFavoriteRepo(db, cfg.DBTimeout)

	// 4. Services
	adminSvc := service.NewAdminService(adminRepo, hasher)
	clientSvc := service.NewClientService(clientRepo, hasher)
	technicianSvc := service.NewTechnicianService(technicianRepo, hasher)
	bookingSvc := service.NewBookingService(bookingRepo)
	paymentSvc := service.NewPaymentService(paymentRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo)
	geoSearchSvc := service.NewGeoSearchService(placesClient, geolocationClient)

	// 5. Middleware chain: CORS -> rate limit -> access log -> handler
	cors := handlers.CORS(cfg.CORSOrigins)
	limit := handlers.RateLimit(limiter, retryAfterSeconds)
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return cors(limit(handlers.RequestLogger(h)))
	}

	// ============================================
	// ROUTES
	// ============================================

	// Admins
	http.HandleFunc("/api/v1/admin", wrap(handlers.AdminsHandler(adminSvc)))
	http.HandleFunc("/api/v1/admin/by-email", wrap(handlers.AdminByEmail(adminSvc)))
	http.HandleFunc("/api/v1/admin/login", wrap(handlers.AdminLogin(adminSvc)))
	http.HandleFunc("/api/v1/admin/", wrap(handlers.AdminItemHandler(adminSvc))) // /api/v1/admin/{id}

	// Clients
	http.HandleFunc("/api/v1/client", wrap(handlers.ClientsHandler(clientSvc)))
	http.HandleFunc("/api/v1/client/by-email", wrap(handlers.ClientByEmail(clientSvc)))
	http.HandleFunc("/api/v1/client/login", wrap(handlers.ClientLogin(clientSvc)))
	http.HandleFunc("/api/v1/client/", wrap(handlers.ClientItemHandler(clientSvc))) // /api/v1/client/{id}

	// Technicians
	http.HandleFunc("/api/v1/technician", wrap(handlers.TechniciansHandler(technicianSvc)))
	http.HandleFunc("/api/v1/technician/by-email", wrap(handlers.TechnicianByEmail(technicianSvc)))
	http.HandleFunc("/api/v1/technician/login", wrap(handlers.TechnicianLogin(technicianSvc)))
	http.HandleFunc("/api/v1/technician/", wrap(handlers.TechnicianItemHandler(technicianSvc))) // /api/v1/technician/{id}

	// Bookings
	http.HandleFunc("/api/v1/booking", wrap(handlers.BookingsHandler(bookingSvc)))
	http.HandleFunc("/api/v1/booking/by/", wrap(handlers.BookingsByColumn(bookingSvc))) // /api/v1/booking/by/{column}
	http.HandleFunc("/api/v1/booking/", wrap(handlers.BookingItemHandler(bookingSvc)))  // /api/v1/booking/{id}

	// Payments
	http.HandleFunc("/api/v1/payment", wrap(handlers.PaymentsHandler(paymentSvc)))
	http.HandleFunc("/api/v1/payment/by/", wrap(handlers.PaymentsByColumn(paymentSvc)))
	http.HandleFunc("/api/v1/payment/", wrap(handlers.PaymentItemHandler(paymentSvc)))

	// Reviews
	http.HandleFunc("/api/v1/review", wrap(handlers.ReviewsHandler(reviewSvc)))
	http.HandleFunc("/api/v1/review/by/", wrap(handlers.ReviewsByColumn(reviewSvc)))
	http.HandleFunc("/api/v1/review/", wrap(handlers.ReviewItemHandler(reviewSvc)))

	// Notifications
	http.HandleFunc("/api/v1/notification", wrap(handlers.NotificationsHandler(notificationSvc)))
	http.HandleFunc("/api/v1/notification/", wrap(handlers.NotificationItemHandler(notificationSvc)))

	// Favorite technicians
	http.HandleFunc("/api/v1/favorite", wrap(handlers.FavoritesHandler(favoriteSvc)))
	http.HandleFunc("/api/v1/favorite/client/", wrap(handlers.FavoritesByClient(favoriteSvc)))

	// Geo search
	http.HandleFunc("/api/v1/search/nearby", wrap(handlers.SearchNearby(geoSearchSvc)))
	http.HandleFunc("/api/v1/search/current-location", wrap(handlers.CurrentLocation(geoSearchSvc)))

	// Root & health
	http.HandleFunc("/", wrap(handlers.Root(cfg.Environment)))
	http.HandleFunc("/health", wrap(handlers.Health(db)))

	// 6. Start the server
	fmt.Printf("🚀 Server running on port %s...\n", cfg.ServerPort)
	fmt.Println("")
	fmt.Println("👤 Account endpoints (admin | client | technician):")
	fmt.Println("   GET    /api/v1/{entity}            - List all")
	fmt.Println("   POST   /api/v1/{entity}            - Register")
	fmt.Println("   GET    /api/v1/{entity}/{id}       - Get one")
	fmt.Println("   PUT    /api/v1/{entity}/{id}       - Partial update")
	fmt.Println("   DELETE /api/v1/{entity}/{id}       - Delete")
	fmt.Println("   GET    /api/v1/{entity}/by-email   - Lookup by email")
	fmt.Println("   POST   /api/v1/{entity}/login      - Check credentials")
	fmt.Println("   POST   /api/v1/{client|technician}/{id}/deactivate - Soft delete")
	fmt.Println("")
	fmt.Println("📋 Booking endpoints:")
	fmt.Println("   GET/POST /api/v1/booking")
	fmt.Println("   GET      /api/v1/booking/by/{column}?value= - Filtered list")
	fmt.Println("   GET/PUT/DELETE /api/v1/booking/{id}")
	fmt.Println("   POST     /api/v1/booking/{id}/cancel")
	fmt.Println("")
	fmt.Println("💳 Payment / ⭐ Review endpoints: same shape as bookings")
	fmt.Println("")
	fmt.Println("🔔 Notification endpoints:")
	fmt.Println("   POST /api/v1/notification")
	fmt.Println("   GET  /api/v1/notification?target=client|technician&user_id=")
	fmt.Println("   PUT  /api/v1/notification/{id}/read")
	fmt.Println("")
	fmt.Println("❤️  Favorite endpoints:")
	fmt.Println("   GET/POST/DELETE /api/v1/favorite")
	fmt.Println("   GET  /api/v1/favorite/client/{id}")
	fmt.Println("")
	fmt.Println("📍 Search endpoints:")
	fmt.Println("   GET /api/v1/search/nearby?keyword=&radius_km=&lat=&lon=")
	fmt.Println("   GET /api/v1/search/current-location")
	fmt.Println("")
	fmt.Println("🩺 Health: GET /health")

	if err := http.ListenAndServe(":"+cfg.ServerPort, nil); err != nil {
		log.Fatal("❌ Server error: ", err)
	}
}
