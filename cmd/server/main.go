package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/config"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/handler"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/middleware"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/repository"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Apply schema (unique indexes for email, amenity name, review pairs)
	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})

	userService := service.NewUserService(service.UserServiceConfig{
		Repo: userRepo,
	})

	amenityService := service.NewAmenityService(service.AmenityServiceConfig{
		Repo: amenityRepo,
	})

	placeService := service.NewPlaceService(service.PlaceServiceConfig{
		Repo:        placeRepo,
		UserRepo:    userRepo,
		AmenityRepo: amenityRepo,
	})

	reviewService := service.NewReviewService(service.ReviewServiceConfig{
		Repo:      reviewRepo,
		PlaceRepo: placeRepo,
		UserRepo:  userRepo,
	})

	// Seed the bootstrap admin account
	admin, err := authService.BootstrapAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		slog.Error("failed to bootstrap admin", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("admin account ready", slog.String("user_id", admin.ID))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, placeService)
	placeHandler := handler.NewPlaceHandler(placeService, reviewService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	amenityHandler := handler.NewAmenityHandler(amenityService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints
	authMiddleware := middleware.Auth(authService)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(middleware.AdminAuth(h))
	}
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// User endpoints - reads are public, account creation is admin-only,
	// updates and deletes are self-or-admin (resolved in the service)
	mux.HandleFunc("GET /v1/users", userHandler.ListUsers)
	mux.HandleFunc("GET /v1/users/{userId}", userHandler.GetUser)
	mux.HandleFunc("GET /v1/users/{userId}/places", userHandler.ListUserPlaces)
	mux.Handle("POST /v1/users", adminOnly(userHandler.CreateUser))
	mux.Handle("PATCH /v1/users/{userId}", authMiddleware(http.HandlerFunc(userHandler.UpdateUser)))
	mux.Handle("DELETE /v1/users/{userId}", authMiddleware(http.HandlerFunc(userHandler.DeleteUser)))

	// Place endpoints - reads are public, mutations owner-or-admin
	mux.HandleFunc("GET /v1/places", placeHandler.ListPlaces)
	mux.HandleFunc("GET /v1/places/{placeId}", placeHandler.GetPlace)
	mux.HandleFunc("GET /v1/places/{placeId}/reviews", placeHandler.ListPlaceReviews)
	mux.Handle("POST /v1/places", authMiddleware(http.HandlerFunc(placeHandler.CreatePlace)))
	mux.Handle("PATCH /v1/places/{placeId}", authMiddleware(http.HandlerFunc(placeHandler.UpdatePlace)))
	mux.Handle("DELETE /v1/places/{placeId}", authMiddleware(http.HandlerFunc(placeHandler.DeletePlace)))
	mux.Handle("PUT /v1/places/{placeId}/amenities/{amenityId}", authMiddleware(http.HandlerFunc(placeHandler.AttachAmenity)))
	mux.Handle("DELETE /v1/places/{placeId}/amenities/{amenityId}", authMiddleware(http.HandlerFunc(placeHandler.DetachAmenity)))

	// Review endpoints - reads are public, mutations author-or-admin
	mux.HandleFunc("GET /v1/reviews/{reviewId}", reviewHandler.GetReview)
	mux.Handle("POST /v1/reviews", authMiddleware(http.HandlerFunc(reviewHandler.CreateReview)))
	mux.Handle("PATCH /v1/reviews/{reviewId}", authMiddleware(http.HandlerFunc(reviewHandler.UpdateReview)))
	mux.Handle("DELETE /v1/reviews/{reviewId}", authMiddleware(http.HandlerFunc(reviewHandler.DeleteReview)))

	// Amenity endpoints - reads are public, catalog management is admin-only
	mux.HandleFunc("GET /v1/amenities", amenityHandler.ListAmenities)
	mux.HandleFunc("GET /v1/amenities/{amenityId}", amenityHandler.GetAmenity)
	mux.Handle("POST /v1/amenities", adminOnly(amenityHandler.CreateAmenity))
	mux.Handle("PATCH /v1/amenities/{amenityId}", adminOnly(amenityHandler.UpdateAmenity))
	mux.Handle("DELETE /v1/amenities/{amenityId}", adminOnly(amenityHandler.DeleteAmenity))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
