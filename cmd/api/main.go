package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mwell-store/internal/auth"
	"mwell-store/internal/cart"
	"mwell-store/internal/config"
	"mwell-store/internal/coupon"
	"mwell-store/internal/database"
	"mwell-store/internal/events"
	"mwell-store/internal/handler"
	"mwell-store/internal/notify"
	"mwell-store/internal/repository"
	"mwell-store/internal/router"
	"mwell-store/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mwell-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.SeedCatalog(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	appointmentRepo := repository.NewAppointmentRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	wishlistRepo := repository.NewWishlistRepository(pool, logger)

	// Initialize coupon validator
	validator, err := newCouponValidator(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize coupon validator: %w", err)
	}
	defer validator.Close()

	carts, closeCarts, err := newCartStore(ctx, cfg.Cart, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cart store: %w", err)
	}
	defer closeCarts()

	publisher := events.NewNoopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		logger.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publishing appointment events to kafka")
	}
	defer publisher.Close()

	notifier := notify.NewLogNotifier(logger)
	if cfg.SMTP.Host != "" {
		notifier = notify.NewSMTPNotifier(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, logger)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	authService := service.NewAuthService(userRepo, tokens, notifier, logger)
	cartService := service.NewCartService(carts, productRepo, validator, logger)
	pricingService := service.NewPricingService(productRepo, validator, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, carts, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, publisher, notifier, cfg.Booking.MaxPerOwner, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	if cfg.Auth.AdminEmail != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("failed to ensure admin account: %w", err)
		}
	}

	// Initialize HTTP handlers and router
	mux := router.New(router.Handlers{
		Health:      handler.NewHealthHandler(pool, logger),
		Auth:        handler.NewAuthHandler(authService, logger),
		Product:     handler.NewProductHandler(productService, logger),
		Pricing:     handler.NewPricingHandler(pricingService, logger),
		Cart:        handler.NewCartHandler(cartService, logger),
		Order:       handler.NewOrderHandler(orderService, logger),
		Appointment: handler.NewAppointmentHandler(appointmentService, logger),
		Review:      handler.NewReviewHandler(reviewService, logger),
		Wishlist:    handler.NewWishlistHandler(wishlistService, logger),
		User:        handler.NewUserHandler(userService, logger),
	}, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newCouponValidator loads the configured coupon tables, from S3 when
// enabled and from the local file system otherwise.
func newCouponValidator(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (coupon.Validator, error) {
	fileLoader := coupon.NewFileLoader(logger)

	var s3Loader coupon.Loader
	if cfg.S3.Enabled {
		l, err := coupon.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for coupon files (S3 disabled)")
	}

	loader := coupon.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	validatorConfig := coupon.DefaultValidatorConfig()
	validatorConfig.FilePaths = cfg.Coupon.Files
	return coupon.NewValidator(ctx, validatorConfig, loader, logger)
}

// newCartStore returns the configured cart store and a function that
// releases it.
func newCartStore(ctx context.Context, cfg config.CartConfig, logger zerolog.Logger) (cart.Store, func(), error) {
	if cfg.Store != "redis" {
		logger.Info().Msg("using in-memory cart store")
		return cart.NewMemoryStore(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis cart store")
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
	return cart.NewRedisStore(rdb, cfg.KeyPrefix, cfg.TTL, logger), closeFn, nil
}
