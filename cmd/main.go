package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/spotbnb/internal/facades"
	"github.com/sbilibin2017/spotbnb/internal/jwt"
	"github.com/sbilibin2017/spotbnb/internal/logger"
	"github.com/sbilibin2017/spotbnb/internal/repositories"
	"github.com/sbilibin2017/spotbnb/internal/router"
	"github.com/sbilibin2017/spotbnb/internal/services"
	"github.com/sbilibin2017/spotbnb/migrations"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title spotbnb API
// @version 1.0.0
// @description Vacation rental listings with reviews, images and bookings
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	AutoMigrate bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	GWHost             string
	GWPort             string
	GWTimeoutSecond    int
	RateCacheTTLSecond int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, gRPC, Kafka, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("APP_AUTO_MIGRATE", "true")); err != nil {
		return cfg, fmt.Errorf("APP_AUTO_MIGRATE: %w", err)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")
	if cfg.GWTimeoutSecond, err = getInt("GW_EXCHANGER_TIMEOUT_SECOND", "3"); err != nil {
		return
	}
	if cfg.RateCacheTTLSecond, err = getInt("RATE_CACHE_TTL_SECOND", "60"); err != nil {
		return
	}

	// Kafka config; no brokers disables booking events
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "spotbnb.bookings")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, gRPC client, Kafka writer and HTTP server.
// It wires repositories, services and routes, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.AutoMigrate {
		if err := migrations.Up(ctx, db); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("Database schema is up to date")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
	conn, err := facades.Dial(grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()
	exchanger := facades.NewExchangerFacade(
		pb.NewExchangeServiceClient(conn),
		facades.WithTimeout(time.Duration(cfg.GWTimeoutSecond)*time.Second),
	)

	// Kafka writer for booking events
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = writer
		log.Infof("Publishing booking events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	spotRepo := repositories.NewSpotRepository(db, repositories.GetTxFromContext)
	spotImageRepo := repositories.NewSpotImageRepository(db, repositories.GetTxFromContext)
	reviewRepo := repositories.NewReviewRepository(db, repositories.GetTxFromContext)
	reviewImageRepo := repositories.NewReviewImageRepository(db, repositories.GetTxFromContext)
	bookingRepo := repositories.NewBookingRepository(db, repositories.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb)
	rateCacheRepo := repositories.NewRateCacheRepository(rdb, time.Duration(cfg.RateCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, sessionRepo)
	spotService := services.NewSpotService(spotRepo, spotImageRepo)
	reviewService := services.NewReviewService(spotRepo, reviewRepo, reviewImageRepo)
	bookingService := services.NewBookingService(spotRepo, bookingRepo, transactor, events)
	pricingService := services.NewPricingService(spotRepo, exchanger, rateCacheRepo)

	// Setup router
	r := router.New(router.Deps{
		Auth:         authService,
		SpotReader:   spotService,
		SpotWriter:   spotService,
		SpotImages:   spotService,
		Reviews:      reviewService,
		ReviewImages: reviewService,
		Bookings:     bookingService,
		Prices:       pricingService,
		Tokener:      tokens,
		Revocations:  sessionRepo,
		SwaggerURL:   fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
