package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hopkinton-cheetahs/rosterd/internal/common/clock"
	"github.com/hopkinton-cheetahs/rosterd/internal/common/uuid"
	"github.com/hopkinton-cheetahs/rosterd/internal/handlers/web"
	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	authRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/auth"
	rosterRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/roster"
	sessionRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/session"
	authService "github.com/hopkinton-cheetahs/rosterd/internal/services/auth"
	paymentsService "github.com/hopkinton-cheetahs/rosterd/internal/services/payments"
	rosterService "github.com/hopkinton-cheetahs/rosterd/internal/services/roster"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	rosterStore, err := rosterRepo.NewRedis(&rosterRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create roster repository: %v", err)
	}

	sessionStore, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	authStore, err := authRepo.NewRedis(&authRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create auth repository: %v", err)
	}

	// Default credentials come from the environment, never from source
	captainPassword := getEnv("CAPTAIN_PASSWORD", "")
	playerPassword := getEnv("PLAYER_PASSWORD", "")
	if captainPassword == "" || playerPassword == "" {
		log.Fatal("CAPTAIN_PASSWORD and PLAYER_PASSWORD environment variables are required")
	}

	systemClock := clock.New()
	idGenerator := uuid.New()

	// Initialize services
	rosterSvc, err := rosterService.New(&rosterService.Config{
		RosterRepo: rosterStore,
		Clock:      systemClock,
		UUID:       idGenerator,
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	paymentsSvc, err := paymentsService.New(&paymentsService.Config{
		RosterRepo:    rosterStore,
		PerGameRate:   perGameRate(),
		ShareStrategy: paymentsService.ShareStrategy(getEnv("SHARE_STRATEGY", "")),
	})
	if err != nil {
		log.Fatalf("Failed to create payments service: %v", err)
	}

	authSvc, err := authService.New(&authService.Config{
		AuthRepo:    authStore,
		SessionRepo: sessionStore,
		Clock:       systemClock,
		DefaultPasswords: map[models.Role]string{
			models.RoleCaptain: captainPassword,
			models.RolePlayer:  playerPassword,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	// Initialize the web handler
	handler, err := web.New(&web.Config{
		RosterService:   rosterSvc,
		PaymentsService: paymentsSvc,
		AuthService:     authSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create web handler: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	handler.RegisterRoutes(e)

	addr := getEnv("HTTP_ADDR", ":8080")
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// perGameRate reads the per-game fee override from the environment
func perGameRate() decimal.Decimal {
	raw := getEnv("PER_GAME_RATE", "")
	if raw == "" {
		return decimal.Zero
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("Invalid PER_GAME_RATE %q: %v", raw, err)
	}
	return rate
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
