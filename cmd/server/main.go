package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crewpulse/internal/cache"
	"crewpulse/internal/config"
	"crewpulse/internal/repository"
	"crewpulse/internal/service"
	"crewpulse/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model:   %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key: configured ✓")
	} else {
		log.Println("  API Key: NOT SET (using fallback question set)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	checkInRepo := repository.NewCheckInRepo(db)
	wellnessRepo := repository.NewWellnessRepo(db)

	// The unique (userId, day) index backs the one-check-in-per-day rule,
	// so index creation is not optional.
	indexCtx, indexCancel := context.WithTimeout(ctx, 10*time.Second)
	defer indexCancel()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create user indexes:", err)
	}
	if err := checkInRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create check-in indexes:", err)
	}
	if err := wellnessRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create wellness indexes:", err)
	}
	log.Println("MongoDB indexes ensured")

	// Initialize caches
	questionCache := cache.NewQuestionCache(rdb)
	dashboardCache := cache.NewDashboardCache(rdb)

	// Initialize services
	generator := service.NewAnthropicClient(aiConfig)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	checkinSvc := service.NewCheckinService(checkInRepo)
	questionSvc := service.NewQuestionService(wellnessRepo, questionCache, generator)
	scoringSvc := service.NewScoringService(generator)
	wellnessSvc := service.NewWellnessService(wellnessRepo, questionSvc, scoringSvc)
	riskSvc := service.NewRiskService(userRepo, checkInRepo, wellnessRepo, dashboardCache)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		CheckinService:  checkinSvc,
		WellnessService: wellnessSvc,
		RiskService:     riskSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/checkins")
		log.Println("  GET  /v1/wellness/questions")
		log.Println("  POST /v1/wellness/submit")
		log.Println("  GET  /v1/wellness/history")
		log.Println("  GET  /v1/management/dashboard")
		log.Println("  GET  /v1/management/team")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
