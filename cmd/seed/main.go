package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"crewpulse/internal/config"
	"crewpulse/internal/model"
	"crewpulse/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	userRepo := repository.NewUserRepo(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	users := []struct {
		name       string
		email      string
		password   string
		role       model.Role
		employeeID string
		vessel     string
		department string
	}{
		{"Maria Santos", "maria.santos@crewpulse.local", "password123", model.RoleEmployee, "EMP-001", "MV Northern Star", "Deck"},
		{"Jonas Reyes", "jonas.reyes@crewpulse.local", "password123", model.RoleEmployee, "EMP-002", "MV Northern Star", "Engine"},
		{"Aiko Tanaka", "aiko.tanaka@crewpulse.local", "password123", model.RoleEmployee, "EMP-003", "MV Pacific Dawn", "Galley"},
		{"Erik Lund", "erik.lund@crewpulse.local", "password123", model.RoleEmployee, "EMP-004", "", "Operations"},
		{"Sofia Petrov", "sofia.petrov@crewpulse.local", "admin123", model.RoleManagement, "MGR-001", "", "Fleet Management"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &model.User{
			ID:         uuid.New().String(),
			Name:       u.name,
			Email:      u.email,
			Password:   string(hash),
			Role:       u.role,
			EmployeeID: u.employeeID,
			Vessel:     u.vessel,
			Department: u.department,
			IsActive:   true,
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				log.Printf("Skipping %s: already exists", u.email)
				continue
			}
			log.Fatalf("Failed to insert user %s: %v", u.email, err)
		}
		fmt.Printf("Created %s user '%s' (%s)\n", user.Role, user.Name, user.Email)
	}

	fmt.Println("Seed complete")
}
