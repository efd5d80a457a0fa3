package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"crewpulse/internal/service"
	"crewpulse/internal/transport/rest/handler"
	"crewpulse/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	CheckinService  *service.CheckinService
	WellnessService *service.WellnessService
	RiskService     *service.RiskService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	checkinHandler := handler.NewCheckinHandler(c.CheckinService)
	wellnessHandler := handler.NewWellnessHandler(c.AuthService, c.WellnessService, c.RiskService)
	managementHandler := handler.NewManagementHandler(c.RiskService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Crew routes (any authenticated user)
	crewRoutes := v1.NewRoute().Subrouter()
	crewRoutes.Use(authMW.RequireUser)

	crewRoutes.HandleFunc("/checkins", checkinHandler.Submit).Methods("POST", "OPTIONS")
	crewRoutes.HandleFunc("/checkins", checkinHandler.History).Methods("GET", "OPTIONS")
	crewRoutes.HandleFunc("/wellness/questions", wellnessHandler.Questions).Methods("GET", "OPTIONS")
	crewRoutes.HandleFunc("/wellness/submit", wellnessHandler.Submit).Methods("POST", "OPTIONS")
	crewRoutes.HandleFunc("/wellness/history", wellnessHandler.History).Methods("GET", "OPTIONS")

	// Management routes
	mgmtRoutes := v1.NewRoute().Subrouter()
	mgmtRoutes.Use(authMW.RequireManagement)

	mgmtRoutes.HandleFunc("/management/dashboard", managementHandler.Dashboard).Methods("GET", "OPTIONS")
	mgmtRoutes.HandleFunc("/management/team", managementHandler.Team).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
