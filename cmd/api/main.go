package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/handler"
	"crm-service/internal/middleware"
	"crm-service/internal/repository"
	"crm-service/internal/service"
	"crm-service/pkg/scheduler"
)

func main() {
	// Initialize logger
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	// Load configuration
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	rdb, err := initRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer rdb.Close()

	// Initialize repositories
	repos := repository.NewRepository(db, rdb)

	// Initialize services
	services := service.NewService(service.Dependencies{
		Repos:  repos,
		Logger: log,
		Config: cfg,
	})

	// Initialize handlers
	handlers := handler.NewHandler(handler.Dependencies{
		Services: services,
		Logger:   log,
		Config:   cfg,
	})

	// Initialize router
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/register", handlers.User.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handlers.User.Login).Methods(http.MethodPost)

	// Protected routes with middleware
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	api.Use(middleware.LogMiddleware(log))

	// Profile endpoint
	api.HandleFunc("/me", handlers.User.Me).Methods(http.MethodGet)

	// Lead endpoints
	api.HandleFunc("/leads", handlers.Lead.Create).Methods(http.MethodPost)
	api.HandleFunc("/leads", handlers.Lead.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/leads/{id}", handlers.Lead.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/leads/{id}", handlers.Lead.Update).Methods(http.MethodPut)
	api.HandleFunc("/leads/{id}/status", handlers.Lead.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/leads/{id}/assign", handlers.Lead.Assign).Methods(http.MethodPut)

	// Eligibility calculator endpoints
	api.HandleFunc("/eligibility/calculate", handlers.Eligibility.Calculate).Methods(http.MethodPost)
	api.HandleFunc("/eligibility/rate", handlers.Eligibility.GetBenchmarkRate).Methods(http.MethodGet)
	api.HandleFunc("/leads/{id}/eligibility", handlers.Eligibility.SaveSnapshot).Methods(http.MethodPost)
	api.HandleFunc("/leads/{id}/eligibility", handlers.Eligibility.GetSnapshots).Methods(http.MethodGet)
	api.HandleFunc("/eligibility/{ref}/schedule", handlers.Eligibility.GetSchedule).Methods(http.MethodGet)

	// Employee endpoints
	api.HandleFunc("/employees", handlers.Employee.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees", handlers.Employee.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", handlers.Employee.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", handlers.Employee.Update).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}", handlers.Employee.Deactivate).Methods(http.MethodDelete)

	// Notification endpoints
	api.HandleFunc("/notifications", handlers.Notification.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", handlers.Notification.MarkAllRead).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{id}/read", handlers.Notification.MarkRead).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{id}/remove", handlers.Notification.Remove).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{id}", handlers.Notification.Delete).Methods(http.MethodDelete)

	// Attendance endpoints
	api.HandleFunc("/attendance/check-in", handlers.Attendance.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/attendance/check-out", handlers.Attendance.CheckOut).Methods(http.MethodPost)
	api.HandleFunc("/attendance", handlers.Attendance.GetRecords).Methods(http.MethodGet)

	// Analytics endpoints
	api.HandleFunc("/analytics/leads", handlers.Analytics.GetLeadStatistics).Methods(http.MethodGet)

	// Start the background scheduler
	jobs := scheduler.NewScheduler(services.Notification, services.Rate, log)
	if err := jobs.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer jobs.Stop()

	// Configure and start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}

	// Start the server in a goroutine
	go func() {
		log.Infof("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Create a deadline context for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Info("Server gracefully stopped")
}

func initDB(cfg *configs.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func initRedis(cfg *configs.Config) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}
