package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/dvergara/finanzas-service/internal/config"
	"github.com/dvergara/finanzas-service/internal/handler"
	"github.com/dvergara/finanzas-service/internal/middleware"
	"github.com/dvergara/finanzas-service/internal/reminder"
	"github.com/dvergara/finanzas-service/internal/repository"
	"github.com/dvergara/finanzas-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local development settings; the real environment wins.
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db, logger)
	svc := service.NewService(repo, logger, cfg)
	h := handler.NewHandler(svc)

	// Nightly jobs: payment reminders and recurring-rule materialization
	if cfg.RemindersOn {
		job := reminder.NewJob(repo, cfg, logger)
		c := cron.New()
		if _, err := c.AddFunc(cfg.ReminderCron, job.Run); err != nil {
			logger.Fatalf("Failed to schedule reminder job: %v", err)
		}
		if _, err := c.AddFunc(cfg.ReminderCron, svc.RunDueRules); err != nil {
			logger.Fatalf("Failed to schedule materialization job: %v", err)
		}
		c.Start()
		defer c.Stop()
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/timeline", h.Timeline).Methods("GET")
	authRouter.HandleFunc("/insight", h.Insight).Methods("GET")
	authRouter.HandleFunc("/payments/confirm", h.ConfirmPayment).Methods("POST")
	authRouter.HandleFunc("/obligations", h.CreateObligation).Methods("POST")
	authRouter.HandleFunc("/obligations", h.ListObligations).Methods("GET")
	authRouter.HandleFunc("/debts", h.CreateDebt).Methods("POST")
	authRouter.HandleFunc("/debts", h.ListDebts).Methods("GET")
	authRouter.HandleFunc("/recurring", h.ListRecurring).Methods("GET")
	authRouter.HandleFunc("/recurring/{id:[0-9]+}/run", h.RunRecurring).Methods("POST")
	authRouter.HandleFunc("/goals", h.ListGoals).Methods("GET")
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
