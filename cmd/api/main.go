package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/growai/fincoach/internal/cache"
	"github.com/growai/fincoach/internal/config"
	"github.com/growai/fincoach/internal/generator"
	"github.com/growai/fincoach/internal/handler"
	"github.com/growai/fincoach/internal/integrations/gemini"
	"github.com/growai/fincoach/internal/middleware"
	"github.com/growai/fincoach/internal/repository"
	"github.com/growai/fincoach/internal/scheduler"
	"github.com/growai/fincoach/internal/service"
	"github.com/growai/fincoach/internal/templates"
	"github.com/growai/fincoach/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

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
	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	store := templates.NewStore()
	gen := generator.New(store)

	snapCache, err := cache.NewSnapshotCache()
	if err != nil {
		logger.Fatalf("Failed to initialize snapshot cache: %v", err)
	}

	mailer := email.NewSender(cfg, logger)

	var advisor service.Advisor
	if cfg.GeminiAPIKey != "" {
		a, err := gemini.NewAdvisor(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Warnf("Gemini advisor unavailable, chat will use fallback replies: %v", err)
		} else {
			advisor = a
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat will use fallback replies")
	}

	svc := service.NewService(repo, gen, snapCache, advisor, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	sched := scheduler.NewScheduler(repo, mailer, logger)
	if err := sched.Start(cfg.ReminderHour); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/profile", h.GetProfile).Methods("GET")
	authRouter.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")
	authRouter.HandleFunc("/profile/regenerate", h.RegenerateSnapshot).Methods("POST")
	authRouter.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	authRouter.HandleFunc("/nudges", h.Nudges).Methods("GET")
	authRouter.HandleFunc("/tax", h.EstimateTax).Methods("POST")
	authRouter.HandleFunc("/chat", h.Chat).Methods("POST")

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
