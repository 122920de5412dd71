package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talentmatch-backend/config"
	_ "go-talentmatch-backend/docs" // Important for Swagger
	v1 "go-talentmatch-backend/internal/delivery/http/v1"
	"go-talentmatch-backend/internal/repository/postgres"
	"go-talentmatch-backend/internal/usecase"
	"go-talentmatch-backend/pkg/database"
	"go-talentmatch-backend/pkg/email"
	"go-talentmatch-backend/pkg/logger"
	"go-talentmatch-backend/pkg/redis"
	"go-talentmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           TalentMatch Backend API
// @version         1.0
// @description     Candidate catalog, interview requests, and matching views for the hiring platform.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talentmatch backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; middleware falls back in-memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	requestRepo := postgres.NewRequestRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - interview invitations will not be sent")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	employerUC := usecase.NewEmployerUsecase(employerRepo, validate)
	requestUC := usecase.NewRequestUsecase(requestRepo, candidateRepo, employerRepo, emailService)
	matchingUC := usecase.NewMatchingUsecase(candidateRepo, requestRepo, cfg.PageSize)
	statsUC := usecase.NewStatsUsecase(statsRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		EmployerUC:  employerUC,
		RequestUC:   requestUC,
		MatchingUC:  matchingUC,
		StatsUC:     statsUC,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
