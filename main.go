package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-items-api/config"
	"go-items-api/internal/app"
	"go-items-api/internal/database"
	"go-items-api/internal/server"
	"go-items-api/internal/services"
	"go-items-api/internal/storage/gormstore"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// @title           Items CRUD API with AI and Simulation Proxies
// @version         1.0
// @description     CRUD endpoints over a relational store plus thin proxy endpoints to a chat completion provider and a cloud simulation provider.

// @host      localhost:8080
// @BasePath  /
// @schemes   http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database, cfg.Debug)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:            cfg,
		DB:                db,
		ItemRepo:          gormstore.NewItemRepo(db),
		ChatService:       services.NewChatService(cfg.OpenAI),
		SimulationService: services.NewSimulationService(cfg.AnyLogic),
		Validator:         validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			logrus.Errorf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	logrus.Info("Shutting down server...")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logrus.Info("Application gracefully stopped.")
}
