package main

import (
	"context"
	"errors"
	"log"
	"mrkgnao/internal/api"
	"mrkgnao/internal/compare"
	"mrkgnao/internal/config"
	"mrkgnao/internal/feedback"
	"mrkgnao/internal/llm"
	"mrkgnao/internal/repository"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Feedback storage is optional: without it the recorder only logs
	repo, err := repository.Open(cfg)
	if err != nil {
		log.Printf("Warning: Failed to open feedback store: %v. Continuing without storage.", err)
		repo = nil
	}
	if repo != nil {
		defer repo.Close()
	}

	claude, gemini := llm.CreateProviders(cfg)
	h := api.NewHandler(compare.New(claude, gemini), feedback.NewRecorder(repo))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(h),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("mrkgnao backend running on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Println("Server stopped")
}
