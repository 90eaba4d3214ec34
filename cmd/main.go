package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"student-grades/internal/config"
	"student-grades/internal/database"
	"student-grades/internal/handler"
	"student-grades/internal/service"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize the database: ", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get SQL DB: ", err)
	}
	defer sqlDB.Close()

	// Initialize services and handlers
	gradeService := service.NewGradeService(db)
	gradeHandler := handler.NewGradeHandler(gradeService)
	healthHandler := handler.NewHealthHandler(gradeService)

	// Setup router
	r := handler.NewRouter(gradeHandler, healthHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler.Wrap(r, cfg.AllowedOrigins, os.Stdout),
	}

	go func() {
		log.Printf("Server running on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server shutdown failed:", err)
	}
}
