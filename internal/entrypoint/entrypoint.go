// Package entrypoint assembles the application: database, repositories,
// circulation service, controllers, router, and the HTTP server with
// graceful shutdown.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/bhavikm/librarian/internal/config"
	"github.com/bhavikm/librarian/internal/database"
	"github.com/bhavikm/librarian/internal/database/books"
	"github.com/bhavikm/librarian/internal/database/loans"
	"github.com/bhavikm/librarian/internal/database/students"
	http_controllers "github.com/bhavikm/librarian/internal/http"
	"github.com/bhavikm/librarian/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires every component together and serves the API.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Librarian v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	studentRepo := students.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	loanRepo := loans.NewRepository(db.DB)
	circulation := services.NewCirculation(studentRepo, bookRepo, loanRepo)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Students: http_controllers.NewStudentsController(studentRepo),
		Books:    http_controllers.NewBooksController(bookRepo),
		Loans:    http_controllers.NewLoansController(circulation),
		Stats:    http_controllers.NewStatsController(studentRepo, bookRepo, loanRepo),
		Health:   http_controllers.NewHealthController(db, version),
	})

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	Serve(corsWrapper.Handler(router), cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	})
}
