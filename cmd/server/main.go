package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/galactic-greens/storefront/internal/config"
	"github.com/galactic-greens/storefront/internal/handlers"
	"github.com/galactic-greens/storefront/internal/mailer"
	"github.com/galactic-greens/storefront/internal/middleware"
	"github.com/galactic-greens/storefront/internal/repository"
	"github.com/galactic-greens/storefront/internal/service"
	"github.com/galactic-greens/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"mail_transport", cfg.Mail.Transport,
	)

	transport, err := newMailTransport(cfg.Mail, log)
	if err != nil {
		log.Error("failed to initialize mail transport", "error", err)
		os.Exit(1)
	}
	mail := mailer.NewBreakerMailer(transport, mailer.BreakerSettings{
		ConsecutiveFailures: uint32(cfg.Breaker.ConsecutiveFailures),
		OpenTimeout:         time.Duration(cfg.Breaker.OpenTimeout) * time.Second,
	}, log)

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(mail, service.OrderMailConfig{
		StoreName: cfg.StoreName,
		From:      cfg.Mail.From,
		To:        cfg.Mail.Receivers,
	}, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, mail.State)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: the order form posts from the browser
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)

		r.Post("/send-email", orderHandler.SendOrderEmail)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

func newMailTransport(cfg config.MailConfig, log *slog.Logger) (mailer.Mailer, error) {
	switch cfg.Transport {
	case config.TransportSMTP:
		return mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.Username,
			Password: cfg.Password,
			Timeout:  time.Duration(cfg.SendTimeout) * time.Second,
		})
	case config.TransportResend:
		return mailer.NewResendMailer(cfg.ResendAPIKey, cfg.From, cfg.ResendBaseURL)
	case config.TransportLog:
		log.Warn("using log mail transport, orders will not be emailed")
		return mailer.NewLogMailer(log), nil
	}
	return nil, fmt.Errorf("unknown mail transport %q", cfg.Transport)
}
