package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"giftshop/internal/config"
	"giftshop/internal/database"
	"giftshop/internal/handlers"
	"giftshop/internal/middleware"
	"giftshop/internal/repositories"
	"giftshop/internal/services"
	"giftshop/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()
	setupLogger(cfg.App.LogLevel)

	// --- Database ---
	provider := database.NewProvider(cfg.Database.Path)
	if err := database.EnsureSchema(context.Background(), provider); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database schema")
	}
	logrus.WithField("path", provider.Path()).Info("Database ready")

	// --- Product events ---
	// Events are optional: without RABBITMQ_URL they are dropped.
	var publisher services.EventPublisher = services.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:   cfg.RabbitMQ.URL,
			Queue: cfg.RabbitMQ.Queue,
		})
		if err != nil {
			logrus.WithError(err).Fatal("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	app := newApp(cfg, provider, publisher)

	// --- Start HTTP Server ---
	logrus.WithField("port", cfg.App.Port).Info("Starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.App.Port); err != nil {
			logrus.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-quit
	logrus.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Error("Error during Fiber shutdown")
	}
	logrus.Info("Server gracefully stopped")
}

// newApp wires repositories, services and handlers into a Fiber app.
func newApp(cfg *config.Config, provider *database.Provider, publisher services.EventPublisher) *fiber.App {
	productRepo := repositories.NewSQLiteProductRepository(provider)

	productService := services.NewProductService(productRepo, publisher)
	orderService := services.NewOrderService(productRepo, cfg.Telegram.OrderChannelURL)

	infoHandler := handlers.NewInfoHandler(cfg.App, cfg.Telegram, provider)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)

	metrics := middleware.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: logrus.StandardLogger().Out,
	}))
	app.Use(middleware.CORS(cfg.CORS))
	app.Use(metrics.Handler())

	// --- Routes ---
	app.Get("/metrics", metrics.Endpoint())
	infoHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	return app
}

func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("Unknown LOG_LEVEL, falling back to info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
