package handlers

import (
	"context"
	"time"

	"giftshop/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// InfoHandler serves the static metadata endpoints and the health check.
type InfoHandler struct {
	app      config.AppConfig
	telegram config.TelegramConfig
	db       Pinger
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(app config.AppConfig, telegram config.TelegramConfig, db Pinger) *InfoHandler {
	return &InfoHandler{
		app:      app,
		telegram: telegram,
		db:       db,
	}
}

// RegisterRoutes registers the root, config and health routes.
func (h *InfoHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/config/telegram", h.HandleTelegramConfig)
	router.Get("/health", h.HandleHealth)
}

// HandleRoot returns API metadata.
func (h *InfoHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":          h.app.Name,
		"version":          h.app.Version,
		"telegram_channel": h.telegram.ChannelURL,
	})
}

// HandleTelegramConfig returns the public Telegram channel settings.
func (h *InfoHandler) HandleTelegramConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"channel_url": h.telegram.ChannelURL,
		"message":     "Visit our Telegram channel to place orders",
	})
}

// HandleHealth reports whether the database can be opened.
func (h *InfoHandler) HandleHealth(c *fiber.Ctx) error {
	now := time.Now().Format(time.RFC3339)
	if err := h.db.Ping(c.UserContext()); err != nil {
		logrus.WithError(err).Error("health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"time":   now,
		})
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   now,
	})
}
