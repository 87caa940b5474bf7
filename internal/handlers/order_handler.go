package handlers

import (
	"giftshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for ordering instructions.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/order/:id", h.HandleGetOrderInfo)
}

// HandleGetOrderInfo tells the customer where to order an available product.
// Missing and unavailable products both yield 404.
func (h *OrderHandler) HandleGetOrderInfo(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	info, err := h.service.GetOrderInfo(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(info)
}
