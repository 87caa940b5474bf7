package services

import (
	"context"
	"errors"
	"fmt"

	"giftshop/internal/models"
	"giftshop/internal/repositories"
)

// ErrProductUnavailable is returned by the order lookup for products that are
// missing or not available. Callers cannot tell the two cases apart.
var ErrProductUnavailable = errors.New("product not found or not available")

const orderInstructions = "Click the link above to go to our Telegram channel and place your order"

// OrderService points customers at the channel where orders are placed.
type OrderService struct {
	productRepo repositories.ProductRepository
	channelURL  string
}

// NewOrderService creates a new OrderService handing out channelURL.
func NewOrderService(productRepo repositories.ProductRepository, channelURL string) *OrderService {
	return &OrderService{
		productRepo: productRepo,
		channelURL:  channelURL,
	}
}

// GetOrderInfo returns ordering instructions for an available product.
func (s *OrderService) GetOrderInfo(ctx context.Context, productID int64) (*models.OrderInfo, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrProductUnavailable, err)
		}
		return nil, err
	}
	if !product.IsAvailable {
		return nil, fmt.Errorf("%w: product %d is not available", ErrProductUnavailable, productID)
	}

	return &models.OrderInfo{
		ProductID:         product.ID,
		ProductName:       product.Name,
		TelegramChannel:   s.channelURL,
		Message:           fmt.Sprintf("To order '%s', please visit our Telegram channel", product.Name),
		OrderInstructions: orderInstructions,
	}, nil
}
