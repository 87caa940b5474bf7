package services_test

import (
	"context"
	"errors"
	"testing"

	"giftshop/internal/models"
	"giftshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderChannel = "https://t.me/orders"

func TestOrderService_GetOrderInfo(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo, orderChannel)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(3)).
		Return(&models.Product{ID: 3, Name: "Mug", Price: 1000, IsAvailable: true}, nil).Once()

	info, err := service.GetOrderInfo(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.ProductID)
	assert.Equal(t, "Mug", info.ProductName)
	assert.Equal(t, orderChannel, info.TelegramChannel)
	assert.Equal(t, "To order 'Mug', please visit our Telegram channel", info.Message)
	assert.NotEmpty(t, info.OrderInstructions)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderInfoUnavailable(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo, orderChannel)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(4)).
		Return(&models.Product{ID: 4, Name: "Lamp", IsAvailable: false}, nil).Once()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, notFound(99)).Once()

	_, err := service.GetOrderInfo(ctx, 4)
	assert.ErrorIs(t, err, services.ErrProductUnavailable)

	_, err = service.GetOrderInfo(ctx, 99)
	assert.ErrorIs(t, err, services.ErrProductUnavailable)
	assert.NotErrorIs(t, err, services.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderInfoStorageError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewOrderService(mockRepo, orderChannel)
	ctx := context.Background()

	dbErr := errors.New("disk I/O error")
	mockRepo.On("GetByID", ctx, int64(1)).Return(nil, dbErr).Once()

	_, err := service.GetOrderInfo(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, services.ErrProductUnavailable)
}
