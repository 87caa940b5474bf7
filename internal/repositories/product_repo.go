package repositories

import (
	"context"
	"errors"

	"giftshop/internal/models"
)

// ErrNotFound is returned when no product row matches the requested id.
var ErrNotFound = errors.New("record not found")

// ProductFilter narrows a product listing. Zero values disable a filter.
type ProductFilter struct {
	Category      string
	AvailableOnly bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product models.ProductCreate) (*models.Product, error)
	Update(ctx context.Context, id int64, product models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}
