package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"giftshop/internal/models"
	"giftshop/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// EventPublisher delivers product change events to interested parties.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) PublishEvent(string, interface{}) error { return nil }

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
	now    func() time.Time
}

// NewProductService creates a new ProductService. A nil publisher disables
// change events.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	if events == nil {
		events = NopPublisher{}
	}
	return &ProductService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// ListProducts retrieves products matching the filter, newest first.
func (s *ProductService) ListProducts(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(ctx, filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return product, nil
}

// CreateProduct stores a new product and returns it with its assigned id.
func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	product, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(models.ProductCreated, product.ID, product.Name)
	return product, nil
}

// UpdateProduct replaces every mutable field of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, in models.ProductInput) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, translate(err)
	}
	s.publish(models.ProductUpdated, product.ID, product.Name)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.publish(models.ProductDeleted, id, "")
	return nil
}

// ListCategories returns the distinct categories in use.
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// publish never fails the write that triggered it.
func (s *ProductService) publish(eventType string, id int64, name string) {
	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  id,
		Name:       name,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.PublishEvent(eventType, event); err != nil {
		logrus.WithError(err).
			WithField("event", eventType).
			WithField("product_id", id).
			Warn("failed to publish product event")
	}
}

func translate(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrProductNotFound, err)
	}
	return err
}
