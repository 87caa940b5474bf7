package models

import "time"

const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductEvent is published after a product write succeeds.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  int64     `json:"product_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
