package models

import "time"

// Product represents an item offered in the storefront.
// Price is expressed in minor currency units.
type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	Price             int64     `json:"price"`
	ImageURL          *string   `json:"image_url"`
	Category          *string   `json:"category"`
	IsAvailable       bool      `json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	TelegramMessageID *int64    `json:"telegram_message_id"`
}

// ProductInput is the full set of mutable product fields. Update requests use
// it as-is: omitted optional fields are stored as NULL.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"required,gte=0"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
	IsAvailable *bool   `json:"is_available"`
}

// Available reports the requested availability, defaulting to true.
func (in ProductInput) Available() bool {
	if in.IsAvailable == nil {
		return true
	}
	return *in.IsAvailable
}

// ProductCreate is the create request body. Unlike updates it may carry the
// id of the Telegram message that announced the product.
type ProductCreate struct {
	ProductInput
	TelegramMessageID *int64 `json:"telegram_message_id"`
}
