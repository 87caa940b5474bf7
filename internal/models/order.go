package models

// OrderInfo tells a customer where to go to order a product.
type OrderInfo struct {
	ProductID         int64  `json:"product_id"`
	ProductName       string `json:"product_name"`
	TelegramChannel   string `json:"telegram_channel"`
	Message           string `json:"message"`
	OrderInstructions string `json:"order_instructions"`
}
