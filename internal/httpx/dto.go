package httpx

import (
	"encoding/json"

	"github.com/jcmexdev/freshmart/internal/orders"
)

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Unit         string  `json:"unit,omitempty"`
	Description  string  `json:"description"`
	ImageSrc     string  `json:"image_src"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	// Raw so non-numeric input reaches the cart's coercion instead of
	// failing the decode; the cart clamps whatever arrives.
	Quantity json.RawMessage `json:"quantity"`
}

type CartLineResponse struct {
	ProductID        string  `json:"product_id"`
	Name             string  `json:"name"`
	UnitPrice        float64 `json:"unit_price"`
	UnitPriceDisplay string  `json:"unit_price_display"`
	Unit             string  `json:"unit,omitempty"`
	Quantity         int     `json:"quantity"`
	LineTotal        float64 `json:"line_total"`
	LineTotalDisplay string  `json:"line_total_display"`
	ImageSrc         string  `json:"image_src"`
}

type CartResponse struct {
	Lines           []CartLineResponse `json:"lines"`
	Subtotal        float64            `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	IsEmpty         bool               `json:"is_empty"`
	TotalQuantity   int                `json:"total_quantity"`
}

type CheckoutRequest struct {
	Customer CustomerDTO `json:"customer"`
}

type CustomerDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Label   string `json:"label"`
}

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID       string              `json:"id"`
	Customer CustomerDTO         `json:"customer"`
	Items    []OrderItemResponse `json:"items"`
	Subtotal float64             `json:"subtotal"`
	Status   orders.Status       `json:"status"`
	PlacedAt string              `json:"placed_at"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
