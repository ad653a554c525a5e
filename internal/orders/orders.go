// Package orders holds the persisted order list: placed orders are appended
// by checkout and read or mutated by the admin surface.
package orders

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
)

// Customer is the delivery information captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Label   string `json:"label"`
}

// Item is one ordered line, referencing a product by ID. The product may no
// longer exist in the catalog by the time the order is viewed.
type Item struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID       string    `json:"id"`
	Customer Customer  `json:"customer"`
	Items    []Item    `json:"items"`
	Subtotal float64   `json:"subtotal"`
	Status   Status    `json:"status"`
	PlacedAt time.Time `json:"placedAt"`
}
