// Package kvstore is the port for the storefront's persisted key-value
// namespace (the "cart", "orders" and "theme" keys). Backends exist for
// SQLite, Redis and plain memory; the core never knows which one it talks to.
package kvstore

import "context"

// Well-known keys in the storefront namespace.
const (
	KeyCart   = "cart"
	KeyOrders = "orders"
	KeyTheme  = "theme"
)

// Store is the persistence port. Get returns the empty string for an absent
// key, not an error — absence is a normal state for every key in the
// namespace and callers treat "" as "nothing stored yet".
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
