// Package cart owns the shopper's cart: an ordered list of line items,
// mirrored into the persisted key-value namespace under the "cart" key.
//
// Every failure is contained and degraded, never surfaced: malformed stored
// data resets the cart, unknown products are ignored, and a failed write
// leaves the in-memory cart authoritative for the rest of the session. The
// cart must never break the page.
package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	"github.com/jcmexdev/freshmart/internal/catalog"
	"github.com/jcmexdev/freshmart/internal/kvstore"
)

// LineItem is one (product, quantity) pair. Quantity is always >= 1; at most
// one line item exists per product ID.
type LineItem struct {
	ProductID string
	Quantity  int
}

// storedItem is the wire form of a line item in the key-value store.
// Quantity is decoded as float64 so a fractional or zero value in old data
// can still be normalized per item instead of failing the whole parse.
type storedItem struct {
	ID       string  `json:"id"`
	Quantity float64 `json:"quantity"`
}

// Store holds the authoritative in-memory cart and keeps the persisted copy
// in sync. The mutex preserves the single-logical-writer model: one mutation
// runs to completion before the next begins.
type Store struct {
	mu       sync.Mutex
	items    []LineItem
	catalog  *catalog.Catalog
	storage  kvstore.Store
	onChange func(totalQuantity int)
}

func NewStore(cat *catalog.Catalog, storage kvstore.Store) *Store {
	return &Store{catalog: cat, storage: storage}
}

// SetOnChange registers the badge callback, invoked with the total quantity
// after every load and mutation.
func (s *Store) SetOnChange(fn func(totalQuantity int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Load hydrates the cart from storage. An absent key yields an empty cart;
// malformed data (parse failure, or JSON that is not an array) resets the
// cart and clears the persisted copy. Quantities are normalized to positive
// integers, defaulting to 1. Load never fails outward.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	raw, err := s.storage.Get(ctx, kvstore.KeyCart)
	if err != nil {
		slog.ErrorContext(ctx, "reading cart from storage failed, starting empty", "error", err)
		s.notify()
		return
	}
	if raw == "" {
		s.notify()
		return
	}

	var stored []storedItem
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.WarnContext(ctx, "stored cart is not a valid item list, resetting", "error", err)
		if err := s.storage.Delete(ctx, kvstore.KeyCart); err != nil {
			slog.ErrorContext(ctx, "clearing malformed cart failed", "error", err)
		}
		s.notify()
		return
	}

	s.items = make([]LineItem, 0, len(stored))
	for _, it := range stored {
		s.items = append(s.items, LineItem{
			ProductID: it.ID,
			Quantity:  normalizeQuantity(int(it.Quantity)),
		})
	}
	s.notify()
}

// Add puts quantity units of the product into the cart, merging into an
// existing line item when one exists. Unknown product IDs are logged and
// ignored.
func (s *Store) Add(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.FindByID(productID); !ok {
		slog.ErrorContext(ctx, "add to cart: product not found", "product_id", productID)
		return
	}

	quantity = normalizeQuantity(quantity)

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, LineItem{ProductID: productID, Quantity: quantity})
	}

	s.save(ctx)
	s.notify()
}

// Remove deletes the product's line item. Removing an absent product is a
// no-op, so Remove is idempotent.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	s.save(ctx)
	s.notify()
}

// UpdateQuantity sets the product's quantity from raw user input. The input
// is integer-coerced and clamped to a minimum of 1; non-numeric input becomes
// 1. A product not in the cart is left alone.
func (s *Store) UpdateQuantity(ctx context.Context, productID, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items[i].Quantity = coerceQuantity(raw)

	s.save(ctx)
	s.notify()
}

// Clear empties the cart. Used after a successful checkout.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.save(ctx)
	s.notify()
}

// Save serializes the cart to storage. A write failure is logged and
// swallowed; the in-memory cart stays authoritative for the session.
func (s *Store) Save(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx)
}

// Items returns a copy of the cart's line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalQuantity is the badge counter: the sum of all line quantities.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

// Len reports the number of line items (not units) in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// save persists the cart. Callers must hold s.mu.
func (s *Store) save(ctx context.Context) {
	stored := make([]storedItem, len(s.items))
	for i, it := range s.items {
		stored[i] = storedItem{ID: it.ProductID, Quantity: float64(it.Quantity)}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		slog.ErrorContext(ctx, "serializing cart failed", "error", err)
		return
	}
	if err := s.storage.Set(ctx, kvstore.KeyCart, string(data)); err != nil {
		slog.ErrorContext(ctx, "saving cart to storage failed", "error", err)
	}
}

// notify fires the badge callback. Callers must hold s.mu.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.total())
	}
}

func (s *Store) total() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *Store) indexOf(productID string) int {
	for i, it := range s.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// coerceQuantity turns raw quantity input into a valid quantity: integer
// truncation for numeric input, 1 for anything unparseable or below 1.
func coerceQuantity(raw string) int {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 1
	}
	return normalizeQuantity(int(n))
}
