package orders

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/freshmart/internal/kvstore"
)

// Book is the order list over the persisted "orders" key. Reads always go
// through storage so the admin surface sees orders written by any earlier
// session; the mutex keeps each read-modify-write atomic within the process.
type Book struct {
	mu      sync.Mutex
	storage kvstore.Store
}

func NewBook(storage kvstore.Store) *Book {
	return &Book{storage: storage}
}

// List returns all orders in reverse-chronological order, most recently
// placed first. Absent or malformed storage yields an empty list, never an
// error.
func (b *Book) List(ctx context.Context) []Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.loadAll(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return all[j].PlacedAt.Before(all[i].PlacedAt)
	})
	return all
}

// Place appends a new pending order and persists the list. This is the
// checkout side of the order store; the admin operations below only read and
// mutate what Place (or an earlier session) wrote.
func (b *Book) Place(ctx context.Context, customer Customer, items []Item, subtotal float64) (Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order := Order{
		ID:       uuid.NewString(),
		Customer: customer,
		Items:    items,
		Subtotal: subtotal,
		Status:   StatusPending,
		PlacedAt: time.Now().UTC(),
	}

	all := append(b.loadAll(ctx), order)
	if err := b.saveAll(ctx, all); err != nil {
		return Order{}, err
	}

	slog.InfoContext(ctx, "order placed", "order_id", order.ID, "items", len(order.Items), "subtotal", order.Subtotal)
	return order, nil
}

// MarkDelivered sets the order's status to delivered and persists the list.
// An unknown order ID is a silent no-op.
func (b *Book) MarkDelivered(ctx context.Context, orderID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.loadAll(ctx)
	for i := range all {
		if all[i].ID == orderID {
			all[i].Status = StatusDelivered
			b.persist(ctx, all)
			return
		}
	}
}

// Delete removes the order with the given ID, if present. Idempotent.
func (b *Book) Delete(ctx context.Context, orderID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.loadAll(ctx)
	kept := all[:0]
	for _, o := range all {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(all) {
		return
	}
	b.persist(ctx, kept)
}

// ClearAll empties the persisted order list unconditionally.
func (b *Book) ClearAll(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.persist(ctx, nil)
}

// loadAll reads the persisted list. Malformed data is logged and treated as
// an empty list. Callers must hold b.mu.
func (b *Book) loadAll(ctx context.Context) []Order {
	raw, err := b.storage.Get(ctx, kvstore.KeyOrders)
	if err != nil {
		slog.ErrorContext(ctx, "reading orders from storage failed", "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var all []Order
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		slog.WarnContext(ctx, "stored orders are not a valid list, treating as empty", "error", err)
		return nil
	}
	return all
}

func (b *Book) saveAll(ctx context.Context, all []Order) error {
	if all == nil {
		all = []Order{}
	}
	data, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return b.storage.Set(ctx, kvstore.KeyOrders, string(data))
}

// persist writes the list, logging instead of surfacing a failure — the
// admin view degrades, it does not break.
func (b *Book) persist(ctx context.Context, all []Order) {
	if err := b.saveAll(ctx, all); err != nil {
		slog.ErrorContext(ctx, "saving orders to storage failed", "error", err)
	}
}
