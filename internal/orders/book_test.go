package orders

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/freshmart/internal/kvstore"
)

func seedOrders(t *testing.T, storage kvstore.Store, all []Order) {
	t.Helper()
	data, err := json.Marshal(all)
	require.NoError(t, err)
	require.NoError(t, storage.Set(context.Background(), kvstore.KeyOrders, string(data)))
}

func sampleOrders() []Order {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return []Order{
		{ID: "ord-1", Customer: Customer{Name: "Ayesha", Phone: "0300"}, Items: []Item{{ProductID: "prod001", Quantity: 2}}, Subtotal: 600, Status: StatusPending, PlacedAt: base},
		{ID: "ord-2", Customer: Customer{Name: "Bilal", Phone: "0301"}, Items: []Item{{ProductID: "prod004", Quantity: 1}}, Subtotal: 220, Status: StatusPending, PlacedAt: base.Add(time.Hour)},
		{ID: "ord-3", Customer: Customer{Name: "Sana", Phone: "0302"}, Items: []Item{{ProductID: "prod008", Quantity: 3}}, Subtotal: 300, Status: StatusDelivered, PlacedAt: base.Add(2 * time.Hour)},
	}
}

func TestListReturnsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	seedOrders(t, storage, sampleOrders())

	book := NewBook(storage)
	got := book.List(ctx)

	require.Len(t, got, 3)
	assert.Equal(t, "ord-3", got[0].ID)
	assert.Equal(t, "ord-2", got[1].ID)
	assert.Equal(t, "ord-1", got[2].ID)
}

func TestListMalformedStorageYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	require.NoError(t, storage.Set(ctx, kvstore.KeyOrders, `{"not":"a list"}`))

	book := NewBook(storage)
	assert.Empty(t, book.List(ctx))
}

func TestListAbsentStorageYieldsEmpty(t *testing.T) {
	book := NewBook(kvstore.NewMemory())
	assert.Empty(t, book.List(context.Background()))
}

func TestMarkDelivered(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	seedOrders(t, storage, sampleOrders())

	book := NewBook(storage)
	book.MarkDelivered(ctx, "ord-1")

	for _, o := range book.List(ctx) {
		if o.ID == "ord-1" {
			assert.Equal(t, StatusDelivered, o.Status)
			return
		}
	}
	t.Fatal("ord-1 not found after MarkDelivered")
}

func TestMarkDeliveredUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	seedOrders(t, storage, sampleOrders())

	book := NewBook(storage)
	before := book.List(ctx)
	book.MarkDelivered(ctx, "ghost")

	assert.Equal(t, before, book.List(ctx))
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	seedOrders(t, storage, sampleOrders())

	book := NewBook(storage)
	book.Delete(ctx, "ord-2")
	after := book.List(ctx)
	require.Len(t, after, 2)

	book.Delete(ctx, "ord-2")
	assert.Equal(t, after, book.List(ctx))
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	seedOrders(t, storage, sampleOrders())

	book := NewBook(storage)
	book.ClearAll(ctx)

	assert.Empty(t, book.List(ctx))

	raw, err := storage.Get(ctx, kvstore.KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw, "the persisted list is emptied, not removed")
}

func TestPlaceAppendsPendingOrder(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	book := NewBook(storage)

	customer := Customer{Name: "Ayesha", Phone: "0300", City: "Lahore", Address: "12 Mall Rd", Label: "home"}
	items := []Item{{ProductID: "prod001", Quantity: 2}, {ProductID: "prod004", Quantity: 1}}

	order, err := book.Place(ctx, customer, items, 820)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, customer, order.Customer)
	assert.Equal(t, items, order.Items)
	assert.Equal(t, 820.0, order.Subtotal)
	assert.WithinDuration(t, time.Now().UTC(), order.PlacedAt, time.Minute)

	listed := book.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, order.ID, listed[0].ID)
}
