package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/freshmart/internal/catalog"
	"github.com/jcmexdev/freshmart/internal/kvstore"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: "prod001", Name: "Apples", Category: "fruits", Price: 300},
		{ID: "prod004", Name: "Milk", Category: "dairy", Price: 220},
	}, nil)
}

func newTestStore(t *testing.T) (*Store, *kvstore.Memory) {
	t.Helper()
	storage := kvstore.NewMemory()
	s := NewStore(testCatalog(), storage)
	s.Load(context.Background())
	return s, storage
}

func TestAddMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, "prod001", 1)
	s.Add(ctx, "prod001", 2)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, LineItem{ProductID: "prod001", Quantity: 3}, items[0])
	assert.Equal(t, 3, s.TotalQuantity())
}

func TestAddUnknownProductIsIgnored(t *testing.T) {
	ctx := context.Background()
	s, storage := newTestStore(t)

	s.Add(ctx, "ghost", 1)

	assert.Empty(t, s.Items())
	raw, err := storage.Get(ctx, kvstore.KeyCart)
	require.NoError(t, err)
	assert.Empty(t, raw, "nothing should have been persisted")
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, "prod001", 2)
	s.Add(ctx, "prod004", 1)

	s.UpdateQuantity(ctx, "prod001", "0")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity, "quantity 0 must clamp to 1, not remove the line")
}

func TestUpdateQuantityCoercion(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{"2.7", 2},
		{"-3", 1},
		{"abc", 1},
		{"", 1},
	}
	for _, tc := range cases {
		t.Run(tc.raw+" -> valid", func(t *testing.T) {
			s, _ := newTestStore(t)
			s.Add(ctx, "prod001", 2)
			s.UpdateQuantity(ctx, "prod001", tc.raw)
			assert.Equal(t, tc.want, s.Items()[0].Quantity)
		})
	}
}

func TestUpdateQuantityAbsentProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, "prod001", 2)
	s.UpdateQuantity(ctx, "prod004", "7")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "prod001", items[0].ProductID)
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, "prod001", 1)
	s.Add(ctx, "prod004", 2)

	s.Remove(ctx, "prod001")
	after := s.Items()

	s.Remove(ctx, "prod001")
	assert.Equal(t, after, s.Items())
	assert.Equal(t, 2, s.TotalQuantity())
}

func TestQuantityInvariantHoldsUnderMutationSequence(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, "prod001", 0)
	s.Add(ctx, "prod004", -5)
	s.Add(ctx, "prod001", 3)
	s.UpdateQuantity(ctx, "prod004", "-1")
	s.UpdateQuantity(ctx, "prod001", "junk")
	s.Add(ctx, "prod004", 2)

	seen := map[string]bool{}
	for _, it := range s.Items() {
		assert.GreaterOrEqual(t, it.Quantity, 1, "line %s", it.ProductID)
		assert.False(t, seen[it.ProductID], "duplicate line for %s", it.ProductID)
		seen[it.ProductID] = true
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()

	s := NewStore(testCatalog(), storage)
	s.Load(ctx)
	s.Add(ctx, "prod001", 2)
	s.Add(ctx, "prod004", 1)

	reloaded := NewStore(testCatalog(), storage)
	reloaded.Load(ctx)

	assert.Equal(t, s.Items(), reloaded.Items())
}

func TestLoadResetsNonArrayValue(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	require.NoError(t, storage.Set(ctx, kvstore.KeyCart, `{"id":"prod001","quantity":2}`))

	s := NewStore(testCatalog(), storage)
	s.Load(ctx)

	assert.Empty(t, s.Items())

	raw, err := storage.Get(ctx, kvstore.KeyCart)
	require.NoError(t, err)
	assert.Empty(t, raw, "malformed persisted cart must be cleared")
}

func TestLoadNormalizesQuantities(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	require.NoError(t, storage.Set(ctx, kvstore.KeyCart,
		`[{"id":"prod001","quantity":0},{"id":"prod004"},{"id":"prod009","quantity":2.9}]`))

	s := NewStore(testCatalog(), storage)
	s.Load(ctx)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0].Quantity, "zero quantity defaults to 1")
	assert.Equal(t, 1, items[1].Quantity, "missing quantity defaults to 1")
	assert.Equal(t, 2, items[2].Quantity, "fractional quantity truncates")
}

func TestOnChangeFiresWithTotalQuantity(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var got []int
	s.SetOnChange(func(total int) { got = append(got, total) })

	s.Add(ctx, "prod001", 2)
	s.Add(ctx, "prod004", 1)
	s.Remove(ctx, "prod001")

	assert.Equal(t, []int{2, 3, 1}, got)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", nil }
func (failingStore) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}
func (failingStore) Delete(context.Context, string) error { return nil }

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testCatalog(), failingStore{})
	s.Load(ctx)

	s.Add(ctx, "prod001", 2)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, s.TotalQuantity())
}
