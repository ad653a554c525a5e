package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/freshmart/internal/cart"
	"github.com/jcmexdev/freshmart/internal/catalog"
	"github.com/jcmexdev/freshmart/internal/kvstore"
	"github.com/jcmexdev/freshmart/internal/orders"
	"github.com/jcmexdev/freshmart/internal/pkg/money"
)

// Handler exposes the storefront core over JSON: catalog queries, the cart
// operations, checkout, the theme preference and the admin order view.
type Handler struct {
	catalog *catalog.Catalog
	cart    *cart.Store
	orders  *orders.Book
	storage kvstore.Store // theme key only
}

func NewHandler(cat *catalog.Catalog, cartStore *cart.Store, book *orders.Book, storage kvstore.Store) *Handler {
	return &Handler{
		catalog: cat,
		cart:    cartStore,
		orders:  book,
		storage: storage,
	}
}

// ListProducts serves the shop page grid: the catalog filtered by category
// and ordered by the sort key, both taken from query parameters.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}
	key := catalog.SortKey(r.URL.Query().Get("sort"))

	products := catalog.FilterAndSort(h.catalog.Products(), category, key)
	writeJSON(w, http.StatusOK, mapProducts(products))
}

// GetProduct serves the product detail modal.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := h.catalog.FindByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// ListBestsellers serves the homepage bestseller grid.
func (h *Handler) ListBestsellers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapProducts(h.catalog.Bestsellers()))
}

// GetCart serves the cart modal's render model.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := cart.Project(h.cart.Items(), h.catalog)
	writeJSON(w, http.StatusOK, mapCartView(view, h.cart.TotalQuantity()))
}

// AddCartItem adds a product to the cart; the quantity defaults to 1.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id_required", "")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	h.cart.Add(r.Context(), req.ProductID, quantity)
	h.writeCart(w)
}

// UpdateCartItem sets a line item's quantity from raw input; the cart coerces
// and clamps it. Updating a product not in the cart is a no-op.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	h.cart.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), rawQuantity(req.Quantity))
	h.writeCart(w)
}

// RemoveCartItem deletes a line item. Idempotent.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(r.Context(), chi.URLParam(r, "id"))
	h.writeCart(w)
}

// Checkout places an order from the current cart and clears it.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Customer.Name == "" || req.Customer.Phone == "" {
		writeError(w, http.StatusBadRequest, "invalid_customer", "name and phone are required")
		return
	}

	items := h.cart.Items()
	if len(items) == 0 {
		writeError(w, http.StatusConflict, "cart_empty", "your cart is empty")
		return
	}

	// The subtotal covers resolvable lines only; dangling references carry
	// no price.
	view := cart.Project(items, h.catalog)

	orderItems := make([]orders.Item, len(items))
	for i, it := range items {
		orderItems[i] = orders.Item{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	order, err := h.orders.Place(r.Context(), orders.Customer(req.Customer), orderItems, view.Subtotal)
	if err != nil {
		slog.ErrorContext(r.Context(), "placing order failed", "error", err)
		writeError(w, http.StatusInternalServerError, "checkout_failed", "")
		return
	}

	h.cart.Clear(r.Context())
	writeJSON(w, http.StatusCreated, mapOrder(order))
}

// GetTheme reads the persisted theme preference, defaulting to light.
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.storage.Get(r.Context(), kvstore.KeyTheme)
	if err != nil {
		slog.ErrorContext(r.Context(), "reading theme failed", "error", err)
	}
	if theme != "dark" {
		theme = "light"
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme persists the theme preference.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Theme != "dark" && req.Theme != "light" {
		writeError(w, http.StatusBadRequest, "invalid_theme", `theme must be "dark" or "light"`)
		return
	}
	if err := h.storage.Set(r.Context(), kvstore.KeyTheme, req.Theme); err != nil {
		slog.ErrorContext(r.Context(), "saving theme failed", "error", err)
		writeError(w, http.StatusInternalServerError, "theme_not_saved", "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}

// ListOrders serves the admin order table, most recent first.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	all := h.orders.List(r.Context())
	out := make([]OrderResponse, len(all))
	for i, o := range all {
		out[i] = mapOrder(o)
	}
	writeJSON(w, http.StatusOK, out)
}

// MarkOrderDelivered flips an order to delivered. Unknown IDs are a no-op.
func (h *Handler) MarkOrderDelivered(w http.ResponseWriter, r *http.Request) {
	h.orders.MarkDelivered(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrder removes one order. Idempotent.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	h.orders.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ClearOrders empties the order list.
func (h *Handler) ClearOrders(w http.ResponseWriter, r *http.Request) {
	h.orders.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeCart(w http.ResponseWriter) {
	view := cart.Project(h.cart.Items(), h.catalog)
	writeJSON(w, http.StatusOK, mapCartView(view, h.cart.TotalQuantity()))
}

func mapProduct(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		PriceDisplay: money.Format(p.Price),
		Unit:         p.Unit,
		Description:  p.Description,
		ImageSrc:     p.ImageSrc,
	}
}

func mapProducts(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = mapProduct(p)
	}
	return out
}

func mapCartView(view cart.View, totalQuantity int) CartResponse {
	lines := make([]CartLineResponse, len(view.Lines))
	for i, l := range view.Lines {
		lines[i] = CartLineResponse{
			ProductID:        l.ProductID,
			Name:             l.Name,
			UnitPrice:        l.UnitPrice,
			UnitPriceDisplay: money.Format(l.UnitPrice),
			Unit:             l.Unit,
			Quantity:         l.Quantity,
			LineTotal:        l.LineTotal,
			LineTotalDisplay: money.Format(l.LineTotal),
			ImageSrc:         l.ImageSrc,
		}
	}
	return CartResponse{
		Lines:           lines,
		Subtotal:        view.Subtotal,
		SubtotalDisplay: money.Format(view.Subtotal),
		IsEmpty:         view.IsEmpty,
		TotalQuantity:   totalQuantity,
	}
}

func mapOrder(o orders.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return OrderResponse{
		ID:       o.ID,
		Customer: CustomerDTO(o.Customer),
		Items:    items,
		Subtotal: o.Subtotal,
		Status:   o.Status,
		PlacedAt: o.PlacedAt.Format(time.RFC3339),
	}
}

// rawQuantity turns the raw JSON quantity field into the string the cart
// coerces: numbers pass through as written, quoted strings are unquoted.
func rawQuantity(raw json.RawMessage) string {
	return strings.Trim(strings.TrimSpace(string(raw)), `"`)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
