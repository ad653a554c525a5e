package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/freshmart/internal/httpx/middlewares"
)

func NewRouter(handler *Handler, adminPassword string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/products", handler.ListProducts)
	r.Get("/products/{id}", handler.GetProduct)
	r.Get("/bestsellers", handler.ListBestsellers)

	r.Get("/cart", handler.GetCart)
	r.Post("/cart/items", handler.AddCartItem)
	r.Patch("/cart/items/{id}", handler.UpdateCartItem)
	r.Delete("/cart/items/{id}", handler.RemoveCartItem)

	r.Post("/checkout", handler.Checkout)

	r.Get("/theme", handler.GetTheme)
	r.Put("/theme", handler.SetTheme)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.AdminGate(adminPassword))
		r.Get("/orders", handler.ListOrders)
		r.Post("/orders/{id}/deliver", handler.MarkOrderDelivered)
		r.Delete("/orders/{id}", handler.DeleteOrder)
		r.Delete("/orders", handler.ClearOrders)
	})

	return r
}
