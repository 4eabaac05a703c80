package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/giakoii/my-store/internal/middleware"
)

func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// SetupRouter настраивает HTTP-маршруты и middleware шлюза магазина.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.Logger(h.logger))
	r.Use(h.codec.WithCredentials)

	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/session", h.Session)

	r.Get("/api/board", h.Board)
	r.Get("/api/pricing", h.PriceBatches)
	r.Get("/api/product-types", h.ProductTypes)

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.MyOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{orderID}", h.OrderDetail)
	})

	r.Group(func(r chi.Router) {
		r.Use(custommiddleware.RequireAdmin)

		r.Get("/api/admin/orders", h.AdminOrders)
		r.Get("/api/admin/orders/{orderID}", h.AdminOrderDetail)

		r.Post("/api/pricing", h.CreatePriceBatch)
		r.Post("/api/product-types", h.CreateProductType)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
