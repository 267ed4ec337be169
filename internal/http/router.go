package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/flowershop/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/type/{type}", handlers.GetProductsByTypeHandler)
	r.Get("/inventory/value", handlers.InventoryValueHandler)
	r.Get("/tickets", handlers.GetTicketsHandler)
	r.Get("/reports/benefits", handlers.ShopBenefitsHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware)
		pr.Post("/products", handlers.CreateProductHandler)
		pr.Put("/products/{id}/stock", handlers.UpdateStockHandler)
		pr.Delete("/products/{id}", handlers.DeleteProductHandler)
		pr.Post("/tickets", handlers.CreateTicketHandler)
		pr.Post("/admin/seed", handlers.SeedCatalogHandler)
	})

	return r
}
