package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"candela/internal/cart"
	catalogctrl "candela/internal/catalog/controller"
	"candela/internal/client"
	orderctrl "candela/internal/order/controller"
)

func NewRouter(
	catalogCtrl *catalogctrl.CatalogController,
	orderCtrl *orderctrl.OrderController,
	clientCtrl *client.Controller,
	cartCtrl *cart.Controller,
	authMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Route("/products", func(r chi.Router) {
			r.Post("/", catalogCtrl.CreateProduct)
			r.Put("/{productID}", catalogCtrl.UpdateProduct)
			r.Post("/search", catalogCtrl.SearchProducts)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", clientCtrl.CreateClient)
			r.Get("/", clientCtrl.ListClients)
			r.Get("/{clientID}", clientCtrl.GetClient)
			r.Get("/{clientID}/products", catalogCtrl.ListClientProducts)
			r.Post("/{clientID}/assignments", catalogCtrl.AssignProduct)
			r.Delete("/{clientID}/assignments/{productID}", catalogCtrl.UnassignProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartCtrl.GetCart)
			r.Post("/items", cartCtrl.AddItem)
			r.Post("/items/{productID}/increment", cartCtrl.IncrementItem)
			r.Post("/items/{productID}/decrement", cartCtrl.DecrementItem)
			r.Delete("/items/{productID}", cartCtrl.RemoveItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.SubmitOrder)
			r.Get("/", orderCtrl.ListOrders)
			r.Get("/{orderID}", orderCtrl.GetOrder)
			r.Patch("/{orderID}/status", orderCtrl.UpdateStatus)
			r.Post("/{orderID}/duplicate", orderCtrl.DuplicateOrder)
		})
	})

	return r
}
