package wire

import (
	"laundry-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStore(r chi.Router, storeHandler *adaptor.StoreHandler) {
	r.Route("/stores", func(r chi.Router) {
		// POST /stores/ - create a store
		r.Post("/", storeHandler.CreateStore)

		// GET /stores/ - list stores, optional ?city= substring filter
		r.Get("/", storeHandler.GetStores)

		// GET /stores/search?query= - match name or address
		r.Get("/search", storeHandler.SearchStores)

		// GET /stores/city/{city_name} - path-addressed city filter
		r.Get("/city/{city_name}", storeHandler.GetStoresByCity)

		// GET /stores/{store_id} - fetch one store
		r.Get("/{store_id}", storeHandler.GetStoreByID)
	})
}
