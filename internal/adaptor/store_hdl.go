package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"laundry-hub/internal/dto/request"
	"laundry-hub/internal/usecase"
	"laundry-hub/pkg/apperr"
	"laundry-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// CreateStore handles POST /stores/
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	store, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create store")
		return
	}

	utils.ResponseSuccess(w, store)
}

// GetStores handles GET /stores/ with an optional city query param
func (h *StoreHandler) GetStores(w http.ResponseWriter, r *http.Request) {
	var cityFilter *string
	if city := r.URL.Query().Get("city"); city != "" {
		cityFilter = &city
	}

	stores, err := h.service.GetStores(r.Context(), cityFilter)
	if err != nil {
		h.handleServiceError(w, err, "get stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// SearchStores handles GET /stores/search?query=...
func (h *StoreHandler) SearchStores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	stores, err := h.service.SearchStores(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "search stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// GetStoresByCity handles GET /stores/city/{city_name}
func (h *StoreHandler) GetStoresByCity(w http.ResponseWriter, r *http.Request) {
	cityName := chi.URLParam(r, "city_name")

	stores, err := h.service.GetStoresByCity(r.Context(), cityName)
	if err != nil {
		h.handleServiceError(w, err, "get stores by city")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// GetStoreByID handles GET /stores/{store_id}
func (h *StoreHandler) GetStoreByID(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")

	store, err := h.service.GetStoreByID(r.Context(), storeID)
	if err != nil {
		h.handleServiceError(w, err, "get store by ID")
		return
	}

	utils.ResponseSuccess(w, store)
}

// handleServiceError maps service error kinds onto status codes
func (h *StoreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, apperr.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, err.Error())
	}
}
