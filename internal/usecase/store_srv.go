package usecase

import (
	"context"
	"fmt"
	"time"

	"laundry-hub/internal/data/entity"
	"laundry-hub/internal/data/repository"
	"laundry-hub/internal/dto/request"
	"laundry-hub/internal/dto/response"
	"laundry-hub/pkg/apperr"
	"laundry-hub/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type StoreService interface {
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	GetStores(ctx context.Context, cityFilter *string) ([]response.StoreResponse, error)
	GetStoresByCity(ctx context.Context, cityName string) ([]response.StoreResponse, error)
	SearchStores(ctx context.Context, query string) ([]response.StoreResponse, error)
	GetStoreByID(ctx context.Context, storeID string) (*response.StoreResponse, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
	log       *zap.Logger
}

func NewStoreService(storeRepo repository.StoreRepository, log *zap.Logger) StoreService {
	return &storeService{
		storeRepo: storeRepo,
		log:       log.With(zap.String("service", "store")),
	}
}

func (ss *storeService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ss.log.Warn("Create store validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	// Build store entity with defaults for omitted flags
	now := time.Now().UTC()
	store := &entity.Store{
		Name:         req.Name,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		Images:       req.Images,
		OpeningHours: req.OpeningHours,
		IsActive:     true,
		IsVerified:   false,
		IsDelivery:   false,
		PricePerKg:   req.PricePerKg,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}
	if req.IsVerified != nil {
		store.IsVerified = *req.IsVerified
	}
	if req.IsDelivery != nil {
		store.IsDelivery = *req.IsDelivery
	}

	if req.Location != nil {
		store.Location = &entity.Location{
			City:      req.Location.City,
			Address:   req.Location.Address,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	if req.Contact != nil {
		store.Contact = &entity.Contact{
			Phone:   req.Contact.Phone,
			Email:   req.Contact.Email,
			Website: req.Contact.Website,
		}
	}

	// Save store
	id, err := ss.storeRepo.Insert(ctx, store)
	if err != nil {
		ss.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create store: %w", err)
	}
	store.ID = id

	ss.log.Info("Store created",
		zap.String("store_id", id.Hex()),
		zap.String("name", store.Name),
	)

	storeResp := response.StoreToResponse(store)
	return &storeResp, nil
}

func (ss *storeService) GetStores(ctx context.Context, cityFilter *string) ([]response.StoreResponse, error) {
	stores, err := ss.storeRepo.FindAll(ctx, cityFilter)
	if err != nil {
		ss.log.Error("Failed to get stores",
			zap.Error(err),
			zap.Stringp("city_filter", cityFilter),
		)
		return nil, fmt.Errorf("get stores: %w", err)
	}

	ss.log.Info("Stores retrieved",
		zap.Int("count", len(stores)),
		zap.Stringp("city_filter", cityFilter),
	)

	return response.StoresToResponse(stores), nil
}

func (ss *storeService) GetStoresByCity(ctx context.Context, cityName string) ([]response.StoreResponse, error) {
	return ss.GetStores(ctx, &cityName)
}

func (ss *storeService) SearchStores(ctx context.Context, query string) ([]response.StoreResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", apperr.ErrInvalidArgument)
	}

	stores, err := ss.storeRepo.Search(ctx, query)
	if err != nil {
		ss.log.Error("Failed to search stores",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search stores: %w", err)
	}

	ss.log.Info("Stores searched",
		zap.String("query", query),
		zap.Int("count", len(stores)),
	)

	return response.StoresToResponse(stores), nil
}

func (ss *storeService) GetStoreByID(ctx context.Context, storeID string) (*response.StoreResponse, error) {
	// Reject malformed ids before touching the database
	id, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		ss.log.Warn("Invalid store ID format",
			zap.String("store_id", storeID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: invalid store ID format", apperr.ErrInvalidArgument)
	}

	store, err := ss.storeRepo.FindByID(ctx, id)
	if err != nil {
		ss.log.Error("Failed to get store by ID",
			zap.Error(err),
			zap.String("store_id", storeID),
		)
		return nil, fmt.Errorf("get store %s: %w", storeID, err)
	}

	if store == nil {
		return nil, fmt.Errorf("store %w", apperr.ErrNotFound)
	}

	storeResp := response.StoreToResponse(store)
	return &storeResp, nil
}
