package usecase_test

import (
	"context"
	"testing"

	"laundry-hub/internal/data/entity"
	"laundry-hub/internal/dto/request"
	"laundry-hub/internal/usecase"
	"laundry-hub/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MockStoreRepository is a mock implementation of repository.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Insert(ctx context.Context, store *entity.Store) (primitive.ObjectID, error) {
	args := m.Called(ctx, store)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, cityFilter *string) ([]*entity.Store, error) {
	args := m.Called(ctx, cityFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) Search(ctx context.Context, query string) ([]*entity.Store, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Store), args.Error(1)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestStoreService_CreateStore_Defaults(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	assignedID := primitive.NewObjectID()
	var inserted *entity.Store

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entity.Store")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*entity.Store)
		}).
		Return(assignedID, nil).Once()

	resp, err := service.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name: "CleanCo",
		Location: &request.LocationRequest{
			City: strPtr("Kathmandu"),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, assignedID.Hex(), resp.ID)
	assert.Equal(t, "CleanCo", resp.Name)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.IsVerified)
	assert.False(t, resp.IsDelivery)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	assert.NotNil(t, resp.Location)
	assert.Equal(t, "Kathmandu", *resp.Location.City)

	assert.False(t, inserted.CreatedAt.IsZero())
	assert.Equal(t, inserted.CreatedAt, inserted.UpdatedAt)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_CreateStore_ExplicitFlags(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*entity.Store")).
		Return(primitive.NewObjectID(), nil).Once()

	resp, err := service.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:       "WashWorld",
		IsActive:   boolPtr(false),
		IsDelivery: boolPtr(true),
	})

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.False(t, resp.IsVerified)
	assert.True(t, resp.IsDelivery)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_CreateStore_MissingName(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	resp, err := service.CreateStore(context.Background(), &request.CreateStoreRequest{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestStoreService_GetStoreByID_InvalidID(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	resp, err := service.GetStoreByID(context.Background(), "not-a-valid-id")

	assert.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Nil(t, resp)

	// The malformed id is rejected before any database access
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestStoreService_GetStoreByID_NotFound(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	missingID := primitive.NewObjectID()
	mockRepo.On("FindByID", mock.Anything, missingID).Return(nil, nil).Once()

	resp, err := service.GetStoreByID(context.Background(), missingID.Hex())

	assert.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, resp)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_GetStoreByID_Found(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	storeID := primitive.NewObjectID()
	store := &entity.Store{
		ID:       storeID,
		Name:     "CleanCo",
		IsActive: true,
		Location: &entity.Location{
			City:    strPtr("Kathmandu"),
			Address: strPtr("Thamel Marg"),
		},
	}
	mockRepo.On("FindByID", mock.Anything, storeID).Return(store, nil).Once()

	resp, err := service.GetStoreByID(context.Background(), storeID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, storeID.Hex(), resp.ID)
	assert.Equal(t, "CleanCo", resp.Name)
	assert.Equal(t, "Thamel Marg", *resp.Location.Address)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_GetStores_Empty(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	mockRepo.On("FindAll", mock.Anything, (*string)(nil)).Return([]*entity.Store{}, nil).Once()

	resp, err := service.GetStores(context.Background(), nil)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_GetStoresByCity(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	stores := []*entity.Store{
		{ID: primitive.NewObjectID(), Name: "CleanCo"},
		{ID: primitive.NewObjectID(), Name: "WashWorld"},
	}
	mockRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(city *string) bool {
		return city != nil && *city == "kathmandu"
	})).Return(stores, nil).Once()

	resp, err := service.GetStoresByCity(context.Background(), "kathmandu")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "CleanCo", resp[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_SearchStores_EmptyQuery(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	resp, err := service.SearchStores(context.Background(), "")

	assert.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Nil(t, resp)
	mockRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestStoreService_SearchStores(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := usecase.NewStoreService(mockRepo, zap.NewNop())

	stores := []*entity.Store{
		{ID: primitive.NewObjectID(), Name: "Thamel Laundry"},
	}
	mockRepo.On("Search", mock.Anything, "thamel").Return(stores, nil).Once()

	resp, err := service.SearchStores(context.Background(), "thamel")

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Thamel Laundry", resp[0].Name)
	mockRepo.AssertExpectations(t)
}
