package adaptor

import (
	"laundry-hub/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User  *UserHandler
	Store *StoreHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:  NewUserHandler(service.User, log),
		Store: NewStoreHandler(service.Store, log),
	}
}
