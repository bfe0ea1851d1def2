package usecase

import (
	"laundry-hub/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	User  UserService
	Store StoreService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		User:  NewUserService(repo.User, log),
		Store: NewStoreService(repo.Store, log),
	}
}
