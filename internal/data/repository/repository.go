package repository

import (
	"laundry-hub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Store StoreRepository
}

func NewRepository(db database.MongoIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Store: NewStoreRepository(db, log),
	}
}
