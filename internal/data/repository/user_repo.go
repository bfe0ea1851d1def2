package repository

import (
	"context"
	"fmt"

	"laundry-hub/internal/data/entity"
	"laundry-hub/pkg/database"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(db database.MongoIface, log *zap.Logger) UserRepository {
	return &userRepository{
		col: db.Collection(database.UsersCollection),
		log: log.With(zap.String("repository", "user")),
	}
}

// Insert writes a new user document and returns its assigned id
func (ur *userRepository) Insert(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	result, err := ur.col.InsertOne(ctx, user)
	if err != nil {
		ur.log.Error("Failed to insert user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.String("email", user.Email),
		)
		return primitive.NilObjectID, fmt.Errorf("insert user %s: %w", user.Username, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}
