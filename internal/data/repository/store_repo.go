package repository

import (
	"context"
	"fmt"
	"regexp"

	"laundry-hub/internal/data/entity"
	"laundry-hub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type StoreRepository interface {
	Insert(ctx context.Context, store *entity.Store) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Store, error)
	FindAll(ctx context.Context, cityFilter *string) ([]*entity.Store, error)
	Search(ctx context.Context, query string) ([]*entity.Store, error)
}

type storeRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewStoreRepository(db database.MongoIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		col: db.Collection(database.StoresCollection),
		log: log.With(zap.String("repository", "store")),
	}
}

// Insert writes a new store document and returns its assigned id
func (sr *storeRepository) Insert(ctx context.Context, store *entity.Store) (primitive.ObjectID, error) {
	result, err := sr.col.InsertOne(ctx, store)
	if err != nil {
		sr.log.Error("Failed to insert store",
			zap.Error(err),
			zap.String("name", store.Name),
		)
		return primitive.NilObjectID, fmt.Errorf("insert store %s: %w", store.Name, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// FindByID returns (nil, nil) when no document has the given id
func (sr *storeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Store, error) {
	var store entity.Store
	err := sr.col.FindOne(ctx, bson.M{"_id": id}).Decode(&store)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.Hex()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.Hex(), err)
	}

	return &store, nil
}

func (sr *storeRepository) FindAll(ctx context.Context, cityFilter *string) ([]*entity.Store, error) {
	filter := bson.M{}
	if cityFilter != nil && *cityFilter != "" {
		filter = buildCityFilter(*cityFilter)
	}

	cursor, err := sr.col.Find(ctx, filter)
	if err != nil {
		sr.log.Error("Failed to find stores",
			zap.Error(err),
			zap.Stringp("city_filter", cityFilter),
		)
		return nil, fmt.Errorf("find stores: %w", err)
	}

	return sr.decodeAll(ctx, cursor)
}

func (sr *storeRepository) Search(ctx context.Context, query string) ([]*entity.Store, error) {
	cursor, err := sr.col.Find(ctx, buildSearchFilter(query))
	if err != nil {
		sr.log.Error("Failed to search stores",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search stores %q: %w", query, err)
	}

	return sr.decodeAll(ctx, cursor)
}

func (sr *storeRepository) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Store, error) {
	defer cursor.Close(ctx)

	var stores []*entity.Store
	for cursor.Next(ctx) {
		var store entity.Store
		if err := cursor.Decode(&store); err != nil {
			sr.log.Error("Failed to decode store document", zap.Error(err))
			return nil, fmt.Errorf("decode store document: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := cursor.Err(); err != nil {
		sr.log.Error("Cursor iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate store documents: %w", err)
	}

	return stores, nil
}

// buildCityFilter matches location.city as a case-insensitive substring.
// User input is quoted so regex metacharacters are taken literally.
func buildCityFilter(city string) bson.M {
	return bson.M{
		"location.city": primitive.Regex{Pattern: regexp.QuoteMeta(city), Options: "i"},
	}
}

// buildSearchFilter matches name OR location.address, same substring rules
func buildSearchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"location.address": pattern},
		},
	}
}
