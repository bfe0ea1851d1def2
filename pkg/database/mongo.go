package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry-hub/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections the repositories rely on; EnsureCollections creates them on boot
const (
	UsersCollection  = "users"
	StoresCollection = "stores"
)

// MongoIface interface for database abstraction
type MongoIface interface {
	Collection(name string) *mongo.Collection
	EnsureCollections(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DB wrapper struct
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection implements MongoIface
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// EnsureCollections implements MongoIface. It is idempotent: existing
// collections are left untouched, missing ones are created.
func (db *DB) EnsureCollections(ctx context.Context) error {
	names, err := db.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collection names: %w", err)
	}

	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	for _, name := range []string{UsersCollection, StoresCollection} {
		if existing[name] {
			continue
		}
		if err := db.db.CreateCollection(ctx, name); err != nil {
			// Another process may have created it between list and create
			if isNamespaceExists(err) {
				continue
			}
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}

	return nil
}

// Ping implements MongoIface
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

// Close implements MongoIface
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// InitDB establishes the process-wide database connection
func InitDB(config utils.DatabaseConfig) (MongoIface, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	// Test connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{client: client, db: client.Database(config.Name)}, nil
}

// isNamespaceExists reports whether err is Mongo's NamespaceExists (code 48)
func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 48
	}
	return false
}
