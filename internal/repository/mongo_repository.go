package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fjod/stylevault/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ordersCollection = "orders"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) OrderRepository {
	return &mongoRepository{collection: db.Collection(ordersCollection)}
}

// CreateOrder inserts the order and returns it with the identifier and
// timestamps assigned by the store.
func (m *mongoRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return order, nil
}

// RecentOrders returns up to limit orders, most recently created first.
func (m *mongoRepository) RecentOrders(ctx context.Context, limit int64) ([]domain.Order, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]domain.Order, 0, limit)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode recent orders: %w", err)
	}

	return orders, nil
}

// EnsureIndexes creates the indexes the order queries rely on. It is
// idempotent and meant to run once at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}

	if _, err := db.Collection(ordersCollection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create orders index: %w", err)
	}

	return nil
}
