package repository

import (
	"context"

	"github.com/fjod/stylevault/internal/domain"
)

// OrderRepository defines the interface for order persistence.
// Consumers define this interface, not the MongoDB implementation.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	RecentOrders(ctx context.Context, limit int64) ([]domain.Order, error)
}
