package intake

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fjod/stylevault/internal/domain"
	"github.com/fjod/stylevault/internal/metrics"
)

type mockRepository struct {
	mu     sync.Mutex
	orders []domain.Order
	err    error
}

func (m *mockRepository) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	order.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	m.orders = append([]domain.Order{*order}, m.orders...)
	return order, nil
}

func (m *mockRepository) RecentOrders(_ context.Context, limit int64) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if int64(len(m.orders)) > limit {
		return m.orders[:limit], nil
	}
	return m.orders, nil
}

func newTestService(repo *mockRepository) *Service {
	return NewService(repo, metrics.New(prometheus.NewRegistry()))
}

func validSubmission() map[string]any {
	return map[string]any{
		"orderItems": []any{
			map[string]any{
				"id":       "p1",
				"name":     "Shirt",
				"price":    20.0,
				"imageUrl": "http://x/i.png",
				"quantity": 2.0,
			},
		},
		"shippingInfo": map[string]any{
			"name":       "A",
			"address":    "1 Main St",
			"city":       "C",
			"postalCode": "0",
			"country":    "US",
		},
		"paymentMethod": "Credit Card",
		"totalPrice":    47.99,
	}
}

func TestCreateOrder_PersistsItemsUnchangedInOrder(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	body := validSubmission()
	body["orderItems"] = []any{
		map[string]any{"id": "p1", "name": "Shirt", "price": 20.0, "imageUrl": "http://x/1.png", "quantity": 2.0},
		map[string]any{"id": "p2", "name": "Belt", "price": 34.99, "imageUrl": "http://x/2.png", "quantity": 1.0},
		map[string]any{"id": "p3", "name": "Beanie", "price": 24.99, "imageUrl": "http://x/3.png", "quantity": 3.0},
	}

	saved, err := svc.CreateOrder(context.Background(), body)
	require.NoError(t, err)

	require.Len(t, saved.OrderItems, 3)
	assert.Equal(t, "p1", saved.OrderItems[0].ID)
	assert.Equal(t, "p2", saved.OrderItems[1].ID)
	assert.Equal(t, "p3", saved.OrderItems[2].ID)
	assert.False(t, saved.ID.IsZero())
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.UpdatedAt.IsZero())
	assert.Equal(t, 47.99, saved.TotalPrice)
	assert.Equal(t, domain.OrderItem{
		ID: "p1", Name: "Shirt", Price: 20, ImageURL: "http://x/1.png", Quantity: 2,
	}, saved.OrderItems[0])
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	svc := newTestService(&mockRepository{})

	body := validSubmission()
	body["orderItems"] = []any{}

	_, err := svc.CreateOrder(context.Background(), body)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "orderItems must be a non-empty array", verr.Message)
}

func TestCreateOrder_MissingItemsRejected(t *testing.T) {
	svc := newTestService(&mockRepository{})

	body := validSubmission()
	delete(body, "orderItems")

	_, err := svc.CreateOrder(context.Background(), body)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "orderItems must be a non-empty array", verr.Message)
}

func TestCreateOrder_IncompleteShippingRejected(t *testing.T) {
	for _, missing := range []string{"name", "address"} {
		t.Run("missing "+missing, func(t *testing.T) {
			svc := newTestService(&mockRepository{})

			body := validSubmission()
			shipping := body["shippingInfo"].(map[string]any)
			delete(shipping, missing)

			_, err := svc.CreateOrder(context.Background(), body)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Incomplete shippingInfo", verr.Message)
		})
	}
}

func TestCreateOrder_NonScalarShippingFieldRejected(t *testing.T) {
	for field, value := range map[string]any{
		"name":    map[string]any{"first": "A", "last": "B"},
		"address": []any{"1 Main St"},
	} {
		t.Run(field, func(t *testing.T) {
			repo := &mockRepository{}
			svc := newTestService(repo)

			body := validSubmission()
			shipping := body["shippingInfo"].(map[string]any)
			shipping[field] = value

			_, err := svc.CreateOrder(context.Background(), body)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Incomplete shippingInfo", verr.Message)
			assert.Empty(t, repo.orders)
		})
	}
}

func TestCreateOrder_BadTotalPriceRejected(t *testing.T) {
	for name, total := range map[string]any{
		"non-numeric string": "not-a-price",
		"missing":            nil,
		"infinite":           math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(&mockRepository{})

			body := validSubmission()
			if total == nil {
				delete(body, "totalPrice")
			} else {
				body["totalPrice"] = total
			}

			_, err := svc.CreateOrder(context.Background(), body)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "totalPrice must be a number", verr.Message)
		})
	}
}

// Validation is fail-fast and ordered: an empty item list wins over a
// bad total and missing shipping.
func TestCreateOrder_ValidationPrecedence(t *testing.T) {
	svc := newTestService(&mockRepository{})

	body := map[string]any{
		"orderItems": []any{},
		"totalPrice": "garbage",
	}

	_, err := svc.CreateOrder(context.Background(), body)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "orderItems must be a non-empty array", verr.Message)

	// Items valid, shipping missing, total bad: shipping wins.
	body = validSubmission()
	delete(body, "shippingInfo")
	body["totalPrice"] = "garbage"

	_, err = svc.CreateOrder(context.Background(), body)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Incomplete shippingInfo", verr.Message)
}

func TestCreateOrder_AliasCommutativity(t *testing.T) {
	canonical := validSubmission()

	aliased := map[string]any{
		"items":    canonical["orderItems"],
		"total":    canonical["totalPrice"],
		"shipping": canonical["shippingInfo"],
		"payment":  canonical["paymentMethod"],
	}

	repoA := &mockRepository{}
	savedA, err := newTestService(repoA).CreateOrder(context.Background(), canonical)
	require.NoError(t, err)

	repoB := &mockRepository{}
	savedB, err := newTestService(repoB).CreateOrder(context.Background(), aliased)
	require.NoError(t, err)

	assert.Equal(t, savedA.OrderItems, savedB.OrderItems)
	assert.Equal(t, savedA.TotalPrice, savedB.TotalPrice)
	assert.Equal(t, savedA.ShippingInfo, savedB.ShippingInfo)
	assert.Equal(t, savedA.PaymentMethod, savedB.PaymentMethod)
}

func TestCreateOrder_ItemFallbacksAndDefaults(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	body := validSubmission()
	body["orderItems"] = []any{
		map[string]any{
			"_id":       "abc",
			"title":     "Fallback Shirt",
			"thumbnail": "http://x/t.png",
			"qty":       4.0,
			"price":     "15.5",
		},
	}

	saved, err := svc.CreateOrder(context.Background(), body)
	require.NoError(t, err)

	it := saved.OrderItems[0]
	assert.Equal(t, "abc", it.ID)
	assert.Equal(t, "Fallback Shirt", it.Name)
	assert.Equal(t, 15.5, it.Price)
	assert.Equal(t, "http://x/t.png", it.ImageURL)
	assert.Equal(t, 4.0, it.Quantity)
}

func TestCreateOrder_ItemDefaultsApplied(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	body := validSubmission()
	body["orderItems"] = []any{
		map[string]any{"id": "p1"},
	}

	saved, err := svc.CreateOrder(context.Background(), body)
	require.NoError(t, err)

	it := saved.OrderItems[0]
	assert.Equal(t, "Unknown", it.Name)
	assert.Equal(t, 0.0, it.Price)
	assert.Equal(t, "https://via.placeholder.com/150", it.ImageURL)
	assert.Equal(t, 1.0, it.Quantity)
}

// An item with no id source at all still fails after defaulting; the
// whole order is rejected, never a subset.
func TestCreateOrder_ItemMissingIDRejectsWholeOrder(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	body := validSubmission()
	body["orderItems"] = []any{
		map[string]any{"id": "p1", "name": "Ok", "price": 5.0, "imageUrl": "http://x/a.png", "quantity": 1.0},
		map[string]any{"name": "No ID", "price": 5.0, "imageUrl": "http://x/b.png", "quantity": 1.0},
	}

	_, err := svc.CreateOrder(context.Background(), body)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Each order item must include id, name, imageUrl, price and quantity", verr.Message)
	assert.Empty(t, repo.orders)
}

func TestCreateOrder_NonNumericItemPriceRejected(t *testing.T) {
	svc := newTestService(&mockRepository{})

	body := validSubmission()
	body["orderItems"] = []any{
		map[string]any{"id": "p1", "name": "Shirt", "price": "free", "imageUrl": "http://x/a.png", "quantity": 1.0},
	}

	_, err := svc.CreateOrder(context.Background(), body)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Each order item must include id, name, imageUrl, price and quantity", verr.Message)
}

func TestCreateOrder_PaymentMethodDefaultsToUnknown(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	body := validSubmission()
	delete(body, "paymentMethod")

	saved, err := svc.CreateOrder(context.Background(), body)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", saved.PaymentMethod)
}

func TestCreateOrder_RepositoryFailureIsNotValidation(t *testing.T) {
	repo := &mockRepository{err: errors.New("store unavailable")}
	svc := newTestService(repo)

	_, err := svc.CreateOrder(context.Background(), validSubmission())

	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestRecentOrders_NewestFirstAfterCreate(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	first, err := svc.CreateOrder(context.Background(), validSubmission())
	require.NoError(t, err)

	second, err := svc.CreateOrder(context.Background(), validSubmission())
	require.NoError(t, err)

	recent, err := svc.RecentOrders(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)
	assert.Equal(t, first.ID, recent[1].ID)
}
