package intake

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjod/stylevault/internal/domain"
	"github.com/fjod/stylevault/internal/metrics"
	"github.com/fjod/stylevault/internal/repository"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"
)

const placeholderImageURL = "https://via.placeholder.com/150"

const defaultPaymentMethod = "Unknown"

// Service normalizes, validates and persists order submissions. Each
// request is processed independently; the repository is the only
// shared resource.
type Service struct {
	repo repository.OrderRepository
	met  *metrics.Metrics
	sfg  singleflight.Group // coalesces concurrent recent-order reads
}

func NewService(repo repository.OrderRepository, met *metrics.Metrics) *Service {
	return &Service{repo: repo, met: met}
}

// CreateOrder runs the intake pipeline over a decoded request body:
// alias normalization, structural validation, item mapping, post-map
// validation, persistence. Validation short-circuits at the first
// violation and nothing is persisted.
func (s *Service) CreateOrder(ctx context.Context, raw map[string]any) (*domain.Order, error) {
	body := normalizeFields(raw)

	rawItems, ok := body["orderItems"].([]any)
	if !ok || len(rawItems) == 0 {
		return nil, s.reject(MsgEmptyOrderItems)
	}

	shipping, ok := body["shippingInfo"].(map[string]any)
	if !ok || !textual(shipping["name"]) || !textual(shipping["address"]) {
		return nil, s.reject(MsgIncompleteShipping)
	}

	totalPrice := toNumber(body["totalPrice"])
	if !isFinite(totalPrice) {
		return nil, s.reject(MsgBadTotalPrice)
	}

	items := make([]domain.OrderItem, 0, len(rawItems))
	for _, ri := range rawItems {
		m, _ := ri.(map[string]any)
		items = append(items, mapOrderItem(m))
	}

	for _, it := range items {
		if it.ID == "" || it.Name == "" || it.ImageURL == "" || !isFinite(it.Price) || !isFinite(it.Quantity) {
			return nil, s.reject(MsgBadOrderItem)
		}
	}

	paymentMethod := toString(body["paymentMethod"])
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	order := &domain.Order{
		OrderItems:    items,
		TotalPrice:    totalPrice,
		ShippingInfo:  mapShippingInfo(shipping),
		PaymentMethod: paymentMethod,
	}

	saved, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if fields, ok := storeValidationFields(err); ok {
			log.Warn().Err(err).Msg("order rejected by store schema validation")
			s.met.OrdersRejected.Inc()
			return nil, &ValidationError{Message: MsgStoreValidation, Fields: fields}
		}
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.met.OrdersCreated.Inc()
	log.Info().
		Str("order_id", saved.ID.Hex()).
		Int("item_count", len(saved.OrderItems)).
		Float64("total_price", saved.TotalPrice).
		Msg("order created")

	return saved, nil
}

// RecentOrders returns the most recently created orders, newest first.
// Concurrent identical reads collapse into one store query.
func (s *Service) RecentOrders(ctx context.Context, limit int64) ([]domain.Order, error) {
	v, err, _ := s.sfg.Do(fmt.Sprintf("recent-%d", limit), func() (any, error) {
		return s.repo.RecentOrders(ctx, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	return v.([]domain.Order), nil
}

func (s *Service) reject(msg string) error {
	s.met.OrdersRejected.Inc()
	log.Warn().Str("reason", msg).Msg("order submission rejected")
	return &ValidationError{Message: msg}
}

// mapOrderItem resolves each canonical field through its fallback
// chain and applies the documented default when every source is
// absent. Mapping is total; the post-map check decides acceptance.
func mapOrderItem(m map[string]any) domain.OrderItem {
	if m == nil {
		m = map[string]any{}
	}

	item := domain.OrderItem{
		Name:     "Unknown",
		ImageURL: placeholderImageURL,
		Quantity: 1,
	}

	if v, ok := firstPresent(m, "id", "_id", "productId"); ok {
		item.ID = toString(v)
	}
	if v, ok := firstPresent(m, "name", "title"); ok {
		item.Name = toString(v)
	}
	if v, ok := firstPresent(m, "price"); ok {
		item.Price = toNumber(v)
	}
	if v, ok := firstPresent(m, "imageUrl", "image", "thumbnail"); ok {
		item.ImageURL = toString(v)
	}
	if v, ok := firstPresent(m, "quantity", "qty"); ok {
		item.Quantity = toNumber(v)
	}

	return item
}

func mapShippingInfo(m map[string]any) domain.ShippingInfo {
	return domain.ShippingInfo{
		Name:       toString(m["name"]),
		Address:    toString(m["address"]),
		City:       toString(m["city"]),
		PostalCode: toString(m["postalCode"]),
		Country:    toString(m["country"]),
	}
}

// storeValidationFields extracts field-level errors when the document
// store rejected the insert on schema constraints (code 121).
func storeValidationFields(err error) (map[string]string, bool) {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return nil, false
	}

	fields := map[string]string{}
	for _, e := range we.WriteErrors {
		if e.Code == 121 { // DocumentValidationFailure
			fields["document"] = e.Message
		}
	}
	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}
