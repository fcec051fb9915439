package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fjod/stylevault/internal/cart"
	"github.com/fjod/stylevault/internal/domain"
	"github.com/rs/zerolog/log"
)

// PaymentMethods is the fixed set of accepted payment methods; the
// first entry is the default. Payment is simulated, nothing is charged.
var PaymentMethods = []string{
	"Credit Card (Simulated)",
	"PayPal (Simulated)",
	"Google Pay (Simulated)",
}

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to submit")
	ErrSubmitInFlight = errors.New("an order submission is already in flight")
)

// fallbackErrorMessage is shown when a rejection response carries no
// parseable message.
const fallbackErrorMessage = "Failed to place the order. Please try again."

const defaultSubmitTimeout = 15 * time.Second

// IncompleteShippingError names the first shipping field that blocked
// submission.
type IncompleteShippingError struct {
	Field string
}

func (e *IncompleteShippingError) Error() string {
	return fmt.Sprintf("shipping field %q is required", e.Field)
}

// RejectedError is a rejection the server sent back for this
// submission. The cart is left untouched so the caller can correct the
// input and resubmit.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("order rejected (%d): %s", e.Status, e.Message)
}

// Composer gathers cart contents and shipping details and submits a
// single order-creation request. At most one submission is in flight
// at a time; the cart is cleared only after the server confirms
// success.
type Composer struct {
	client   *http.Client
	endpoint string
	cart     *cart.Cart

	submitting atomic.Bool

	mu           sync.Mutex
	confirmation *domain.Order
}

// NewComposer builds a composer posting to baseURL/api/orders. A nil
// client gets a bounded-timeout default; a submission that outlives the
// timeout surfaces as a transport error, never as a validation error.
func NewComposer(client *http.Client, baseURL string, c *cart.Cart) *Composer {
	if client == nil {
		client = &http.Client{Timeout: defaultSubmitTimeout}
	}
	return &Composer{
		client:   client,
		endpoint: strings.TrimRight(baseURL, "/") + "/api/orders",
		cart:     c,
	}
}

// InFlight reports whether a submission is currently outstanding.
// Callers use it to disable the submit action.
func (c *Composer) InFlight() bool {
	return c.submitting.Load()
}

// LastConfirmation returns the persisted order from the most recent
// successful submission. It is the single source the confirmation view
// reads from.
func (c *Composer) LastConfirmation() *domain.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmation
}

// Submit validates the shipping form, builds the order payload from
// the cart, and posts it. Re-entry while a submission is in flight is
// refused with ErrSubmitInFlight.
func (c *Composer) Submit(ctx context.Context, shipping domain.ShippingInfo, paymentMethod string) (*domain.Order, error) {
	if !c.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer c.submitting.Store(false)

	if err := validateShipping(shipping); err != nil {
		return nil, err
	}

	method, err := resolvePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	payload := orderSubmission{
		OrderItems:    make([]submissionItem, 0, len(items)),
		ShippingInfo:  shipping,
		PaymentMethod: method,
		TotalPrice:    c.cart.Total(),
	}
	for _, it := range items {
		payload.OrderItems = append(payload.OrderItems, submissionItem{
			ID:       it.ProductID,
			Name:     it.Name,
			Price:    it.UnitPrice,
			ImageURL: it.ImageURL,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
		})
	}

	order, err := c.post(ctx, payload)
	if err != nil {
		// Cart stays intact on any failure; only a confirmed success
		// may clear it.
		return nil, err
	}

	c.cart.Clear()

	c.mu.Lock()
	c.confirmation = order
	c.mu.Unlock()

	log.Info().Str("order_id", order.ID.Hex()).Float64("total_price", order.TotalPrice).Msg("order placed")

	return order, nil
}

func (c *Composer) post(ctx context.Context, payload orderSubmission) (*domain.Order, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RejectedError{
			Status:  resp.StatusCode,
			Message: parseErrorMessage(resp.Body),
		}
	}

	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order confirmation: %w", err)
	}

	return &order, nil
}

type submissionItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
}

type orderSubmission struct {
	OrderItems    []submissionItem    `json:"orderItems"`
	ShippingInfo  domain.ShippingInfo `json:"shippingInfo"`
	PaymentMethod string              `json:"paymentMethod"`
	TotalPrice    float64             `json:"totalPrice"`
}

// validateShipping requires all five shipping fields before anything
// leaves the client.
func validateShipping(s domain.ShippingInfo) error {
	checks := []struct {
		field string
		value string
	}{
		{"name", s.Name},
		{"address", s.Address},
		{"city", s.City},
		{"postalCode", s.PostalCode},
		{"country", s.Country},
	}

	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return &IncompleteShippingError{Field: c.field}
		}
	}
	return nil
}

func resolvePaymentMethod(method string) (string, error) {
	if method == "" {
		return PaymentMethods[0], nil
	}
	for _, m := range PaymentMethods {
		if m == method {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", method)
}

// parseErrorMessage extracts the structured message from a rejection
// body, falling back to a generic message when there is none.
func parseErrorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Message == "" {
		return fallbackErrorMessage
	}
	return body.Message
}
