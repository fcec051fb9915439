package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is the canonical per-item shape stored with an order.
// Incoming payloads are mapped into it by the intake pipeline.
type OrderItem struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	ImageURL string  `bson:"image_url" json:"imageUrl"`
	Quantity float64 `bson:"quantity" json:"quantity"`
}

type ShippingInfo struct {
	Name       string `bson:"name" json:"name"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode string `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// Order is the persisted record. Orders are created exactly once and
// never updated or cancelled afterwards.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderItems    []OrderItem        `bson:"order_items" json:"orderItems"`
	TotalPrice    float64            `bson:"total_price" json:"totalPrice"`
	ShippingInfo  ShippingInfo       `bson:"shipping_info" json:"shippingInfo"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
