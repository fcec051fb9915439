package cart

import (
	"fmt"
	"sync"
)

// Shipping pricing: a flat surcharge below the free-shipping
// threshold, nothing for an empty cart.
const (
	FlatShippingFee       = 7.99
	FreeShippingThreshold = 100.0
)

// LineItem is one cart line. At most one line exists per composed key;
// adding the same product in the same size and color merges
// quantities.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice float64
	ImageURL  string
	Quantity  int
	Size      string
	Color     string
}

// Key is the uniqueness key for a cart line: product identity plus the
// chosen size and color.
func (li LineItem) Key() string {
	return fmt.Sprintf("%s-%s-%s", li.ProductID, li.Size, li.Color)
}

// Cart holds the in-memory cart contents. Safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line item, merging quantities when a line with the
// same composed key already exists. Quantities below one are lifted to
// one.
func (c *Cart) Add(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := item.Key()
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity sets the quantity for the line with the given key.
// Unknown keys are ignored, quantities below one are lifted to one.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line with the given key, if any.
func (c *Cart) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the total number of units across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity across all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// ShippingCost is zero for an empty cart and above the free-shipping
// threshold, the flat fee otherwise.
func (c *Cart) ShippingCost() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return shippingFor(c.subtotalLocked())
}

// Total is subtotal plus shipping.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := c.subtotalLocked()
	return subtotal + shippingFor(subtotal)
}

func shippingFor(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold || subtotal == 0 {
		return 0
	}
	return FlatShippingFee
}
