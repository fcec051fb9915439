package catalog

import (
	"sort"
	"strings"
)

// AllProducts is the category filter value that matches everything.
const AllProducts = "All Products"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Rating      float64
	Sizes       []string
	Colors      []string
}

type Sort string

const (
	SortDefault    Sort = "default"
	SortPriceAsc   Sort = "price-asc"
	SortPriceDesc  Sort = "price-desc"
	SortNameAsc    Sort = "name-asc"
	SortRatingDesc Sort = "rating-desc"
)

// Query narrows and orders the catalog listing. The zero value returns
// every product in catalog order.
type Query struct {
	Category string
	Search   string
	Sort     Sort
}

// Catalog is a read-only ordered sequence of products, loaded once at
// startup.
type Catalog struct {
	products []Product
}

func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the catalog backed by the built-in product data.
func Default() *Catalog {
	return New(products)
}

// Products applies the category filter, the search query and the sort
// order, in that sequence.
func (c *Catalog) Products(q Query) []Product {
	out := make([]Product, 0, len(c.products))

	for _, p := range c.products {
		if q.Category != "" && q.Category != AllProducts && p.Category != q.Category {
			continue
		}
		if q.Search != "" && !matchesSearch(p, q.Search) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		// catalog order
	}

	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories lists "All Products" followed by each distinct category
// in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	out := []string{AllProducts}

	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func matchesSearch(p Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
