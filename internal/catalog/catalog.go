package catalog

import (
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/domain"
	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
)

// Provider serves the read-only reference catalog: products, categories, and
// historical orders. Data is seeded once at construction and indexed by ID
// and slug; callers receive copies and cannot mutate the catalog.
type Provider struct {
	products   []domain.Product
	categories []domain.Category
	orders     []domain.Order

	productsByID   map[string]int
	productsBySlug map[string]int
	ordersByID     map[string]int
}

// NewProvider builds a provider over the built-in seed catalog.
func NewProvider() *Provider {
	return newProvider(seedProducts(), seedCategories(), seedOrders())
}

func newProvider(products []domain.Product, categories []domain.Category, orders []domain.Order) *Provider {
	p := &Provider{
		products:       products,
		categories:     categories,
		orders:         orders,
		productsByID:   make(map[string]int, len(products)),
		productsBySlug: make(map[string]int, len(products)),
		ordersByID:     make(map[string]int, len(orders)),
	}
	for i, prod := range products {
		p.productsByID[prod.ID] = i
		p.productsBySlug[prod.Slug] = i
	}
	for i, o := range orders {
		p.ordersByID[o.ID] = i
	}
	return p
}

// Products returns all products, optionally filtered by category key.
func (p *Provider) Products(category string) []domain.Product {
	if category == "" {
		out := make([]domain.Product, len(p.products))
		copy(out, p.products)
		return out
	}

	out := make([]domain.Product, 0, len(p.products))
	for _, prod := range p.products {
		if prod.Category == category {
			out = append(out, prod)
		}
	}
	return out
}

// ProductByID looks up a product by its identifier.
func (p *Provider) ProductByID(id string) (domain.Product, error) {
	i, ok := p.productsByID[id]
	if !ok {
		return domain.Product{}, apperrors.NotFound("product", id)
	}
	return p.products[i], nil
}

// ProductBySlug looks up a product by its URL slug.
func (p *Provider) ProductBySlug(slug string) (domain.Product, error) {
	i, ok := p.productsBySlug[slug]
	if !ok {
		return domain.Product{}, apperrors.NotFound("product", slug)
	}
	return p.products[i], nil
}

// Categories returns all categories.
func (p *Provider) Categories() []domain.Category {
	out := make([]domain.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// Orders returns all historical orders.
func (p *Provider) Orders() []domain.Order {
	out := make([]domain.Order, len(p.orders))
	copy(out, p.orders)
	return out
}

// OrderByID looks up a historical order by its identifier.
func (p *Provider) OrderByID(id string) (domain.Order, error) {
	i, ok := p.ordersByID[id]
	if !ok {
		return domain.Order{}, apperrors.NotFound("order", id)
	}
	return p.orders[i], nil
}
