package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/domain"
	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
)

func TestProviderProducts(t *testing.T) {
	p := NewProvider()

	all := p.Products("")
	require.NotEmpty(t, all)

	for _, prod := range all {
		assert.NotEmpty(t, prod.ID)
		assert.NotEmpty(t, prod.Slug)
		assert.Greater(t, prod.Price, int64(0))
	}
}

func TestProviderProductsFilterByCategory(t *testing.T) {
	p := NewProvider()

	men := p.Products("men")
	require.NotEmpty(t, men)
	for _, prod := range men {
		assert.Equal(t, "men", prod.Category)
	}

	assert.Empty(t, p.Products("no-such-category"))
}

func TestProviderProductByID(t *testing.T) {
	p := NewProvider()

	prod, err := p.ProductByID("prod-001")
	require.NoError(t, err)
	assert.Equal(t, "Ankara Flare Gown", prod.Name)

	_, err = p.ProductByID("prod-999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProviderProductBySlug(t *testing.T) {
	p := NewProvider()

	prod, err := p.ProductBySlug("buba-iro-set")
	require.NoError(t, err)
	assert.Equal(t, "prod-008", prod.ID)

	_, err = p.ProductBySlug("missing-slug")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProviderCategories(t *testing.T) {
	p := NewProvider()

	cats := p.Categories()
	require.NotEmpty(t, cats)

	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		assert.False(t, seen[c.ID], "duplicate category %s", c.ID)
		seen[c.ID] = true
	}
}

func TestProviderOrders(t *testing.T) {
	p := NewProvider()

	orders := p.Orders()
	require.NotEmpty(t, orders)

	order, err := p.OrderByID("ORD-2025-1042")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	require.Len(t, order.Items, 2)

	var total int64
	for _, it := range order.Items {
		total += it.Price * int64(it.Quantity)
	}
	assert.Equal(t, order.Total, total)

	_, err = p.OrderByID("ORD-0000-0000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProviderReturnsCopies(t *testing.T) {
	p := NewProvider()

	first := p.Products("")
	first[0].Name = "mutated"

	again := p.Products("")
	assert.NotEqual(t, "mutated", again[0].Name)
}
