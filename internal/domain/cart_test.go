package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ankaraGown() Product {
	return Product{
		ID:       "p1",
		Name:     "Ankara Gown",
		Slug:     "ankara-gown",
		Price:    1000,
		Category: "gowns",
		Stock:    10,
	}
}

func asoOkeGele() Product {
	return Product{
		ID:       "p2",
		Name:     "Aso Oke Gele",
		Slug:     "aso-oke-gele",
		Price:    550,
		Category: "accessories",
		Stock:    25,
	}
}

// ============================================================================
// LineKey Tests
// ============================================================================

func TestLineKey_NoSizeIsDistinctFromSized(t *testing.T) {
	assert.NotEqual(t, LineKey("p1", ""), LineKey("p1", "M"))
	assert.Equal(t, LineKey("p1", "M"), LineKey("p1", "M"))
}

func TestLineKey_OnCartItem(t *testing.T) {
	p := ankaraGown()
	p.Size = "L"
	item := CartItem{Product: p, Quantity: 1}
	assert.Equal(t, LineKey("p1", "L"), item.LineKey())
}

// ============================================================================
// ReduceCart: AddCartItem
// ============================================================================

func TestReduceCart_AddNewItem(t *testing.T) {
	state := ReduceCart(CartState{}, AddCartItem{Product: ankaraGown(), Quantity: 2})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p1", state.Items[0].ID)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestReduceCart_AddMergesQuantitiesOnSameLine(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 2})
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 4})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 7, state.Items[0].Quantity)
}

func TestReduceCart_AddDifferentSizesAreSeparateLines(t *testing.T) {
	small := ankaraGown()
	small.Size = "S"
	large := ankaraGown()
	large.Size = "L"

	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: small, Quantity: 1})
	state = ReduceCart(state, AddCartItem{Product: large, Quantity: 1})

	require.Len(t, state.Items, 2)
	assert.Equal(t, "S", state.Items[0].Size)
	assert.Equal(t, "L", state.Items[1].Size)
}

func TestReduceCart_AddPreservesInsertionOrder(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, AddCartItem{Product: asoOkeGele(), Quantity: 1})
	// Merging into the first line must not move it to the end.
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})

	require.Len(t, state.Items, 2)
	assert.Equal(t, "p1", state.Items[0].ID)
	assert.Equal(t, "p2", state.Items[1].ID)
}

func TestReduceCart_AddNonPositiveQuantityIsNoOp(t *testing.T) {
	state := ReduceCart(CartState{}, AddCartItem{Product: ankaraGown(), Quantity: 0})
	assert.Empty(t, state.Items)

	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: -3})
	assert.Empty(t, state.Items)
}

func TestReduceCart_AddDoesNotMutateInput(t *testing.T) {
	orig := CartState{Items: []CartItem{{Product: ankaraGown(), Quantity: 1}}}
	_ = ReduceCart(orig, AddCartItem{Product: ankaraGown(), Quantity: 5})

	assert.Equal(t, 1, orig.Items[0].Quantity)
}

// ============================================================================
// ReduceCart: RemoveCartItem
// ============================================================================

func TestReduceCart_RemoveExistingLine(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, RemoveCartItem{LineKey: LineKey("p1", "")})

	assert.Empty(t, state.Items)
}

func TestReduceCart_RemoveIsIdempotent(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, RemoveCartItem{LineKey: LineKey("p1", "")})
	state = ReduceCart(state, RemoveCartItem{LineKey: LineKey("p1", "")})

	assert.Empty(t, state.Items)
}

func TestReduceCart_RemoveUnknownKeyIsNoOp(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, RemoveCartItem{LineKey: LineKey("nope", "")})

	assert.Len(t, state.Items, 1)
}

// ============================================================================
// ReduceCart: UpdateCartQuantity
// ============================================================================

func TestReduceCart_UpdateQuantitySetsValue(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, UpdateCartQuantity{LineKey: LineKey("p1", ""), Quantity: 5})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestReduceCart_UpdateQuantityToZeroRemovesLine(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 3})
	state = ReduceCart(state, UpdateCartQuantity{LineKey: LineKey("p1", ""), Quantity: 0})

	assert.Empty(t, state.Items)
	assert.Equal(t, -1, state.FindLine(LineKey("p1", "")))
}

func TestReduceCart_UpdateQuantityClampsNegativeToRemoval(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 3})
	state = ReduceCart(state, UpdateCartQuantity{LineKey: LineKey("p1", ""), Quantity: -7})

	assert.Empty(t, state.Items)
}

func TestReduceCart_UpdateQuantityUnknownKeyIsNoOp(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 3})
	state = ReduceCart(state, UpdateCartQuantity{LineKey: LineKey("ghost", ""), Quantity: 9})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
}

// ============================================================================
// ReduceCart: ClearCart / SetCartState
// ============================================================================

func TestReduceCart_Clear(t *testing.T) {
	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: ankaraGown(), Quantity: 1})
	state = ReduceCart(state, AddCartItem{Product: asoOkeGele(), Quantity: 2})
	state = ReduceCart(state, ClearCart{})

	assert.Empty(t, state.Items)
}

func TestReduceCart_SetStateReplacesEverything(t *testing.T) {
	replacement := CartState{Items: []CartItem{{Product: asoOkeGele(), Quantity: 4}}}

	state := CartState{Items: []CartItem{{Product: ankaraGown(), Quantity: 1}}}
	state = ReduceCart(state, SetCartState{State: replacement})

	assert.Equal(t, replacement, state)
}

// ============================================================================
// Derived values
// ============================================================================

func TestSubtotal(t *testing.T) {
	state := CartState{Items: []CartItem{
		{Product: Product{ID: "a", Price: 2000}, Quantity: 2},
		{Product: Product{ID: "b", Price: 550}, Quantity: 3},
	}}
	// 2000*2 + 550*3 = 5650
	assert.Equal(t, int64(5650), state.Subtotal())
}

func TestSubtotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), CartState{}.Subtotal())
}

func TestTotalItems(t *testing.T) {
	state := CartState{Items: []CartItem{
		{Product: Product{ID: "a"}, Quantity: 2},
		{Product: Product{ID: "b"}, Quantity: 3},
	}}
	assert.Equal(t, 5, state.TotalItems())
}

func TestTotalItems_Empty(t *testing.T) {
	assert.Equal(t, 0, CartState{}.TotalItems())
}

// ============================================================================
// Scenario from the storefront flows
// ============================================================================

func TestCartScenario_AccumulateThenRemoveViaZero(t *testing.T) {
	p := Product{ID: "p1", Name: "Dashiki", Price: 1000}

	state := CartState{}
	state = ReduceCart(state, AddCartItem{Product: p, Quantity: 1})
	state = ReduceCart(state, AddCartItem{Product: p, Quantity: 2})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, int64(3000), state.Subtotal())

	state = ReduceCart(state, UpdateCartQuantity{LineKey: LineKey("p1", ""), Quantity: 0})

	assert.Empty(t, state.Items)
	assert.Equal(t, int64(0), state.Subtotal())
}
