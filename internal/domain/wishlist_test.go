package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceWishlist_AddItem(t *testing.T) {
	state := ReduceWishlist(WishlistState{}, AddWishlistItem{Product: ankaraGown()})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p1", state.Items[0].ID)
}

func TestReduceWishlist_AddDuplicateIsNoOp(t *testing.T) {
	state := WishlistState{}
	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})
	assert.True(t, state.Contains("p1"))

	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})

	assert.Len(t, state.Items, 1)
	assert.True(t, state.Contains("p1"))
}

func TestReduceWishlist_DedupIgnoresSize(t *testing.T) {
	sized := ankaraGown()
	sized.Size = "M"

	state := WishlistState{}
	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})
	state = ReduceWishlist(state, AddWishlistItem{Product: sized})

	// Wishlist identity is the product ID alone.
	assert.Len(t, state.Items, 1)
}

func TestReduceWishlist_PreservesInsertionOrder(t *testing.T) {
	state := WishlistState{}
	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})
	state = ReduceWishlist(state, AddWishlistItem{Product: asoOkeGele()})

	require.Len(t, state.Items, 2)
	assert.Equal(t, "p1", state.Items[0].ID)
	assert.Equal(t, "p2", state.Items[1].ID)
}

func TestReduceWishlist_RemoveItem(t *testing.T) {
	state := WishlistState{}
	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})
	state = ReduceWishlist(state, RemoveWishlistItem{ProductID: "p1"})

	assert.Empty(t, state.Items)
	assert.False(t, state.Contains("p1"))
}

func TestReduceWishlist_RemoveUnknownIsNoOp(t *testing.T) {
	state := WishlistState{}
	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})
	state = ReduceWishlist(state, RemoveWishlistItem{ProductID: "ghost"})

	assert.Len(t, state.Items, 1)
}

func TestReduceWishlist_Clear(t *testing.T) {
	state := WishlistState{}
	state = ReduceWishlist(state, AddWishlistItem{Product: ankaraGown()})
	state = ReduceWishlist(state, AddWishlistItem{Product: asoOkeGele()})
	state = ReduceWishlist(state, ClearWishlist{})

	assert.Empty(t, state.Items)
}

func TestReduceWishlist_SetState(t *testing.T) {
	replacement := WishlistState{Items: []Product{asoOkeGele()}}

	state := WishlistState{Items: []Product{ankaraGown()}}
	state = ReduceWishlist(state, SetWishlistState{State: replacement})

	assert.Equal(t, replacement, state)
}

func TestReduceWishlist_AddDoesNotMutateInput(t *testing.T) {
	orig := WishlistState{Items: []Product{ankaraGown()}}
	next := ReduceWishlist(orig, AddWishlistItem{Product: asoOkeGele()})

	assert.Len(t, orig.Items, 1)
	assert.Len(t, next.Items, 2)
}
