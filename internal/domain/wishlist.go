package domain

// WishlistState is the ordered collection of saved products, oldest first,
// deduplicated by product ID alone (size is not part of wishlist identity).
type WishlistState struct {
	Items []Product `json:"items"`
}

// Contains reports whether a product with the given ID is saved.
func (s WishlistState) Contains(productID string) bool {
	for _, item := range s.Items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// WishlistAction is the closed set of transitions a wishlist state accepts.
type WishlistAction interface {
	isWishlistAction()
}

// AddWishlistItem appends the product unless one with the same ID is already
// saved, in which case the state is unchanged.
type AddWishlistItem struct {
	Product Product
}

// RemoveWishlistItem deletes the matching product; unknown IDs are ignored.
type RemoveWishlistItem struct {
	ProductID string
}

// ClearWishlist empties the collection.
type ClearWishlist struct{}

// SetWishlistState replaces the whole state, used when hydrating from storage.
type SetWishlistState struct {
	State WishlistState
}

func (AddWishlistItem) isWishlistAction()    {}
func (RemoveWishlistItem) isWishlistAction() {}
func (ClearWishlist) isWishlistAction()      {}
func (SetWishlistState) isWishlistAction()   {}

// ReduceWishlist is the pure transition function for the wishlist.
func ReduceWishlist(state WishlistState, action WishlistAction) WishlistState {
	switch a := action.(type) {
	case AddWishlistItem:
		if state.Contains(a.Product.ID) {
			return state
		}
		items := make([]Product, len(state.Items), len(state.Items)+1)
		copy(items, state.Items)
		return WishlistState{Items: append(items, a.Product)}

	case RemoveWishlistItem:
		items := make([]Product, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != a.ProductID {
				items = append(items, item)
			}
		}
		return WishlistState{Items: items}

	case ClearWishlist:
		return WishlistState{Items: []Product{}}

	case SetWishlistState:
		return a.State

	default:
		return state
	}
}
