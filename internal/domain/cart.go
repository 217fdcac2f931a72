package domain

// CartItem is a product line the shopper intends to purchase. Two lines are
// the same line iff their product ID and size variant both match; "no size"
// counts as a distinct variant value.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineKey returns the identity key of this cart line.
func (i CartItem) LineKey() string {
	return LineKey(i.ID, i.Size)
}

// LineKey builds the composite identity key for a cart line from a product ID
// and an optional size variant. An empty size still contributes to the key so
// that sized and unsized lines of the same product stay distinct.
func LineKey(productID, size string) string {
	return productID + "|" + size
}

// CartState is the ordered collection of cart lines, oldest line first,
// unique by line key.
type CartState struct {
	Items []CartItem `json:"items"`
}

// Subtotal computes the sum of price times quantity over all lines, in kobo.
// It is recomputed on every call, never cached.
func (s CartState) Subtotal() int64 {
	var total int64
	for _, item := range s.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// TotalItems computes the sum of quantities over all lines.
func (s CartState) TotalItems() int {
	var count int
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// FindLine returns the index of the line with the given key, or -1.
func (s CartState) FindLine(lineKey string) int {
	for i := range s.Items {
		if s.Items[i].LineKey() == lineKey {
			return i
		}
	}
	return -1
}

// CartAction is the closed set of transitions a cart state accepts.
type CartAction interface {
	isCartAction()
}

// AddCartItem merges Quantity into an existing line with the same line key,
// or appends a new line at the end. Non-positive quantities leave the state
// unchanged.
type AddCartItem struct {
	Product  Product
	Quantity int
}

// RemoveCartItem deletes the line with the given key; unknown keys are ignored.
type RemoveCartItem struct {
	LineKey string
}

// UpdateCartQuantity sets the line's quantity to max(0, Quantity); a result of
// zero removes the line. Unknown keys are ignored.
type UpdateCartQuantity struct {
	LineKey  string
	Quantity int
}

// ClearCart empties the collection.
type ClearCart struct{}

// SetCartState replaces the whole state, used when hydrating from storage.
type SetCartState struct {
	State CartState
}

func (AddCartItem) isCartAction()        {}
func (RemoveCartItem) isCartAction()     {}
func (UpdateCartQuantity) isCartAction() {}
func (ClearCart) isCartAction()          {}
func (SetCartState) isCartAction()       {}

// ReduceCart is the pure transition function for the cart: it maps the current
// state and an action to the next state without mutating its input.
func ReduceCart(state CartState, action CartAction) CartState {
	switch a := action.(type) {
	case AddCartItem:
		if a.Quantity <= 0 {
			return state
		}
		items := cloneCartItems(state.Items)
		key := LineKey(a.Product.ID, a.Product.Size)
		for i := range items {
			if items[i].LineKey() == key {
				items[i].Quantity += a.Quantity
				return CartState{Items: items}
			}
		}
		items = append(items, CartItem{Product: a.Product, Quantity: a.Quantity})
		return CartState{Items: items}

	case RemoveCartItem:
		items := make([]CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.LineKey() != a.LineKey {
				items = append(items, item)
			}
		}
		return CartState{Items: items}

	case UpdateCartQuantity:
		qty := max(0, a.Quantity)
		items := make([]CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.LineKey() == a.LineKey {
				item.Quantity = qty
			}
			// A quantity driven to zero removes the line, it is never retained.
			if item.Quantity > 0 {
				items = append(items, item)
			}
		}
		return CartState{Items: items}

	case ClearCart:
		return CartState{Items: []CartItem{}}

	case SetCartState:
		return a.State

	default:
		return state
	}
}

func cloneCartItems(items []CartItem) []CartItem {
	cloned := make([]CartItem, len(items))
	copy(cloned, items)
	return cloned
}
