package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/catalog"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/domain"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/store"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/httputil"
)

// WishlistHandler serves the session wishlist endpoints.
type WishlistHandler struct {
	stores  *store.Manager
	catalog *catalog.Provider
	logger  *slog.Logger
}

// NewWishlistHandler creates a wishlist handler.
func NewWishlistHandler(stores *store.Manager, cat *catalog.Provider, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{stores: stores, catalog: cat, logger: logger}
}

// Routes mounts the wishlist routes on the given router.
func (h *WishlistHandler) Routes(r chi.Router) {
	r.Get("/wishlist", h.GetWishlist)
	r.Delete("/wishlist", h.ClearWishlist)
	r.Post("/wishlist/{productID}", h.AddItem)
	r.Delete("/wishlist/{productID}", h.RemoveItem)
	r.Get("/wishlist/{productID}/status", h.Status)
	r.Post("/wishlist/{productID}/move-to-cart", h.MoveToCart)
}

type wishlistResponse struct {
	Items []domain.Product `json:"items"`
	Count int              `json:"count"`
}

func wishlistView(wl *store.WishlistStore) wishlistResponse {
	items := wl.Items()
	return wishlistResponse{Items: items, Count: len(items)}
}

// GetWishlist returns the session's saved products.
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlistView(sess.Wishlist)})
}

// AddItem saves a catalog product to the wishlist. Saving an already-saved
// product is a no-op.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ProductByID(chi.URLParam(r, "productID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Wishlist.AddItem(r.Context(), product)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlistView(sess.Wishlist)})
}

// RemoveItem removes a product from the wishlist; absent products are a no-op.
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Wishlist.RemoveItem(r.Context(), chi.URLParam(r, "productID"))

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlistView(sess.Wishlist)})
}

// ClearWishlist empties the session's wishlist.
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Wishlist.ClearWishlist(r.Context())

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlistView(sess.Wishlist)})
}

type wishlistStatusResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}

// Status reports whether a product is saved in the session's wishlist.
func (h *WishlistHandler) Status(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlistStatusResponse{
		ProductID:  productID,
		InWishlist: sess.Wishlist.IsItemInWishlist(productID),
	}})
}

// MoveToCart adds a saved product to the cart with quantity one, then removes
// it from the wishlist. The two steps are sequential, not transactional.
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))

	var product domain.Product
	found := false
	for _, p := range sess.Wishlist.Items() {
		if p.ID == productID {
			product = p
			found = true
			break
		}
	}
	if !found {
		p, err := h.catalog.ProductByID(productID)
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		product = p
	}

	sess.Cart.AddItem(r.Context(), product, 1)
	sess.Wishlist.RemoveItem(r.Context(), productID)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{
		"cart":     cartView(sess.Cart),
		"wishlist": wishlistView(sess.Wishlist),
	}})
}
