package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/catalog"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/domain"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/store"
	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/httputil"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/validator"
)

// CartHandler serves the session cart endpoints.
type CartHandler struct {
	stores  *store.Manager
	catalog *catalog.Provider
	logger  *slog.Logger
}

// NewCartHandler creates a cart handler.
func NewCartHandler(stores *store.Manager, cat *catalog.Provider, logger *slog.Logger) *CartHandler {
	return &CartHandler{stores: stores, catalog: cat, logger: logger}
}

// Routes mounts the cart routes on the given router.
func (h *CartHandler) Routes(r chi.Router) {
	r.Get("/cart", h.GetCart)
	r.Delete("/cart", h.ClearCart)
	r.Post("/cart/items", h.AddItem)
	r.Put("/cart/items/{lineKey}", h.UpdateItem)
	r.Delete("/cart/items/{lineKey}", h.RemoveItem)
}

type cartLineResponse struct {
	LineKey  string         `json:"line_key"`
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type cartResponse struct {
	Items          []cartLineResponse `json:"items"`
	Subtotal       int64              `json:"subtotal"`
	TotalItemCount int                `json:"total_item_count"`
}

func cartView(c *store.CartStore) cartResponse {
	items := c.Items()
	lines := make([]cartLineResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLineResponse{
			LineKey:  domain.LineKey(it.Product.ID, it.Product.Size),
			Product:  it.Product,
			Quantity: it.Quantity,
		})
	}
	return cartResponse{
		Items:          lines,
		Subtotal:       c.Subtotal(),
		TotalItemCount: c.TotalItems(),
	}
}

// GetCart returns the session's cart with derived totals.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(sess.Cart)})
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Size      string `json:"size"`
}

// AddItem adds a product to the cart, merging into an existing line when the
// product and size match.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	product, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if req.Size != "" {
		product.Size = req.Size
	}

	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Cart.AddItem(r.Context(), product, req.Quantity)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(sess.Cart)})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateItem sets a line's quantity; zero removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	lineKey := chi.URLParam(r, "lineKey")
	if lineKey == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("line key is required"), h.logger)
		return
	}

	var req updateCartItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Cart.UpdateItemQuantity(r.Context(), lineKey, req.Quantity)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(sess.Cart)})
}

// RemoveItem deletes a cart line. Removing an absent line is not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineKey := chi.URLParam(r, "lineKey")

	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Cart.RemoveItem(r.Context(), lineKey)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(sess.Cart)})
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.stores.Session(r.Context(), SessionID(r.Context()))
	sess.Cart.ClearCart(r.Context())

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(sess.Cart)})
}
