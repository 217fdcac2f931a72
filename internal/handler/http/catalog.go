package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/catalog"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/httputil"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/pagination"
)

// CatalogHandler serves the read-only product, category and order endpoints.
type CatalogHandler struct {
	catalog *catalog.Provider
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(cat *catalog.Provider, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: cat, logger: logger}
}

// Routes mounts the catalog routes on the given router.
func (h *CatalogHandler) Routes(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)
	r.Get("/categories", h.ListCategories)
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{id}", h.GetOrder)
}

// ListProducts returns a page of products, optionally filtered by category.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	all := h.catalog.Products(r.URL.Query().Get("category"))

	page := paginate(all, params)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: pagination.NewResult(page, len(all), params),
	})
}

// GetProduct returns a single product looked up by slug.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ProductBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ListCategories returns all browse categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.Categories()})
}

// ListOrders returns a page of historical orders.
func (h *CatalogHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	all := h.catalog.Orders()

	page := paginate(all, params)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: pagination.NewResult(page, len(all), params),
	})
}

// GetOrder returns a single order by ID.
func (h *CatalogHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.catalog.OrderByID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}

func paginate[T any](items []T, params pagination.Params) []T {
	if params.Offset >= len(items) {
		return []T{}
	}
	end := params.Offset + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[params.Offset:end]
}
