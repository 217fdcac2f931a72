package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/advisor"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/httputil"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/validator"
)

// AdvisorHandler proxies style recommendation requests to the advisor service.
type AdvisorHandler struct {
	advisor *advisor.Client
	logger  *slog.Logger
}

// NewAdvisorHandler creates an advisor handler.
func NewAdvisorHandler(client *advisor.Client, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{advisor: client, logger: logger}
}

// Routes mounts the advisor routes on the given router.
func (h *AdvisorHandler) Routes(r chi.Router) {
	r.Post("/style-advisor", h.Recommend)
}

// Recommend returns style suggestions for the shopper's stated preferences.
func (h *AdvisorHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req advisor.Request
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.advisor.Recommend(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: resp})
}
