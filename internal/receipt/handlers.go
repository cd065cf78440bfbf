package receipt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-duka/internal/common"
	"github.com/noah-isme/backend-duka/internal/pos"
)

// Handler serves rendered receipts over HTTP.
type Handler struct {
	Session  *pos.Session
	Renderer Renderer
}

// BySale handles GET /api/v1/sales/{id}/receipt.
func (h *Handler) BySale(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	sale, ok := h.Session.Sale(chi.URLParam(r, "id"))
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "sale not found", nil)
		return
	}
	common.Text(w, http.StatusOK, h.Renderer.Render(sale))
}

// Latest handles GET /api/v1/receipts/latest, serving the receipt for the
// most recent sale of the session.
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	sale, ok := h.Session.LastSale()
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "no sales recorded yet", nil)
		return
	}
	common.Text(w, http.StatusOK, h.Renderer.Render(sale))
}
