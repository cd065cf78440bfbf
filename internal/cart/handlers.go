package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-duka/internal/common"
	"github.com/noah-isme/backend-duka/internal/obs"
	"github.com/noah-isme/backend-duka/internal/pos"
	"github.com/noah-isme/backend-duka/internal/pricing"
)

// Handler wires the active cart to HTTP. There is a single cart per trading
// session, so no cart id appears in the routes.
type Handler struct {
	Session *pos.Session
}

// Get returns cart contents with per-line and overall totals.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, h.view())
}

// AddItem adds or increments a cart line.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	var payload struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if payload.ProductID == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "productId is required", nil)
		return
	}
	if payload.Qty <= 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "qty must be positive", nil)
		return
	}
	if err := h.Session.AddToCart(payload.ProductID, payload.Qty); err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, h.view())
}

// UpdateItem replaces the quantity on a cart line.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	productID := chi.URLParam(r, "productId")
	var payload struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.Session.UpdateQuantity(productID, payload.Qty); err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, h.view())
}

// RemoveItem drops a cart line. Removing an absent line is a no-op.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	h.Session.RemoveFromCart(chi.URLParam(r, "productId"))
	common.JSON(w, http.StatusOK, h.view())
}

// Clear empties the cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	h.Session.ClearCart()
	common.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) view() map[string]any {
	lines := h.Session.CartLines()
	items := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		items = append(items, map[string]any{
			"productId": line.ID,
			"name":      line.Name,
			"inCart":    line.InCart,
			"rate":      pricing.Decimal(line.Rate),
			"per":       line.Per,
			"subtotal":  pricing.Decimal(line.Subtotal),
		})
	}
	return map[string]any{
		"data": map[string]any{
			"items": items,
			"total": pricing.Decimal(h.Session.CartTotal()),
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusBadRequest
		}
		code := appErr.Code
		if code == "" {
			code = "BAD_REQUEST"
		}
		common.JSONError(w, status, code, appErr.Message, appErr.Details)
		return
	}
	switch {
	case errors.Is(err, pos.ErrInvalidInput):
		countRejection("invalid_input")
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	case errors.Is(err, pos.ErrNotFound):
		countRejection("not_found")
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, pos.ErrInsufficientStock):
		countRejection("insufficient_stock")
		common.JSONError(w, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}

func countRejection(reason string) {
	if obs.CartRejectionsTotal != nil {
		obs.CartRejectionsTotal.WithLabelValues(reason).Inc()
	}
}
