package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-duka/internal/common"
	"github.com/noah-isme/backend-duka/internal/pos"
	"github.com/noah-isme/backend-duka/internal/pricing"
)

// Handler exposes inventory endpoints.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service  *Service
	Validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service, validate: cfg.Validate}
}

// List handles GET /api/v1/products with optional q and per filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "inventory service not configured", nil)
		return
	}
	params := ListParams{
		Query: r.URL.Query().Get("q"),
		Per:   r.URL.Query().Get("per"),
	}
	products := h.service.List(params)
	w.Header().Set("X-Total-Count", strconv.Itoa(len(products)))
	common.JSON(w, http.StatusOK, map[string]any{"data": productViews(products)})
}

// Units handles GET /api/v1/units.
func (h *Handler) Units(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "inventory service not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.service.Units()})
}

// Create handles POST /api/v1/products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "inventory service not configured", nil)
		return
	}
	var payload struct {
		Name     string  `json:"name" validate:"required"`
		Quantity int     `json:"quantity" validate:"gte=0"`
		Rate     float64 `json:"rate" validate:"gte=0"`
		Per      string  `json:"per"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.validate != nil {
		if err := h.validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
	}
	product, err := h.service.Add(payload.Name, payload.Quantity, payload.Rate, payload.Per)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": productView(product)})
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
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	case errors.Is(err, pos.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}

func productView(p pos.Product) map[string]any {
	return map[string]any{
		"id":       p.ID,
		"name":     p.Name,
		"quantity": p.Quantity,
		"rate":     pricing.Decimal(p.Rate),
		"per":      p.Per,
	}
}

func productViews(products []pos.Product) []map[string]any {
	views := make([]map[string]any, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	return views
}
