package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-duka/internal/common"
	"github.com/noah-isme/backend-duka/internal/obs"
	"github.com/noah-isme/backend-duka/internal/pos"
	"github.com/noah-isme/backend-duka/internal/pricing"
)

// Handler exposes checkout and sale-ledger endpoints.
type Handler struct {
	Session  *pos.Session
	Validate *validator.Validate
}

// Checkout handles POST /api/v1/checkout. It settles the active cart into an
// immutable sale.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	var payload struct {
		CashierName   string  `json:"cashierName" validate:"required"`
		CustomerName  *string `json:"customerName"`
		PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=cash mpesa card bank"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
	}
	method, err := pos.ParsePaymentMethod(payload.PaymentMethod)
	if err != nil {
		h.writeError(w, err)
		return
	}
	sale, err := h.Session.ProcessSale(payload.CashierName, payload.CustomerName, method)
	if err != nil {
		h.writeError(w, err)
		return
	}
	recordSale(sale)
	common.JSON(w, http.StatusCreated, map[string]any{"data": saleView(sale)})
}

// List handles GET /api/v1/sales, newest first. An optional limit query
// parameter caps the page size.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	ledger := h.Session.Sales()
	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].Date.After(ledger[j].Date)
	})
	if limit := common.AtoiDefault(r.URL.Query().Get("limit"), 0); limit > 0 && limit < len(ledger) {
		ledger = ledger[:limit]
	}
	views := make([]map[string]any, 0, len(ledger))
	for _, sale := range ledger {
		views = append(views, saleView(sale))
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": views})
}

// Get handles GET /api/v1/sales/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Session == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session not configured", nil)
		return
	}
	sale, ok := h.Session.Sale(chi.URLParam(r, "id"))
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "sale not found", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": saleView(sale)})
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
	case errors.Is(err, pos.ErrEmptyCart):
		common.JSONError(w, http.StatusConflict, "EMPTY_CART", err.Error(), nil)
	case errors.Is(err, pos.ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}

func recordSale(sale pos.Sale) {
	if obs.SalesProcessedTotal != nil {
		obs.SalesProcessedTotal.WithLabelValues(string(sale.PaymentMethod)).Inc()
	}
	if obs.SaleAmount != nil {
		obs.SaleAmount.Observe(float64(sale.Total))
	}
	if obs.StockDeductionsTotal != nil {
		units := 0
		for _, item := range sale.Items {
			units += item.InCart
		}
		obs.StockDeductionsTotal.Add(float64(units))
	}
}

func saleView(sale pos.Sale) map[string]any {
	items := make([]map[string]any, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, map[string]any{
			"productId": item.ID,
			"name":      item.Name,
			"qty":       item.InCart,
			"rate":      pricing.Decimal(item.Rate),
			"per":       item.Per,
			"subtotal":  pricing.Decimal(item.Subtotal),
		})
	}
	return map[string]any{
		"id":            sale.ID,
		"items":         items,
		"total":         pricing.Decimal(sale.Total),
		"date":          sale.Date,
		"cashierName":   sale.CashierName,
		"customerName":  sale.CustomerName,
		"paymentMethod": sale.PaymentMethod,
		"receiptNumber": sale.ReceiptNumber,
	}
}
