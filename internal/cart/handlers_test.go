package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-duka/internal/pos"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	session := pos.NewSession(pos.SessionConfig{Inventory: []pos.Product{
		{ID: "p1", Name: "BLACK PIPE 1/2''", Quantity: 10, Rate: 10000, Per: "PCS"},
		{ID: "p2", Name: "BINDING WIRE", Quantity: 5, Rate: 16000, Per: "KGS"},
	}})
	return &Handler{Session: session}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) (items []map[string]any, total float64) {
	t.Helper()
	var body struct {
		Data struct {
			Items []map[string]any `json:"items"`
			Total float64          `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data.Items, body.Data.Total
}

func TestGetEmptyCart(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	items, total := decodeCart(t, rec)
	require.Empty(t, items)
	require.Equal(t, float64(0), total)
}

func TestAddItem(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.AddItem(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p1","qty":3}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	items, total := decodeCart(t, rec)
	require.Len(t, items, 1)
	require.Equal(t, float64(3), items[0]["inCart"])
	require.Equal(t, float64(300), items[0]["subtotal"])
	require.Equal(t, float64(300), total)
}

func TestAddItemInsufficientStock(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.AddItem(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p2","qty":6}`)))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "INSUFFICIENT_STOCK")
	require.Contains(t, rec.Body.String(), "only 5 units available in stock")
}

func TestAddItemMergeExceedsStock(t *testing.T) {
	h := newTestHandler(t)
	first := httptest.NewRecorder()
	h.AddItem(first, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p2","qty":4}`)))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.AddItem(second, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p2","qty":2}`)))
	require.Equal(t, http.StatusConflict, second.Code)
	require.Contains(t, second.Body.String(), "only 1 more units available")
}

func TestAddItemUnknownProduct(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.AddItem(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"nope","qty":1}`)))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemValidation(t *testing.T) {
	h := newTestHandler(t)
	for _, body := range []string{`{"qty":2}`, `{"productId":"p1","qty":0}`, `not-json`} {
		rec := httptest.NewRecorder()
		h.AddItem(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	h := newTestHandler(t)
	add := httptest.NewRecorder()
	h.AddItem(add, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p1","qty":2}`)))
	require.Equal(t, http.StatusOK, add.Code)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{"qty":10}`)), "productId", "p1")
	rec := httptest.NewRecorder()
	h.UpdateItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items, total := decodeCart(t, rec)
	require.Len(t, items, 1)
	require.Equal(t, float64(10), items[0]["inCart"])
	require.Equal(t, float64(1000), total)
}

func TestUpdateItemToZeroRemovesLine(t *testing.T) {
	h := newTestHandler(t)
	add := httptest.NewRecorder()
	h.AddItem(add, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p1","qty":2}`)))
	require.Equal(t, http.StatusOK, add.Code)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{"qty":0}`)), "productId", "p1")
	rec := httptest.NewRecorder()
	h.UpdateItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items, _ := decodeCart(t, rec)
	require.Empty(t, items)
}

func TestUpdateItemBeyondStock(t *testing.T) {
	h := newTestHandler(t)
	add := httptest.NewRecorder()
	h.AddItem(add, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p2","qty":1}`)))
	require.Equal(t, http.StatusOK, add.Code)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p2", strings.NewReader(`{"qty":99}`)), "productId", "p2")
	rec := httptest.NewRecorder()
	h.UpdateItem(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRemoveItemIdempotent(t *testing.T) {
	h := newTestHandler(t)
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/p1", nil), "productId", "p1")
	rec := httptest.NewRecorder()
	h.RemoveItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items, _ := decodeCart(t, rec)
	require.Empty(t, items)
}

func TestClear(t *testing.T) {
	h := newTestHandler(t)
	add := httptest.NewRecorder()
	h.AddItem(add, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":"p1","qty":2}`)))
	require.Equal(t, http.StatusOK, add.Code)

	rec := httptest.NewRecorder()
	h.Clear(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	items, total := decodeCart(t, rec)
	require.Empty(t, items)
	require.Equal(t, float64(0), total)
}
