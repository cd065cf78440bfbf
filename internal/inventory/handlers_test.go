package inventory

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-duka/internal/pos"
)

func newTestHandler(t *testing.T) (*Handler, *pos.Session) {
	t.Helper()
	session := pos.NewSession(pos.SessionConfig{Inventory: []pos.Product{
		{ID: "p1", Name: "BLACK PIPE 1/2''", Quantity: 30, Rate: 293000, Per: "PCS"},
		{ID: "p2", Name: "BINDING WIRE", Quantity: 50, Rate: 16000, Per: "KGS"},
		{ID: "p3", Name: "CHAINLINK 8FT", Quantity: 10, Rate: 552000, Per: "ROLL"},
	}})
	h := NewHandler(HandlerConfig{
		Service:  &Service{Session: session},
		Validate: validator.New(),
	})
	return h, session
}

func TestListReturnsAllProducts(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "3", rec.Header().Get("X-Total-Count"))
	require.Contains(t, rec.Body.String(), "BINDING WIRE")
	require.Contains(t, rec.Body.String(), `"rate":2930`)
}

func TestListFiltersByQuery(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?q=pipe", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-Total-Count"))
	require.Contains(t, rec.Body.String(), "BLACK PIPE")
	require.NotContains(t, rec.Body.String(), "BINDING WIRE")
}

func TestListFiltersByUnit(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?per=roll", nil))

	require.Equal(t, "1", rec.Header().Get("X-Total-Count"))
	require.Contains(t, rec.Body.String(), "CHAINLINK")
}

func TestUnits(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.Units(rec, httptest.NewRequest(http.MethodGet, "/api/v1/units", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":["PCS","KGS","ROLL"]}`, rec.Body.String())
}

func TestCreateProduct(t *testing.T) {
	h, session := newTestHandler(t)
	body := `{"name":"NAILS 3 INCH","quantity":100,"rate":250.50,"per":"KGS"}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "NAILS 3 INCH")
	require.Contains(t, rec.Body.String(), `"rate":250.5`)
	require.Len(t, session.Inventory(), 4)
}

func TestCreateProductValidation(t *testing.T) {
	h, session := newTestHandler(t)
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"quantity":5,"rate":100,"per":"PCS"}`},
		{"negative quantity", `{"name":"X","quantity":-1,"rate":100,"per":"PCS"}`},
		{"negative rate", `{"name":"X","quantity":5,"rate":-100,"per":"PCS"}`},
		{"malformed json", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body)))
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	require.Len(t, session.Inventory(), 3)
}

func TestNilServiceGuard(t *testing.T) {
	h := NewHandler(HandlerConfig{})
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
