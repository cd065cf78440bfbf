package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStatusRecorderCapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := NewStatusRecorder(rec)

	sr.WriteHeader(http.StatusCreated)
	n, err := sr.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.Equal(t, http.StatusCreated, sr.Status())
	require.Equal(t, int64(5), sr.BytesWritten())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "hello", rec.Body.String())
}

func TestStatusRecorderDefaultsTo200(t *testing.T) {
	sr := NewStatusRecorder(httptest.NewRecorder())
	_, err := sr.Write([]byte("ok"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, sr.Status())
}

func TestHTTPObsMiddlewareRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics("duka", nil, reg)
	obs := HTTPObs{Metrics: metrics}

	handler := obs.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	req = req.WithContext(WithRoutePattern(req.Context(), "/api/v1/sales"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	count := testutil.ToFloat64(metrics.ReqTotal.WithLabelValues(http.MethodGet, "/api/v1/sales", "418"))
	require.Equal(t, float64(1), count)
	require.Equal(t, float64(0), testutil.ToFloat64(metrics.InFlight))
}

func TestRoutePatternFallsBackToPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/unmatched", nil)
	require.Equal(t, "/unmatched", routeFor(req))
}
