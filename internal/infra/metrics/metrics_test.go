package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAuthentication(t *testing.T) {
	m := newWithRegistry(prometheus.NewRegistry())

	m.RecordAuthentication(service.OutcomeSuccess, 20*time.Millisecond)
	m.RecordAuthentication(service.OutcomeSuccess, 30*time.Millisecond)
	m.RecordAuthentication(service.OutcomeInvalidCredentials, 10*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.authentications.WithLabelValues(service.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.authentications.WithLabelValues(service.OutcomeInvalidCredentials)), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.authenticationDuration))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.RecordAuthentication(service.OutcomeError, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `storefront_authentications_total{outcome="error"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
