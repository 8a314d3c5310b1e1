package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_HTTP(t *testing.T) {
	m := NewWithRegistry("availability-test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/businesses/{businessId}/available-slots", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/businesses/{businessId}/available-slots", 200, 5*time.Millisecond)

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/businesses/{businessId}/available-slots", "200"))
	assert.Equal(t, float64(2), got)
}

func TestMetrics_DBQueryErrors(t *testing.T) {
	m := NewWithRegistry("availability-test", prometheus.NewRegistry())

	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
}

func TestMetrics_PoolStats(t *testing.T) {
	m := NewWithRegistry("availability-test", prometheus.NewRegistry())

	m.SetDBPoolStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 1})

	assert.Equal(t, float64(5), testutil.ToFloat64(m.dbOpenConns))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.dbInUseConns))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.dbIdleConns))
}

func TestMetrics_Cache(t *testing.T) {
	m := NewWithRegistry("availability-test", prometheus.NewRegistry())

	m.IncCacheRequest("hit")
	m.IncCacheRequest("hit")
	m.IncCacheRequest("miss")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheRequests.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheRequests.WithLabelValues("miss")))
}
