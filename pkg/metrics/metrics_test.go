package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheMiss)
	m.BookingSubmitted("success")
	m.ObserveUpstream("get_rooms", 0, time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/towers", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookupsTotal.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookupsTotal.WithLabelValues(CacheMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingSubmissionsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequestsTotal.WithLabelValues("get_rooms", "network_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/towers", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CacheLookup(CacheHit)
		m.BookingSubmitted("failed")
		m.ObserveUpstream("x", 500, time.Second)
		m.ObserveHTTP("GET", "/", 200, time.Second)
	})
}
