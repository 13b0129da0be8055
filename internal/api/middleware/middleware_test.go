package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type observed struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	mu   sync.Mutex
	seen []observed
}

func (m *recordingMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, observed{method: method, route: route, status: status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}
	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/rooms/{roomId}/slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/42/slots", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, observed{method: http.MethodGet, route: "/rooms/{roomId}/slots", status: http.StatusNotFound}, m.seen[0])
}

func TestRateLimiter_BlocksAfterBurstPerClient(t *testing.T) {
	rl := NewRateLimiter(60, 2, logger.NewNop())
	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/towers", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(60, 1, logger.NewNop())
	now := time.Now()

	assert.True(t, rl.allow("10.0.0.1", now))
	assert.False(t, rl.allow("10.0.0.1", now))

	later := now.Add(rl.ttl + time.Minute)
	assert.True(t, rl.allow("10.0.0.2", later))
	_, kept := rl.visitors["10.0.0.1"]
	assert.False(t, kept)
}
