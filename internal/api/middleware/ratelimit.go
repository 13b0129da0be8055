package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов к локальному API по IP клиента
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	ttl    time.Duration
	logger Logger

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter создает ограничитель requestsPerMinute запросов в минуту с запасом burst
func NewRateLimiter(requestsPerMinute, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		ttl:      10 * time.Minute,
		logger:   logger,
		visitors: make(map[string]*visitor),
	}
}

// Middleware возвращает mux middleware
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rl.allow(ip, time.Now()) {
				rl.logger.Warn("Rate limit exceeded: ip=%s %s %s", ip, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	// удаляем давно неактивных клиентов
	for key, other := range rl.visitors {
		if now.Sub(other.lastSeen) > rl.ttl {
			delete(rl.visitors, key)
		}
	}

	return v.limiter.AllowN(now, 1)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
