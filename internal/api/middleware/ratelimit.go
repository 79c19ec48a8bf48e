package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
)

const (
	// limiterIdleTTL лимитер без запросов дольше этого времени удаляется
	limiterIdleTTL = 10 * time.Minute
	// sweepInterval как часто искать простаивающие лимитеры
	sweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time

	limit          rate.Limit
	burst          int
	trustForwarded bool
	now            func() time.Time
	logger         Logger
}

// NewRateLimiter создает лимитер: perMinute запросов в минуту с запасом burst
// trustForwarded включать только за доверенным прокси, иначе X-Forwarded-For подделывается клиентом
func NewRateLimiter(perMinute, burst int, trustForwarded bool, logger Logger) *RateLimiter {
	return &RateLimiter{
		visitors:       make(map[string]*visitor),
		limit:          rate.Limit(float64(perMinute) / 60),
		burst:          burst,
		trustForwarded: trustForwarded,
		now:            time.Now,
		logger:         logger,
	}
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweepLocked(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweepLocked удаляет лимитеры, простаивающие дольше limiterIdleTTL
func (l *RateLimiter) sweepLocked(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

// Middleware отвечает 429, если лимит для IP исчерпан
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		if l.trustForwarded {
			if forwarded := ForwardedIP(r); forwarded != "" {
				ip = forwarded
			}
		}

		if !l.limiter(ip).Allow() {
			l.logger.Warn("%s %s - Rate limit exceeded for ip=%s", r.Method, r.URL.Path, ip)
			handlers.RespondTooManyRequests(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP адрес клиента из соединения
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ForwardedIP первый адрес из X-Forwarded-For, пустая строка если заголовка нет
func ForwardedIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	first, _, _ := strings.Cut(forwarded, ",")
	return strings.TrimSpace(first)
}
