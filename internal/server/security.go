package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CokeFamer_Go/internal/logger"
)

// GuardOptions sizes a ClientGuard.
type GuardOptions struct {
	// Limit is the request budget per IP per Window.
	Limit    int
	Window   time.Duration
	Capacity int
}

// clientCounts is one IP's tally for the current window.
type clientCounts struct {
	requests   int
	failedAuth int
}

// ClientGuard counts requests and failed logins per client IP in fixed
// windows. A window starts at the IP's first request and ends Window later,
// when the LRU expires the entry.
type ClientGuard struct {
	mu      sync.Mutex
	limit   int
	clients *expirable.LRU[string, *clientCounts]
}

func NewClientGuard(opts GuardOptions) *ClientGuard {
	if opts.Limit <= 0 {
		opts.Limit = DefaultRateLimit
	}
	if opts.Window <= 0 {
		opts.Window = DefaultRateWindow
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultGuardCapacity
	}
	return &ClientGuard{
		limit:   opts.Limit,
		clients: expirable.NewLRU[string, *clientCounts](opts.Capacity, nil, opts.Window),
	}
}

// counts returns the live tally for ip. Caller must hold g.mu.
func (g *ClientGuard) counts(ip string) *clientCounts {
	c, ok := g.clients.Get(ip)
	if !ok {
		c = &clientCounts{}
		g.clients.Add(ip, c)
	}
	return c
}

// RecordFailedAuth notes a failed login and alerts once ip keeps failing.
func (g *ClientGuard) RecordFailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.counts(ip)
	c.failedAuth++
	if c.failedAuth >= FailedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", c.failedAuth)
	}
}

// Allow counts a request and reports whether ip is still within budget.
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.counts(ip)
	c.requests++
	if c.requests <= g.limit {
		return true
	}
	if c.requests%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", c.requests)
	}
	return false
}

// Requests is ip's request count in its current window.
func (g *ClientGuard) Requests(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.clients.Peek(ip); ok {
		return c.requests
	}
	return 0
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the API key on every non-public path.
// An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				guard.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients over their request budget with 429.
func RateLimitMiddleware(trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// from a trusted proxy, and then only its last hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	if i := strings.LastIndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[i+1:]
	}
	return strings.TrimSpace(forwarded)
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueDeny},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
	{HeaderCSP, HeaderValueCSPNone},
}

// SecurityHeadersMiddleware sets the JSON API's hardening headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range securityHeaders {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
