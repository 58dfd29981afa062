package http

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// multiLimiter keeps one token bucket per key and forgets keys that were not
// seen for ttl.
type multiLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	entries   map[string]*limBucket
	lastSweep time.Time
	now       func() time.Time
}

type limBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newMultiLimiter(limit rate.Limit, burst int, ttl time.Duration) *multiLimiter {
	return &multiLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*limBucket),
		now:     time.Now,
	}
}

func (m *multiLimiter) allow(key string) bool {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.entries[key]
	if b == nil {
		b = &limBucket{lim: rate.NewLimiter(m.limit, m.burst), lastSeen: now}
		m.entries[key] = b
	}
	b.lastSeen = now

	// idle keys are swept at most once per ttl
	if now.Sub(m.lastSweep) >= m.ttl {
		for k, v := range m.entries {
			if now.Sub(v.lastSeen) > m.ttl {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	return b.lim.AllowN(now, 1)
}

// withRateLimit throttles requests per authenticated identity. It runs after
// auth, so every request reaching it carries one.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if ok && !h.allow(w, r, "id:"+identity) {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow consumes a token of key. When the bucket is empty it answers 429 and
// returns false. A handler without a limiter allows everything.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request, key string) bool {
	if h.limiter == nil || h.limiter.allow(key) {
		return true
	}

	logger.FromRequest(r).Warn().Str("func", "*Handler.allow").Msg("rate limit exceeded")
	w.Header().Set("Retry-After", "1")
	utils.WriteMessage(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
	return false
}

// clientIP is the peer address of the connection. Forwarding headers are
// client supplied and not used.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// ownerTag is a short stable tag of an identity for log correlation.
// Plain e-mail addresses are not written to the server log.
func ownerTag(identity string) string {
	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:6])
}
