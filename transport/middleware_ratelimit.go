package transport

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/utils/errors"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"github.com/muhammadheryan/green-footprint/utils/ratelimit"
	"go.uber.org/zap"
)

// RateLimitMiddleware limits requests per client IP. When the limiter itself
// fails the request is let through. Forwarding headers are honoured only when
// the direct peer matches one of trustedProxies (IPs or CIDRs).
func RateLimitMiddleware(limiter ratelimit.Limiter, trustedProxies ...string) mux.MiddlewareFunc {
	resolver := newIPResolver(trustedProxies)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), "auth:"+resolver.clientIP(r))
			if err != nil {
				logger.Warn("[RateLimitMiddleware] limiter unavailable", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !res.Allowed {
				if res.RetryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
				}
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type ipResolver struct {
	trusted []*net.IPNet
}

func newIPResolver(proxies []string) ipResolver {
	var res ipResolver
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			if ip := net.ParseIP(p); ip != nil && ip.To4() != nil {
				p += "/32"
			} else {
				p += "/128"
			}
		}
		_, network, err := net.ParseCIDR(p)
		if err != nil {
			logger.Warn("[newIPResolver] skipping trusted proxy", zap.String("proxy", p), zap.String("error", err.Error()))
			continue
		}
		res.trusted = append(res.trusted, network)
	}
	return res
}

func (res ipResolver) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, network := range res.trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// clientIP returns the direct peer unless it is a trusted proxy. Behind one,
// X-Forwarded-For is read right to left and the first untrusted hop wins.
func (res ipResolver) clientIP(r *http.Request) string {
	peer := remoteHost(r)
	if !res.isTrusted(peer) {
		return peer
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !res.isTrusted(hop) {
				return hop
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return peer
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
