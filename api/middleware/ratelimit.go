package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/api/weberr"
	"github.com/cafejs/cafejs/rate"
)

// RateLimit rejects requests exceeding the per-client budget. Clients are
// keyed by remote address.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !lim.Check(host) {
				err := errors.New("rate limit exceeded")
				return weberr.NewError(err, "too many requests", http.StatusTooManyRequests)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
