package middleware

import (
	"context"
	"net/http"

	"github.com/cafejs/cafejs/api/web"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"

	// Incoming ids longer than this are truncated before use.
	RequestIDLengthLimit = 128
)

type reqIDKeyCtx int

const reqIDKey reqIDKeyCtx = 1

// RequestID tags every request with an id, either the one the client sent
// or a fresh uuid.
func RequestID() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			} else if len(id) > RequestIDLengthLimit {
				id = id[:RequestIDLengthLimit]
			}
			ctx = context.WithValue(ctx, reqIDKey, id)

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

func ContextRequestID(ctx context.Context) (reqID string) {
	id := ctx.Value(reqIDKey)
	if id != nil {
		reqID = id.(string)
	}
	return
}
