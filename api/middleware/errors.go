package middleware

import (
	"context"
	"net/http"

	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/api/weberr"
	"github.com/sirupsen/logrus"
)

// Errors converts handler errors into responses. Decorated errors render
// their own message and status; anything else becomes a generic 500. The
// full error is always logged server-side.
func Errors(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			fields := map[string]interface{}{
				"req_id":  ContextRequestID(ctx),
				"message": err,
			}
			if f, ok := weberr.Fields(err); ok {
				for k, v := range f {
					fields[k] = v
				}
			}

			log.WithFields(logrus.Fields(fields)).Error("ERROR")

			if msg, code, ok := weberr.Response(err); ok {
				return web.Respond(ctx, w, msg, code)
			}

			return web.Respond(
				ctx, w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError,
			)
		}
		return h
	}
	return m
}
