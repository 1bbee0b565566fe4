package api

import (
	"net/http"

	"github.com/cafejs/cafejs/api/middleware"
	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/core/auth"
	"github.com/cafejs/cafejs/core/cart"
	"github.com/cafejs/cafejs/core/checkout"
	"github.com/cafejs/cafejs/core/product"
	"github.com/cafejs/cafejs/core/sessions"
	"github.com/cafejs/cafejs/rate"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	Log        logrus.FieldLogger
	DB         *sqlx.DB
	Sessions   sessions.Store
	LoginLimit *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	// LoadUser sits inside Errors so a failing session lookup still
	// renders as a generic 500 instead of escaping the chain.
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())
	a.mw = append(a.mw, auth.LoadUser(cfg.DB, cfg.Sessions))

	authen := auth.Authenticate()
	limited := middleware.RateLimit(cfg.LoginLimit)

	engine := checkout.NewEngine(cfg.DB)

	a.Handle(http.MethodGet, "/product/{id}", product.HandleShow(cfg.DB))
	a.Handle(http.MethodPost, "/product/{id}", cart.HandleAddItem(cfg.DB), authen)

	a.Handle(http.MethodGet, "/login", auth.HandleLoginForm())
	a.Handle(http.MethodPost, "/login", auth.HandleLogin(cfg.DB, cfg.Sessions), limited)

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.DB), authen)
	a.Handle(http.MethodPost, "/cart", checkout.HandleCheckout(cfg.DB, engine))

	a.Handle(http.MethodGet, "/", product.HandleList(cfg.DB))

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
