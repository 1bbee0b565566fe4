package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler is the signature every endpoint implements. Returned errors are
// translated into responses by the errors middleware.
type Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

type Middleware func(Handler) Handler

func WrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h := mw[i]
		if h != nil {
			handler = h(handler)
		}
	}

	return handler
}

// Respond writes a plain-text response.
func Respond(ctx context.Context, w http.ResponseWriter, text string, statusCode int) error {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("cannot write response data to response writer: %w", err)
	}

	return nil
}

// Redirect replies with a 302 pointing the browser at url.
func Redirect(w http.ResponseWriter, r *http.Request, url string) error {
	http.Redirect(w, r, url, http.StatusFound)
	return nil
}

// Param extracts a path variable by name.
func Param(r *http.Request, key string) string {
	m := mux.Vars(r)
	return m[key]
}

// FormInt parses the named form value as an integer. A missing value is an
// error, matching the strictness the callers need for quantities and ids.
func FormInt(r *http.Request, key string) (int, error) {
	v := r.PostFormValue(key)
	if v == "" {
		return 0, fmt.Errorf("form value %q is missing", key)
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("form value %q is not a number: %w", key, err)
	}

	return n, nil
}
