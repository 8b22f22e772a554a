package pkgrouter

import "net/http"

// HeaderAllowOrigin is the CORS response header every response carries.
const HeaderAllowOrigin = "Access-Control-Allow-Origin"

// Middleware wraps an http.Handler, typically to add cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in order, returning the final wrapped handler.
// The first middleware is the outermost one.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// AllowAnyOrigin sets a wildcard Access-Control-Allow-Origin on every response
// that does not already carry one. CORS libraries only answer requests that
// send an Origin header; this covers the rest (curl, server to server, tests).
func AllowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get(HeaderAllowOrigin) == "" {
			w.Header().Set(HeaderAllowOrigin, "*")
		}
		next.ServeHTTP(w, r)
	})
}
