package pkgrouter

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

// Greeting is the body of GET /.
const Greeting = "Hello heroku"

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Option configures a Router.
type Option func(*Router)

// WithBodyLimit sets the maximum size in bytes of JSON and urlencoded bodies.
func WithBodyLimit(limit int64) Option {
	return func(r *Router) {
		if limit > 0 {
			r.bodyLimit = limit
		}
	}
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr        *httprouter.Router
	encoder   func(ctx context.Context, w http.ResponseWriter, resp any)
	mws       []Middleware
	bodyLimit int64
}

type routeContextKey struct{}

// NewRouter builds the application router with the standard middleware and
// the root greeting route.
func NewRouter(uuid Generator, opts ...Option) *Router {
	ro := &Router{
		encoder:   encodeSuccess,
		bodyLimit: DefaultBodyLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ro)
		}
	}

	ro.mws = []Middleware{
		middlewareRecoverer(ro.fail),
		middlewareCorrelationID(uuid),
		middlewareLogging,
	}

	ro.hr = &httprouter.Router{
		RedirectTrailingSlash:  false,
		RedirectFixedPath:      false,
		HandleMethodNotAllowed: false,
		HandleOPTIONS:          true,
		NotFound: Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// bodies are parsed before routing, so a broken body wins over 404
			r, err := decodeBody(r, ro.bodyLimit)
			if err != nil {
				ro.fail(w, r, err)
				return
			}
			ro.fail(w, r, pkgerror.NewNotFound(NotFoundMessage))
		}), ro.mws...),
	}

	greeting := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(Greeting))
	})
	ro.Handle(http.MethodGet, "/", greeting)
	ro.Handle(http.MethodHead, "/", greeting)

	return ro
}

// Use appends middleware to the existing middleware stack.
//
// Only routes registered afterwards see the new middleware.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
// The same handler also answers HEAD.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
	r.endpoint(http.MethodHead, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router. Raw handlers skip the
// body decoder stage.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	chain := make([]Middleware, 0, len(r.mws)+len(mws))
	chain = append(chain, r.mws...)
	chain = append(chain, mws...)

	wrapped := Chain(h, chain...)
	r.hr.Handler(method, path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		wrapped.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), routeContextKey{}, path)))
	}))
}

// endpoint drives one application route: decode the body, run the handler,
// then encode the result. Any stage error jumps straight to the normalizer.
func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.Handle(method, path, http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		re, err := decodeBody(re, r.bodyLimit)
		if err != nil {
			r.fail(w, re, err)
			return
		}

		resp, err := h(re.Context(), re)
		if err != nil {
			r.fail(w, re, err)
			return
		}

		r.encoder(re.Context(), w, resp)
	}), mws...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if alt, ok := r.lenientPath(req.Method, req.URL.Path); ok {
		u := *req.URL
		u.Path = alt
		u.RawPath = ""
		req = req.WithContext(req.Context())
		req.URL = &u
	}
	r.hr.ServeHTTP(w, req)
}

// lenientPath returns the spelling of path that a registered route answers
// to when path itself misses. One trailing slash is dropped and the mount
// segment ("/USER/..." -> "/user/...") is matched case-insensitively.
// Parameter values and file names keep their case.
func (r *Router) lenientPath(method, path string) (string, bool) {
	if h, _, _ := r.hr.Lookup(method, path); h != nil {
		return "", false
	}

	alt := path
	if len(alt) > 1 {
		alt = strings.TrimSuffix(alt, "/")
	}
	alt = lowerMountSegment(alt)
	if alt == path {
		return "", false
	}

	if h, _, _ := r.hr.Lookup(method, alt); h != nil {
		return alt, true
	}
	return "", false
}

func lowerMountSegment(path string) string {
	if !strings.HasPrefix(path, "/") {
		return path
	}
	end := strings.IndexByte(path[1:], '/')
	if end < 0 {
		return strings.ToLower(path)
	}
	end++
	return strings.ToLower(path[:end]) + path[end:]
}

// Group registers routes under a shared path prefix, e.g. "/user".
type Group struct {
	r      *Router
	prefix string
	mws    []Middleware
}

// Group returns a route group rooted at prefix. A path of "" registers the
// prefix itself.
func (r *Router) Group(prefix string, mws ...Middleware) *Group {
	return &Group{r: r, prefix: prefix, mws: mws}
}

func (g *Group) handle(method, path string, h Handler, mws []Middleware) {
	chain := make([]Middleware, 0, len(g.mws)+len(mws))
	chain = append(chain, g.mws...)
	chain = append(chain, mws...)
	g.r.endpoint(method, g.prefix+path, h, chain...)
}

// GET registers a GET endpoint under the group prefix. The same handler
// also answers HEAD.
func (g *Group) GET(path string, h Handler, mws ...Middleware) {
	g.handle(http.MethodGet, path, h, mws)
	g.handle(http.MethodHead, path, h, mws)
}

// POST registers a POST endpoint under the group prefix.
func (g *Group) POST(path string, h Handler, mws ...Middleware) {
	g.handle(http.MethodPost, path, h, mws)
}

// PUT registers a PUT endpoint under the group prefix.
func (g *Group) PUT(path string, h Handler, mws ...Middleware) {
	g.handle(http.MethodPut, path, h, mws)
}

// PATCH registers a PATCH endpoint under the group prefix.
func (g *Group) PATCH(path string, h Handler, mws ...Middleware) {
	g.handle(http.MethodPatch, path, h, mws)
}

// DELETE registers a DELETE endpoint under the group prefix.
func (g *Group) DELETE(path string, h Handler, mws ...Middleware) {
	g.handle(http.MethodDelete, path, h, mws)
}

func routePattern(r *http.Request) string {
	if pattern, ok := r.Context().Value(routeContextKey{}).(string); ok && pattern != "" {
		return pattern
	}
	return r.URL.Path
}

type successReponse struct {
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func encodeSuccess(_ context.Context, w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	msg := "request has been successfully"
	if m, ok := resp.(interface {
		Message() string
	}); ok {
		msg = m.Message()
	}

	var meta map[string]any
	if m, ok := resp.(interface {
		Meta() map[string]any
	}); ok {
		meta = m.Meta()
	}

	writeJSON(w, successReponse{
		Message: msg,
		Data:    resp,
		Meta:    meta,
	}, code)
}
