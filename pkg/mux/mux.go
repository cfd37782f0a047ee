// Package mux is a thin registration wrapper over chi. It performs no
// matching of its own: route templates are translated to chi syntax and
// forwarded, and the parameter shape inferred for each template is
// recorded as the contract for the params bag chi populates at request
// time. Nothing re-checks that contract at runtime; the boundary is
// trusted, not verified.
package mux

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/routeshape/routeshape/pkg/pattern"
)

type (
	Middleware = func(http.Handler) http.Handler

	// RegisteredRoute pairs a route template with the parameter shape
	// inferred for it at registration time.
	RegisteredRoute struct {
		Method  string
		Pattern string
		Shape   pattern.Map
	}

	Router struct {
		mux    chi.Router
		routes map[string]*RegisteredRoute
		order  []*RegisteredRoute
	}
)

type Options struct {
	NotFound http.Handler
}

func NewRouter(opts *Options) *Router {
	m := chi.NewRouter()
	if opts != nil && opts.NotFound != nil {
		m.NotFound(opts.NotFound.ServeHTTP)
	}
	return &Router{
		mux:    m,
		routes: make(map[string]*RegisteredRoute),
	}
}

// Use registers middleware with the underlying chi router. Middleware
// applies to every route registered after it, in registration order;
// chi requires all Use calls to come before the first route.
func (r *Router) Use(mws ...Middleware) {
	for _, mw := range mws {
		r.mux.Use(mw)
	}
}

// Handle infers the parameter shape for the template once, records it,
// and forwards registration to chi. Templates chi cannot express in one
// pattern (optional segments, optional params) register as their
// expanded variants.
func (r *Router) Handle(method, pat string, h http.Handler) *RegisteredRoute {
	key := method + " " + pat
	rr, ok := r.routes[key]
	if !ok {
		rr = &RegisteredRoute{Method: method, Pattern: pat, Shape: pattern.Infer(pat)}
		r.routes[key] = rr
		r.order = append(r.order, rr)
	}
	for _, cp := range toChiPatterns(pat) {
		r.mux.Method(method, cp.pattern, withCatchAllKey(h, cp.wildcard))
	}
	return rr
}

func (r *Router) Get(pat string, h http.HandlerFunc) *RegisteredRoute {
	return r.Handle(http.MethodGet, pat, h)
}

func (r *Router) Post(pat string, h http.HandlerFunc) *RegisteredRoute {
	return r.Handle(http.MethodPost, pat, h)
}

func (r *Router) Put(pat string, h http.HandlerFunc) *RegisteredRoute {
	return r.Handle(http.MethodPut, pat, h)
}

func (r *Router) Delete(pat string, h http.HandlerFunc) *RegisteredRoute {
	return r.Handle(http.MethodDelete, pat, h)
}

// Shape returns the parameter map recorded when the route was
// registered, or the open fallback map for a route this router has
// never seen.
func (r *Router) Shape(method, pat string) pattern.Map {
	if rr, ok := r.routes[method+" "+pat]; ok {
		return rr.Shape
	}
	return pattern.Unknown()
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*RegisteredRoute {
	out := make([]*RegisteredRoute, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

type catchAllKeyCtx struct{}

// withCatchAllKey records which params-bag key the chi catch-all
// capture belongs under for this registration variant, so Params can
// restore the name the inferred shape promises.
func withCatchAllKey(h http.Handler, key string) http.Handler {
	if key == "" {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := context.WithValue(req.Context(), catchAllKeyCtx{}, key)
		h.ServeHTTP(w, req.WithContext(ctx))
	})
}

// Params copies the params bag chi populated for this request into a
// plain map, keyed per the route's inferred shape. Chi reports its
// catch-all capture under "*"; that entry is rekeyed to the wildcard's
// name or numeric index. The route's Shape describes what should be in
// here; per the trust boundary, nothing re-checks it.
func Params(req *http.Request) map[string]string {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		return nil
	}
	out := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		if k == "*" {
			if key, ok := req.Context().Value(catchAllKeyCtx{}).(string); ok {
				out[key] = rctx.URLParams.Values[i]
			}
			continue
		}
		out[k] = rctx.URLParams.Values[i]
	}
	return out
}
