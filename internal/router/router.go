package router

import (
	"strings"

	"github.com/frankli0324/go-httpd/internal/handlers"
	"github.com/frankli0324/go-httpd/internal/http"
)

// Predicate reports whether a path matches and what it captured from it.
type Predicate func(path string) (arg string, ok bool)

func Exact(p string) Predicate {
	return func(path string) (string, bool) {
		return "", path == p
	}
}

// Prefix matches every path starting with p and captures the rest,
// which may be empty.
func Prefix(p string) Predicate {
	return func(path string) (string, bool) {
		if !strings.HasPrefix(path, p) {
			return "", false
		}
		return path[len(p):], true
	}
}

func Any() Predicate {
	return func(string) (string, bool) { return "", true }
}

// Route is a (method, predicate, handler) triple.
type Route struct {
	Method  string
	Match   Predicate
	Handler handlers.Handler
}

type Router struct {
	routes   []Route
	fallback handlers.Handler
}

// New builds the fixed route table of the server. order matters, the first
// matching route wins.
func New(h *handlers.Handlers) *Router {
	return &Router{
		routes: []Route{
			{http.MethodGet, Prefix("/files/"), h.GetFile},
			{http.MethodGet, Exact("/user-agent"), h.UserAgent},
			{http.MethodGet, Prefix("/echo/"), h.Echo},
			{http.MethodGet, Exact("/"), h.Root},
			{http.MethodGet, Any(), h.NotFound},
			{http.MethodPost, Prefix("/files/"), h.PostFile},
			{http.MethodPost, Any(), h.NotFound},
		},
		fallback: h.MethodNotAllowed,
	}
}

// Route selects the handler for a request and the argument captured by its
// route. requests no route accepts go to the method-not-allowed handler.
func (r *Router) Route(method, path string) (handlers.Handler, string) {
	for _, rt := range r.routes {
		if rt.Method != method {
			continue
		}
		if arg, ok := rt.Match(path); ok {
			return rt.Handler, arg
		}
	}
	return r.fallback, ""
}

// Handle routes req and runs the selected handler.
func (r *Router) Handle(req *http.Request) *http.Response {
	h, arg := r.Route(req.Method, req.Path)
	return h(req, arg)
}
