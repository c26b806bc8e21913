// flutter-sns account services
// Copyright (C) 2026 Among-Us-KR
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package httpUtils

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type Context struct {
	context.Context
	Writer  http.ResponseWriter
	Request *http.Request
	t0      time.Time
}

func (c *Context) Param(name string) string {
	return mux.Vars(c.Request)[name]
}

// BearerToken returns the token of an "Authorization: Bearer" header.
func (c *Context) BearerToken() string {
	v := c.Request.Header.Get("Authorization")
	if len(v) > 7 && strings.EqualFold(v[:7], "Bearer ") {
		return v[7:]
	}
	return ""
}

// WithDetachedTimeout bounds the remaining handling of the request by
// timeout alone. A client that disconnects does not cancel it.
func (c *Context) WithDetachedTimeout(timeout time.Duration) (*Context, context.CancelFunc) {
	ctx, done := context.WithTimeout(context.WithoutCancel(c.Context), timeout)
	nc := *c
	nc.Context = ctx
	return &nc, done
}

type HandlerFunc func(c *Context)

type MiddlewareFunc func(next HandlerFunc) HandlerFunc

type RouterOptions struct {
	StatusMessage string
}

type Router struct {
	r           *mux.Router
	middlewares []MiddlewareFunc
}

func NewRouter(options *RouterOptions) *Router {
	router := &Router{r: mux.NewRouter()}
	router.r.NotFoundHandler = router.wrap(func(c *Context) {
		RespondPlain(c, http.StatusNotFound, "404")
	})
	router.r.MethodNotAllowedHandler = router.wrap(func(c *Context) {
		RespondPlain(c, http.StatusMethodNotAllowed, "405")
	})

	status := func(c *Context) {
		RespondPlain(c, http.StatusOK, options.StatusMessage)
	}
	router.GET("/status", status)
	router.HEAD("/status", status)
	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Group shares the routes of r. Middlewares added to the group do not
// apply to r.
func (r *Router) Group(prefix string) *Router {
	g := &Router{
		r:           r.r,
		middlewares: append([]MiddlewareFunc{}, r.middlewares...),
	}
	if prefix != "" {
		g.r = r.r.PathPrefix(prefix).Subrouter()
	}
	return g
}

// Use applies to routes that are registered afterwards.
func (r *Router) Use(middlewares ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, middlewares...)
}

func (r *Router) NoRoute(fn HandlerFunc) {
	r.r.NotFoundHandler = r.wrap(fn)
}

func (r *Router) GET(path string, fn HandlerFunc) {
	r.Handle(http.MethodGet, path, fn)
}

func (r *Router) HEAD(path string, fn HandlerFunc) {
	r.Handle(http.MethodHead, path, fn)
}

func (r *Router) POST(path string, fn HandlerFunc) {
	r.Handle(http.MethodPost, path, fn)
}

func (r *Router) Handle(method, path string, fn HandlerFunc) {
	r.r.
		Handle(path, r.wrap(func(c *Context) {
			if c.Request.Method == http.MethodOptions {
				// Pre-flight request that no middleware answered.
				respondJSON(c, http.StatusNoContent, nil)
				return
			}
			fn(c)
		})).
		Methods(method, http.MethodOptions)
}

func (r *Router) wrap(fn HandlerFunc) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		fn = r.middlewares[i](fn)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fn(&Context{
			Context: req.Context(),
			Writer:  w,
			Request: req,
			t0:      time.Now(),
		})
	})
}
