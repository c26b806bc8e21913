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
	"net/http"
	"strconv"
	"strings"
	"time"
)

type CORSOptions struct {
	AllowOrigins []string
}

var (
	corsAllowHeaders = strings.Join([]string{
		"Authorization",
		"Content-Type",
	}, ",")
	corsAllowMethods = strings.Join([]string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
	}, ",")
	corsMaxAge = strconv.FormatInt(int64(time.Hour/time.Second), 10)
)

// CORS answers pre-flight requests and rejects cross-origin requests from
// origins that are not listed in options.
func CORS(options CORSOptions) MiddlewareFunc {
	allowed := make(map[string]bool, len(options.AllowOrigins))
	for _, origin := range options.AllowOrigins {
		allowed[origin] = true
	}
	return func(next HandlerFunc) HandlerFunc {
		return func(c *Context) {
			origin := c.Request.Header.Get("Origin")
			if origin == "" || origin == "https://"+c.Request.Host {
				next(c)
				return
			}
			h := c.Writer.Header()
			h.Set("Vary", "Origin")
			if !allowed[origin] {
				RespondPlain(c, http.StatusForbidden, "origin not allowed")
				return
			}
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Max-Age", corsMaxAge)
			if c.Request.Method == http.MethodOptions {
				respondJSON(c, http.StatusNoContent, nil)
				return
			}
			next(c)
		}
	}
}
