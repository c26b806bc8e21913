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
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestRouter() *Router {
	r := NewRouter(&RouterOptions{StatusMessage: "alive\n"})
	r.Use(CORS(CORSOptions{AllowOrigins: []string{"https://app.example"}}))
	r.POST("/ok", func(c *Context) {
		RespondCallable(c, map[string]bool{"success": true}, nil)
	})
	r.POST("/denied", func(c *Context) {
		RespondCallable(c, nil, &errors.UnauthorizedError{Reason: "x"})
	})
	r.POST("/failed", func(c *Context) {
		RespondCallable(c, nil, errors.Tag(errors.NewCallableError(
			errors.CodeInternal,
			"failed",
			map[string]string{"step": "authDelete"},
			errors.New("boom"),
		), "outer"))
	})
	r.POST("/crashed", func(c *Context) {
		RespondCallable(c, nil, errors.New("secret detail"))
	})
	return r
}

func do(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRespondCallable(t *testing.T) {
	r := newTestRouter()
	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "result",
			path:     "/ok",
			wantCode: http.StatusOK,
			wantBody: `{"result":{"success":true}}`,
		},
		{
			name:     "unauthenticated",
			path:     "/denied",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":{"status":"UNAUTHENTICATED","code":"unauthenticated","message":"unauthorized: x"}}`,
		},
		{
			name:     "callable details",
			path:     "/failed",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"status":"INTERNAL","code":"internal","message":"failed","details":{"step":"authDelete"}}}`,
		},
		{
			name:     "hides plain errors",
			path:     "/crashed",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"status":"INTERNAL","code":"internal","message":"internal server error"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.path, nil)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			var got, want interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("body %q: %s", w.Body.String(), err)
			}
			if err := json.Unmarshal([]byte(tt.wantBody), &want); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("body = %s, want %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter()
	t.Run("pre-flight", func(t *testing.T) {
		w := do(r, http.MethodOptions, "/ok", http.Header{
			"Origin": {"https://app.example"},
		})
		if w.Code != http.StatusNoContent {
			t.Errorf("code = %d, want %d", w.Code, http.StatusNoContent)
		}
		got := w.Header().Get("Access-Control-Allow-Origin")
		if got != "https://app.example" {
			t.Errorf("allow origin = %q", got)
		}
	})
	t.Run("foreign origin", func(t *testing.T) {
		w := do(r, http.MethodPost, "/ok", http.Header{
			"Origin": {"https://evil.example"},
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("code = %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}

func TestStatusAndNotFound(t *testing.T) {
	r := newTestRouter()
	if w := do(r, http.MethodGet, "/status", nil); w.Code != http.StatusOK || w.Body.String() != "alive\n" {
		t.Errorf("status: %d %q", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("not found: %d", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "Basic abc", want: ""},
		{header: "Bearer ", want: ""},
		{header: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set("Authorization", tt.header)
			c := &Context{Context: req.Context(), Request: req}
			if got := c.BearerToken(); got != tt.want {
				t.Errorf("BearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
