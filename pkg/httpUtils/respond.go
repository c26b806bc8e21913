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
	"log"
	"net/http"
	"strconv"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

func RespondPlain(c *Context, status int, body string) {
	EndTotalTimer(c)
	h := c.Writer.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	c.Writer.WriteHeader(status)
	_, _ = c.Writer.Write([]byte(body))
}

type callableErrorBody struct {
	Status  string      `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type callableResponse struct {
	Result interface{}        `json:"result,omitempty"`
	Error  *callableErrorBody `json:"error,omitempty"`
}

// toCallableError hides the message of errors that are not meant for
// clients.
func toCallableError(err error) *errors.CallableError {
	if ce, ok := errors.GetCallableError(err); ok {
		return ce
	}
	if errors.IsUnauthorizedError(err) {
		return errors.NewCallableError(
			errors.CodeUnauthenticated, err.Error(), nil, err,
		)
	}
	return errors.NewCallableError(
		errors.CodeInternal, "internal server error", nil, err,
	)
}

// RespondCallable writes the envelope of the callable protocol:
// {"result": ...} on success, {"error": {...}} on failure.
func RespondCallable(c *Context, result interface{}, err error) {
	if err == nil {
		respondJSON(c, http.StatusOK, &callableResponse{Result: result})
		return
	}
	ce := toCallableError(err)
	status := http.StatusInternalServerError
	if ce.Code == errors.CodeUnauthenticated {
		status = http.StatusUnauthorized
	} else {
		logError(c, err)
	}
	respondJSON(c, status, &callableResponse{Error: &callableErrorBody{
		Status:  ce.Code.Status(),
		Code:    string(ce.Code),
		Message: ce.Msg,
		Details: ce.Details,
	}})
}

func logError(c *Context, err error) {
	log.Printf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
}

var errSerializeBody = []byte(`{"error":{"status":"INTERNAL","code":"internal","message":"internal server error"}}`)

func respondJSON(c *Context, status int, body interface{}) {
	EndTotalTimer(c)
	if body == nil {
		c.Writer.WriteHeader(status)
		return
	}
	blob, err := json.Marshal(body)
	if err != nil {
		logError(c, errors.Tag(err, "serialize body"))
		status = http.StatusInternalServerError
		blob = errSerializeBody
	}
	h := c.Writer.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(blob)))
	c.Writer.WriteHeader(status)
	_, _ = c.Writer.Write(blob)
}
