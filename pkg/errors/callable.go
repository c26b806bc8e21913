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

package errors

type CallableCode string

const (
	CodeUnauthenticated CallableCode = "unauthenticated"
	CodeInternal        CallableCode = "internal"
)

// Status returns the canonical upper-case status of the callable protocol.
func (c CallableCode) Status() string {
	switch c {
	case CodeUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "INTERNAL"
	}
}

// CallableError is the terminal failure of a callable operation. Details is
// serialized verbatim for clients to branch on.
type CallableError struct {
	Code    CallableCode
	Msg     string
	Details interface{}
	cause   error
}

func (e *CallableError) Error() string {
	if e.cause == nil {
		return string(e.Code) + ": " + e.Msg
	}
	return string(e.Code) + ": " + e.Msg + ": " + e.cause.Error()
}

func (e *CallableError) Unwrap() error {
	return e.cause
}

func NewCallableError(code CallableCode, msg string, details interface{}, cause error) *CallableError {
	return &CallableError{
		Code:    code,
		Msg:     msg,
		Details: details,
		cause:   cause,
	}
}

// GetCallableError finds a CallableError in the chain of err.
func GetCallableError(err error) (*CallableError, bool) {
	var ce *CallableError
	if As(err, &ce) {
		return ce, true
	}
	return nil, false
}
