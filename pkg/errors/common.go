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

import (
	"errors"
	"strings"
)

var (
	As  = errors.As
	New = errors.New
)

// TaggedError prefixes the message of its cause with context.
type TaggedError struct {
	msg   string
	cause error
}

func (t *TaggedError) Error() string {
	return t.msg + ": " + t.cause.Error()
}

func (t *TaggedError) Unwrap() error {
	return t.cause
}

func Tag(err error, msg string) *TaggedError {
	return &TaggedError{msg: msg, cause: err}
}

// MergedError collects the errors of independent operations.
type MergedError struct {
	errors []error
}

func (m *MergedError) Add(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

func (m *MergedError) Error() string {
	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}
	parts := make([]string, len(m.errors))
	for i, err := range m.errors {
		parts[i] = err.Error()
	}
	return "merged: " + strings.Join(parts, " + ")
}

func (m *MergedError) Unwrap() []error {
	return m.errors
}

// Finalize returns nil, the single error or m.
func (m *MergedError) Finalize() error {
	switch len(m.errors) {
	case 0:
		return nil
	case 1:
		return m.errors[0]
	default:
		return m
	}
}

func Merge(errs ...error) error {
	m := &MergedError{}
	for _, err := range errs {
		m.Add(err)
	}
	return m.Finalize()
}

type ValidationError struct {
	Msg string
}

func (v *ValidationError) Error() string {
	return v.Msg
}

type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return "unauthorized: " + e.Reason
}

func IsUnauthorizedError(err error) bool {
	var u *UnauthorizedError
	return errors.As(err, &u)
}

type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}

func IsNotFoundError(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
