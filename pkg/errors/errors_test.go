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
	"testing"
)

func TestGetCallableError(t *testing.T) {
	ce := NewCallableError(CodeInternal, "failed", nil, New("boom"))
	tests := []struct {
		name   string
		err    error
		wantOk bool
	}{
		{"direct", ce, true},
		{"tagged", Tag(Tag(ce, "inner"), "outer"), true},
		{"plain", New("boom"), false},
		{"unauthorized", &UnauthorizedError{Reason: "x"}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetCallableError(tt.err)
			if ok != tt.wantOk {
				t.Fatalf("GetCallableError() ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != ce {
				t.Errorf("GetCallableError() = %v, want %v", got, ce)
			}
		})
	}
}

func TestCallableError_Error(t *testing.T) {
	withCause := NewCallableError(CodeInternal, "failed", nil, New("boom"))
	if got := withCause.Error(); got != "internal: failed: boom" {
		t.Errorf("Error() = %q", got)
	}
	plain := NewCallableError(CodeUnauthenticated, "denied", nil, nil)
	if got := plain.Error(); got != "unauthenticated: denied" {
		t.Errorf("Error() = %q", got)
	}
	if got := plain.Code.Status(); got != "UNAUTHENTICATED" {
		t.Errorf("Status() = %q", got)
	}
}

func TestMerge(t *testing.T) {
	if err := Merge(nil, nil); err != nil {
		t.Errorf("Merge() = %v, want nil", err)
	}
	a := New("a")
	if err := Merge(nil, a); err != a {
		t.Errorf("Merge() = %v, want %v", err, a)
	}
	if got := Merge(a, New("b")).Error(); got != "merged: a + b" {
		t.Errorf("Merge() = %q", got)
	}
}

func TestIsHelpers(t *testing.T) {
	nf := Tag(&NotFoundError{}, "delete posts/uid-1/a.jpg")
	if !IsNotFoundError(nf) {
		t.Error("IsNotFoundError(tagged) = false")
	}
	if !IsNotFoundError(Merge(New("a"), nf)) {
		t.Error("IsNotFoundError(merged) = false")
	}
	u := NewCallableError(
		CodeUnauthenticated, "denied", nil, &UnauthorizedError{Reason: "x"},
	)
	if !IsUnauthorizedError(Tag(u, "ctx")) {
		t.Error("IsUnauthorizedError(callable) = false")
	}
	if IsUnauthorizedError(nf) {
		t.Error("IsUnauthorizedError(not found) = true")
	}
}
