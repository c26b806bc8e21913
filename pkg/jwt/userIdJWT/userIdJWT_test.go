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

package userIdJWT

import (
	"testing"
	"time"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/jwtOptions"
)

func testOptions(expiresIn time.Duration) jwtOptions.JWTOptions {
	return jwtOptions.JWTOptions{
		Algorithm: "HS512",
		Key:       []byte("s3cr3t"),
		ExpiresIn: expiresIn,
	}
}

func TestIssueAndParse(t *testing.T) {
	h := New(testOptions(time.Minute))
	blob, err := Issue(h, "uid-1")
	if err != nil {
		t.Fatalf("Issue(): %s", err)
	}
	claims, err := h.Parse(blob)
	if err != nil {
		t.Fatalf("Parse(): %s", err)
	}
	if got := claims.UserId; got != "uid-1" {
		t.Errorf("Parse() userId = %q, want %q", got, "uid-1")
	}
}

func TestParseRejects(t *testing.T) {
	h := New(testOptions(time.Minute))
	expired, err := Issue(New(testOptions(-time.Minute)), "uid-1")
	if err != nil {
		t.Fatal(err)
	}
	noUser, err := Issue(h, "")
	if err != nil {
		t.Fatal(err)
	}
	other := New(jwtOptions.JWTOptions{
		Algorithm: "HS512",
		Key:       []byte("other"),
		ExpiresIn: time.Minute,
	})
	foreign, err := Issue(other, "uid-1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		blob    string
		wantErr string
	}{
		{
			name:    "expired",
			blob:    expired,
			wantErr: "unauthorized: jwt expired",
		},
		{
			name:    "missing userId",
			blob:    noUser,
			wantErr: "unauthorized: missing userId",
		},
		{
			name:    "foreign key",
			blob:    foreign,
			wantErr: "unauthorized: jwt signature mismatch",
		},
		{
			name:    "garbage",
			blob:    "x.y.z",
			wantErr: "unauthorized: malformed jwt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Parse(tt.blob)
			if !errors.IsUnauthorizedError(err) {
				t.Fatalf("Parse() error = %v, want unauthorized", err)
			}
			if got := err.Error(); got != tt.wantErr {
				t.Errorf("Parse() error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}
