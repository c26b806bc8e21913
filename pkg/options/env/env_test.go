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

package env

import (
	"reflect"
	"testing"
	"time"
)

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		fallback time.Duration
		want     time.Duration
	}{
		{
			name:     "fallback",
			key:      "TEST_TIMEOUT_S",
			fallback: time.Minute,
			want:     time.Minute,
		},
		{
			name:  "seconds",
			key:   "TEST_TIMEOUT_S",
			value: "42",
			want:  42 * time.Second,
		},
		{
			name:  "milliseconds",
			key:   "TEST_TIMEOUT_MS",
			value: "1500",
			want:  1500 * time.Millisecond,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if got := GetDuration(tt.key, tt.fallback); got != tt.want {
				t.Errorf("GetDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetDurationUnknownSuffix(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "1")
	defer func() {
		if recover() == nil {
			t.Error("GetDuration() did not panic")
		}
	}()
	GetDuration("TEST_TIMEOUT", 0)
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback string
		want     []string
	}{
		{
			name:     "fallback",
			fallback: "http://localhost:3000",
			want:     []string{"http://localhost:3000"},
		},
		{
			name:  "trims and drops empty",
			value: "https://a.example, ,https://b.example,",
			want:  []string{"https://a.example", "https://b.example"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ORIGINS", tt.value)
			got := GetStringSlice("TEST_ORIGINS", tt.fallback)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetStringSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_SECURE", "")
	if GetBool("TEST_SECURE") {
		t.Error("GetBool(unset) = true")
	}
	t.Setenv("TEST_SECURE", "true")
	if !GetBool("TEST_SECURE") {
		t.Error("GetBool(true) = false")
	}
	t.Setenv("TEST_SECURE", "yes please")
	defer func() {
		if recover() == nil {
			t.Error("GetBool() did not panic")
		}
	}()
	GetBool("TEST_SECURE")
}
