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

package listenAddress

import (
	"reflect"
	"testing"
)

func Test_parse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		port int
		want []string
	}{
		{
			name: "host only",
			raw:  "localhost",
			port: 3000,
			want: []string{"localhost:3000"},
		},
		{
			name: "explicit port",
			raw:  "0.0.0.0:8080",
			port: 3000,
			want: []string{"0.0.0.0:8080"},
		},
		{
			name: "socket and host",
			raw:  "/run/accounts.sock,127.0.0.1",
			port: 3000,
			want: []string{"/run/accounts.sock", "127.0.0.1:3000"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse(tt.raw, tt.port); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parse() = %v, want %v", got, tt.want)
			}
		})
	}
}
