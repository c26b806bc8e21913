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
	"net"
	"strconv"
	"strings"

	"github.com/Among-Us-KR/flutter-sns/pkg/options/env"
)

// Parse expands LISTEN_ADDRESS into one address per entry. Unix sockets
// (absolute paths) and entries with an explicit port are kept as is.
func Parse(port int) []string {
	return parse(
		env.GetString("LISTEN_ADDRESS", "localhost"),
		env.GetInt("PORT", port),
	)
}

func parse(raw string, port int) []string {
	o := strings.Split(raw, ",")
	for i, addr := range o {
		if strings.HasPrefix(addr, "/") {
			continue
		}
		if strings.ContainsRune(addr, ':') {
			continue
		}
		o[i] = net.JoinHostPort(addr, strconv.FormatInt(int64(port), 10))
	}
	return o
}
