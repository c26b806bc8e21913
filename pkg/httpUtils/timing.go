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
	"strconv"
	"time"
)

func TimeStage(c *Context, label string) func() {
	t0 := time.Now()
	return func() {
		endTimer(c, label, t0)
	}
}

func EndTotalTimer(c *Context) {
	endTimer(c, "total", c.t0)
}

func endTimer(c *Context, label string, t0 time.Time) {
	ms := float64(time.Since(t0)) / float64(time.Millisecond)
	c.Writer.Header().Add(
		"Server-Timing",
		label+";dur="+strconv.FormatFloat(ms, 'f', 3, 64),
	)
}
