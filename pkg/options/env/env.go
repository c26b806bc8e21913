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
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

// lookup treats empty values as unset.
func lookup(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	return raw, ok && raw != ""
}

func malformed(key string, err error) error {
	return errors.Tag(err, "malformed "+key)
}

func GetString(key, fallback string) string {
	if raw, ok := lookup(key); ok {
		return raw
	}
	return fallback
}

func MustGetString(key string) string {
	raw, ok := lookup(key)
	if !ok {
		panic(errors.New("missing " + key))
	}
	return raw
}

// GetStringSlice splits a comma separated value and drops empty entries.
func GetStringSlice(key, fallback string) []string {
	var out []string
	for _, s := range strings.Split(GetString(key, fallback), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func GetInt(key string, fallback int) int {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		panic(malformed(key, err))
	}
	return n
}

func GetBool(key string) bool {
	raw, ok := lookup(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		panic(malformed(key, err))
	}
	return b
}

var durationUnits = []struct {
	suffix string
	unit   time.Duration
}{
	{suffix: "_NS", unit: time.Nanosecond},
	{suffix: "_MS", unit: time.Millisecond},
	{suffix: "_S", unit: time.Second},
}

// GetDuration reads an integer in the unit named by the key suffix,
// e.g. DELETION_TIMEOUT_S.
func GetDuration(key string, fallback time.Duration) time.Duration {
	for _, u := range durationUnits {
		if !strings.HasSuffix(key, u.suffix) {
			continue
		}
		if _, ok := lookup(key); !ok {
			return fallback
		}
		return time.Duration(GetInt(key, 0)) * u.unit
	}
	panic(errors.New("unknown unit of " + key + ", try _NS, _MS or _S"))
}

func MustParseJSON(target interface{}, key string) {
	if err := json.Unmarshal([]byte(MustGetString(key)), target); err != nil {
		panic(malformed(key, err))
	}
}
