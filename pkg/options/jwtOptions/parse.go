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

package jwtOptions

import (
	"time"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/env"
)

type JWTOptions struct {
	Algorithm string        `json:"algo"`
	Key       interface{}   `json:"key"`
	ExpiresIn time.Duration `json:"expires_in"`
}

func (j *JWTOptions) Validate() error {
	if j.Algorithm == "" {
		return &errors.ValidationError{Msg: "missing algo"}
	}
	if j.Key == nil {
		return &errors.ValidationError{Msg: "missing key"}
	}
	if j.ExpiresIn == 0 {
		return &errors.ValidationError{Msg: "missing expires_in"}
	}
	return nil
}

// FillFromEnv reads <prefix>_SECRET and <prefix>_EXPIRES_IN_S unless the
// options were provided in full already.
func (j *JWTOptions) FillFromEnv(prefix string) {
	if j.Algorithm == "" {
		j.Algorithm = "HS512"
	}
	if j.Key == nil {
		j.Key = []byte(env.MustGetString(prefix + "_SECRET"))
	}
	if j.ExpiresIn == 0 {
		j.ExpiresIn = env.GetDuration(prefix+"_EXPIRES_IN_S", time.Hour)
	}
}

func Parse(prefix string) JWTOptions {
	j := &JWTOptions{}
	j.FillFromEnv(prefix)
	return *j
}
