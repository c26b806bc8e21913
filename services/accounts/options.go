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

package main

import (
	"github.com/Among-Us-KR/flutter-sns/pkg/httpUtils"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/env"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/jwtOptions"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/listenAddress"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

type accountsOptions struct {
	addresses   []string
	corsOptions httpUtils.CORSOptions
	jwtOptions  jwtOptions.JWTOptions
	options     types.Options
}

func getOptions() *accountsOptions {
	o := &accountsOptions{}
	env.MustParseJSON(&o.options, "ACCOUNTS_OPTIONS")
	o.options.DeletionTimeout = env.GetDuration(
		"DELETION_TIMEOUT_S", o.options.DeletionTimeout,
	)
	o.options.FillDefaults()
	o.jwtOptions = jwtOptions.Parse("JWT")
	o.addresses = listenAddress.Parse(3060)
	o.corsOptions.AllowOrigins = env.GetStringSlice("ALLOWED_ORIGINS", "")
	return o
}
