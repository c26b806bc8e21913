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
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Among-Us-KR/flutter-sns/cmd/pkg/utils"
	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/identity"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/env"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/jwtOptions"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/managers/accounts"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

func printJSON(v interface{}) {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(errors.Tag(err, "serialize report"))
	}
	fmt.Println(string(blob))
}

func main() {
	userId := flag.String("uid", "", "id of the user to delete")
	timeout := flag.Duration("timeout", time.Minute, "timeout for the deletion")
	flag.Parse()
	if *userId == "" {
		fmt.Println("ERR: must set -uid")
		flag.Usage()
		os.Exit(101)
	}

	o := types.Options{}
	env.MustParseJSON(&o, "ACCOUNTS_OPTIONS")

	ctx, done := context.WithTimeout(context.Background(), *timeout)
	defer done()

	db := utils.MustConnectMongo(ctx)
	pg := utils.MustConnectPostgres(ctx)
	redisClient := utils.MustConnectRedis(ctx)

	am, err := accounts.New(&o, jwtOptions.Parse("JWT"), db, pg, redisClient)
	if err != nil {
		panic(err)
	}

	log.Printf("deleting user %q", *userId)
	res, err := am.DeleteAccount(ctx, &identity.Identity{UserId: *userId})
	if err != nil {
		if ce, ok := errors.GetCallableError(err); ok {
			fmt.Printf("ERR: %s\n", ce.Msg)
			if ce.Details != nil {
				printJSON(ce.Details)
			}
			os.Exit(1)
		}
		panic(err)
	}
	printJSON(res.Report)
	log.Println("done.")
}
