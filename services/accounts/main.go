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
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Among-Us-KR/flutter-sns/cmd/pkg/utils"
	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/httpUtils"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/managers/accounts"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/router"
)

func main() {
	triggerExitCtx, triggerExit := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer triggerExit()

	o := getOptions()

	db := utils.MustConnectMongo(triggerExitCtx)
	pg := utils.MustConnectPostgres(triggerExitCtx)
	redisClient := utils.MustConnectRedis(triggerExitCtx)

	am, err := accounts.New(&o.options, o.jwtOptions, db, pg, redisClient)
	if err != nil {
		panic(err)
	}

	server := &http.Server{
		Handler:           router.New(am, o.corsOptions, o.options.DeletionTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("accounts listening on %v", o.addresses)
	if err = httpUtils.ListenAndServeEach(triggerExitCtx, server, o.addresses); err != nil {
		panic(err)
	}
	pg.Close()
	err = errors.Merge(
		redisClient.Close(),
		db.Client().Disconnect(context.Background()),
	)
	if err != nil {
		log.Printf("shutdown: %s", err)
	}
}
