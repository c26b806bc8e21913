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

package mongoOptions

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/env"
)

func Parse() (*options.ClientOptions, string) {
	mongoConnectionString := env.GetString(
		"MONGO_CONNECTION_STRING",
		fmt.Sprintf(
			"mongodb://%s/sns",
			env.GetString("MONGO_HOST", "localhost"),
		),
	)
	mongoOptions := options.Client()
	mongoOptions.ApplyURI(mongoConnectionString)
	mongoOptions.SetAppName(env.GetString("SERVICE_NAME", "accounts"))
	mongoOptions.SetMaxPoolSize(
		uint64(env.GetInt("MONGO_POOL_SIZE", 10)),
	)
	mongoOptions.SetSocketTimeout(
		env.GetDuration("MONGO_SOCKET_TIMEOUT_S", 30*time.Second),
	)
	mongoOptions.SetServerSelectionTimeout(env.GetDuration(
		"MONGO_SERVER_SELECTION_TIMEOUT_S",
		60*time.Second,
	))

	cs, err := connstring.ParseAndValidate(mongoConnectionString)
	if err != nil {
		panic(errors.Tag(err, "parse connection string"))
	}
	if cs.Database == "" {
		panic(errors.New("missing database in MONGO_CONNECTION_STRING"))
	}
	return mongoOptions, cs.Database
}
