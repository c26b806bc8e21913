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

package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/redisOptions"
)

// Revocation markers must be writable, a read-only replica will not do.
func ensureRedisAcceptsWrites(ctx context.Context, client redis.UniversalClient) error {
	return client.Set(ctx, "startup:accounts", "42", time.Second).Err()
}

func MustConnectRedis(ctx context.Context) redis.UniversalClient {
	ctx, done := context.WithTimeout(ctx, 10*time.Second)
	defer done()

	client := redis.NewUniversalClient(redisOptions.Parse())
	if err := ensureRedisAcceptsWrites(ctx, client); err != nil {
		panic(errors.Tag(err, "ensure redis accepts writes"))
	}
	return client
}
