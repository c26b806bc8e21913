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

package accounts

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/identity"
	"github.com/Among-Us-KR/flutter-sns/pkg/jwt/userIdJWT"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/account"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/comment"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/like"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/post"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/user"
	"github.com/Among-Us-KR/flutter-sns/pkg/objectStorage"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/jwtOptions"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/managers/accounts/internal/accountDeletion"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

type Manager interface {
	accountDeletion.Manager

	// DeleteUserAccount deletes the account of the bearer of token.
	DeleteUserAccount(ctx context.Context, token string) (*types.DeleteUserAccountResponse, error)
}

func New(options *types.Options, jwtOptions jwtOptions.JWTOptions, db *mongo.Database, pg *pgxpool.Pool, client redis.UniversalClient) (Manager, error) {
	options.FillDefaults()
	if err := options.Validate(); err != nil {
		return nil, errors.Tag(err, "invalid options")
	}
	if err := jwtOptions.Validate(); err != nil {
		return nil, errors.Tag(err, "invalid jwt options")
	}
	b, err := objectStorage.FromOptions(options.BlobStorage)
	if err != nil {
		return nil, errors.Tag(err, "init blob storage")
	}
	ip, err := identity.New(
		account.New(pg), client, userIdJWT.New(jwtOptions),
	)
	if err != nil {
		return nil, err
	}
	return newManager(options, ip, db, b), nil
}

func newManager(options *types.Options, ip identity.Provider, db *mongo.Database, b objectStorage.Backend) *manager {
	return &manager{
		Manager: accountDeletion.New(
			options.ParallelDeletion,
			ip,
			user.New(db),
			post.New(db),
			comment.New(db),
			like.New(db),
			b,
		),
		ip: ip,
	}
}

type manager struct {
	accountDeletion.Manager
	ip identity.Provider
}

func (m *manager) DeleteUserAccount(ctx context.Context, token string) (*types.DeleteUserAccountResponse, error) {
	caller, err := m.ip.GetAuthenticatedIdentity(ctx, token)
	if err != nil {
		if !errors.IsUnauthorizedError(err) {
			return nil, errors.Tag(err, "authenticate")
		}
		log.Printf("[deleteUserAccount] rejected caller: %s", err)
		// The anonymous caller is rejected without side effects.
		caller = nil
	}
	return m.DeleteAccount(ctx, caller)
}
