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

package identity

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/jwt/userIdJWT"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/account"
)

// Identity is a verified caller.
type Identity struct {
	UserId string
}

type Provider interface {
	// GetAuthenticatedIdentity verifies a bearer token. Failures are
	// reported as errors.UnauthorizedError.
	GetAuthenticatedIdentity(ctx context.Context, token string) (*Identity, error)

	// DeleteIdentity removes the account of userId and revokes its
	// outstanding tokens. An already deleted account is not an error.
	DeleteIdentity(ctx context.Context, userId string) error
}

const revokedCacheSize = 1024

func New(am account.Manager, client redis.UniversalClient, h userIdJWT.Handler) (Provider, error) {
	return newProvider(am, &redisRevocations{client: client}, h)
}

func newProvider(am account.Manager, rs revocationStore, h userIdJWT.Handler) (*provider, error) {
	revoked, err := lru.New[string, struct{}](revokedCacheSize)
	if err != nil {
		return nil, errors.Tag(err, "create revoked cache")
	}
	return &provider{
		am:      am,
		h:       h,
		rs:      rs,
		revoked: revoked,
	}, nil
}

type provider struct {
	am      account.Manager
	h       userIdJWT.Handler
	rs      revocationStore
	revoked *lru.Cache[string, struct{}]
}

func (p *provider) GetAuthenticatedIdentity(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, &errors.UnauthorizedError{Reason: "missing jwt"}
	}
	claims, err := p.h.Parse(token)
	if err != nil {
		return nil, err
	}
	userId := claims.UserId

	if p.revoked.Contains(userId) {
		return nil, &errors.UnauthorizedError{Reason: "account deleted"}
	}
	isRevoked, err := p.rs.IsRevoked(ctx, userId)
	if err != nil {
		return nil, errors.Tag(err, "check revocation")
	}
	if isRevoked {
		p.revoked.Add(userId, struct{}{})
		return nil, &errors.UnauthorizedError{Reason: "account deleted"}
	}
	return &Identity{UserId: userId}, nil
}

func (p *provider) DeleteIdentity(ctx context.Context, userId string) error {
	if err := p.am.Delete(ctx, userId); err != nil {
		if !errors.IsNotFoundError(err) {
			return errors.Tag(err, "delete account")
		}
	}
	// Tokens expire on their own after ExpiresIn.
	// A failed revocation fails the deletion although the account row is
	// gone already; a retry finds no row and revokes again.
	if err := p.rs.Revoke(ctx, userId, p.h.ExpiresIn()); err != nil {
		return errors.Tag(err, "revoke tokens")
	}
	p.revoked.Add(userId, struct{}{})
	return nil
}

type revocationStore interface {
	IsRevoked(ctx context.Context, userId string) (bool, error)
	Revoke(ctx context.Context, userId string, ttl time.Duration) error
}

type redisRevocations struct {
	client redis.UniversalClient
}

func getRevocationKey(userId string) string {
	return "revoked:user:{" + userId + "}"
}

func (r *redisRevocations) IsRevoked(ctx context.Context, userId string) (bool, error) {
	n, err := r.client.Exists(ctx, getRevocationKey(userId)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *redisRevocations) Revoke(ctx context.Context, userId string, ttl time.Duration) error {
	return r.client.Set(ctx, getRevocationKey(userId), "1", ttl).Err()
}
