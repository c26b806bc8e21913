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

package userIdJWT

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/jwt/jwtHandler"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/jwtOptions"
)

type Claims struct {
	jwt.RegisteredClaims
	UserId string `json:"userId"`
}

func (c *Claims) Valid() error {
	if c.ExpiresAt == nil {
		return &errors.UnauthorizedError{Reason: "missing exp"}
	}
	if err := c.RegisteredClaims.Valid(); err != nil {
		return err
	}
	if c.UserId == "" {
		return &errors.UnauthorizedError{Reason: "missing userId"}
	}
	return nil
}

type Handler = jwtHandler.JWTHandler[*Claims]

func New(options jwtOptions.JWTOptions) Handler {
	return jwtHandler.New(options, func() *Claims {
		return &Claims{}
	})
}

// Issue signs a token for userId that expires per the handler options.
func Issue(h Handler, userId string) (string, error) {
	now := time.Now()
	return h.Sign(&Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ExpiresIn())),
		},
		UserId: userId,
	})
}
