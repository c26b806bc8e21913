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

package jwtHandler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/jwtOptions"
)

// JWTHandler signs and verifies tokens carrying claims of type C.
// Verification failures are reported as errors.UnauthorizedError.
type JWTHandler[C jwt.Claims] interface {
	ExpiresIn() time.Duration
	Parse(blob string) (C, error)
	Sign(claims C) (string, error)
}

func New[C jwt.Claims](options jwtOptions.JWTOptions, newClaims func() C) JWTHandler[C] {
	method := jwt.GetSigningMethod(options.Algorithm)
	key := options.Key
	return &handler[C]{
		expiresIn: options.ExpiresIn,
		key:       key,
		keyFn: func(*jwt.Token) (interface{}, error) {
			return key, nil
		},
		method:    method,
		newClaims: newClaims,
		p:         jwt.NewParser(jwt.WithValidMethods([]string{method.Alg()})),
	}
}

type handler[C jwt.Claims] struct {
	expiresIn time.Duration
	key       interface{}
	keyFn     jwt.Keyfunc
	method    jwt.SigningMethod
	newClaims func() C
	p         *jwt.Parser
}

func (h *handler[C]) ExpiresIn() time.Duration {
	return h.expiresIn
}

func rewriteParseError(err error) error {
	var ve *jwt.ValidationError
	if !errors.As(err, &ve) {
		return &errors.UnauthorizedError{Reason: "invalid jwt"}
	}
	var u *errors.UnauthorizedError
	switch {
	case errors.As(ve.Inner, &u):
		return u
	case ve.Errors&jwt.ValidationErrorExpired != 0:
		return &errors.UnauthorizedError{Reason: "jwt expired"}
	case ve.Errors&jwt.ValidationErrorMalformed != 0:
		return &errors.UnauthorizedError{Reason: "malformed jwt"}
	case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
		return &errors.UnauthorizedError{Reason: "jwt signature mismatch"}
	default:
		return &errors.UnauthorizedError{Reason: "invalid jwt"}
	}
}

func (h *handler[C]) Parse(blob string) (C, error) {
	claims := h.newClaims()
	if _, err := h.p.ParseWithClaims(blob, claims, h.keyFn); err != nil {
		var zero C
		return zero, rewriteParseError(err)
	}
	return claims, nil
}

func (h *handler[C]) Sign(claims C) (string, error) {
	return jwt.NewWithClaims(h.method, claims).SignedString(h.key)
}
