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

package accountDeletion

import (
	"context"
	"fmt"
	"log"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/identity"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/comment"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/like"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/post"
	"github.com/Among-Us-KR/flutter-sns/pkg/models/user"
	"github.com/Among-Us-KR/flutter-sns/pkg/objectStorage"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

const (
	msgDeleted          = "회원 탈퇴가 완료되었습니다."
	msgFailed           = "회원 탈퇴 실패"
	msgAuthDeleteFailed = "회원 탈퇴 실패(계정 삭제 단계)"
	msgUnauthenticated  = "User must be authenticated."
)

type Manager interface {
	DeleteAccount(ctx context.Context, caller *identity.Identity) (*types.DeleteUserAccountResponse, error)
}

func New(parallelDeletion int, ip identity.Provider, um user.Manager, pm post.Manager, cm comment.Manager, lm like.Manager, b objectStorage.Backend) Manager {
	if parallelDeletion < 1 {
		parallelDeletion = 1
	}
	m := &manager{
		parallel: parallelDeletion,
		ip:       ip,
		um:       um,
		pm:       pm,
		cm:       cm,
		lm:       lm,
		b:        b,
	}
	m.stages = m.getStages()
	return m
}

type manager struct {
	parallel int
	ip       identity.Provider
	um       user.Manager
	pm       post.Manager
	cm       comment.Manager
	lm       like.Manager
	b        objectStorage.Backend
	stages   []stage
}

func (m *manager) DeleteAccount(ctx context.Context, caller *identity.Identity) (res *types.DeleteUserAccountResponse, err error) {
	if caller == nil || caller.UserId == "" {
		return nil, errors.NewCallableError(
			errors.CodeUnauthenticated, msgUnauthenticated, nil, nil,
		)
	}
	userId := caller.UserId
	r := types.NewDeletionReport()

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		cause, ok := p.(error)
		if !ok {
			cause = fmt.Errorf("%v", p)
		}
		log.Printf("[deleteUserAccount] failed uid=%s: %s", userId, cause)
		res = nil
		err = errors.NewCallableError(
			errors.CodeInternal,
			msgFailed,
			&types.DeletionFailureDetail{Message: cause.Error(), Report: r},
			cause,
		)
	}()

	log.Printf("[deleteUserAccount] start uid=%s", userId)
	if f := m.runStages(ctx, userId, r, m.stages); f != nil {
		log.Printf(
			"[deleteUserAccount] %s failed uid=%s: %s",
			f.s.name, userId, f.err,
		)
		return nil, errors.NewCallableError(
			errors.CodeInternal,
			f.s.failureMessage,
			&types.DeletionFailureDetail{
				Step:    f.s.name,
				Message: f.err.Error(),
				Report:  r,
			},
			f.err,
		)
	}
	log.Printf("[deleteUserAccount] done uid=%s report=%+v", userId, *r)
	return &types.DeleteUserAccountResponse{
		Success: true,
		Message: msgDeleted,
		Report:  r,
	}, nil
}
