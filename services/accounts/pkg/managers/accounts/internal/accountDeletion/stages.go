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
	"log"

	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

type stage struct {
	name string
	run  func(ctx context.Context, userId string, r *types.DeletionReport) error

	// warning prefixes the report entry of a failed non-fatal stage.
	warning string

	// fatal stages abort the deletion with failureMessage.
	fatal          bool
	failureMessage string

	// dependents run after the stage succeeded, and only then.
	dependents []stage
}

type stageFailure struct {
	s   *stage
	err error
}

func (m *manager) getStages() []stage {
	return []stage{
		{
			name:    "usersDoc",
			run:     m.deleteUserDoc,
			warning: "users doc delete failed",
		},
		{
			name:    "posts",
			run:     m.deletePosts,
			warning: "posts delete block failed",
			dependents: []stage{
				{
					name:    "postImages",
					run:     m.deletePostImages,
					warning: "post images delete failed",
				},
			},
		},
		{
			name:    "comments",
			run:     m.deleteComments,
			warning: "comments delete failed",
		},
		{
			name:    "likes",
			run:     m.deleteLikes,
			warning: "likes delete failed",
		},
		{
			name:    "profileImages",
			run:     m.deleteProfileImages,
			warning: "profile images delete failed",
		},
		{
			// The identity goes last: a failure in any earlier stage must
			// leave a working login for a later retry.
			name:           types.StepAuthDelete,
			run:            m.deleteIdentity,
			fatal:          true,
			failureMessage: msgAuthDeleteFailed,
		},
	}
}

func (m *manager) runStages(ctx context.Context, userId string, r *types.DeletionReport, stages []stage) *stageFailure {
	for i := range stages {
		s := &stages[i]
		if err := s.run(ctx, userId, r); err != nil {
			if s.fatal {
				return &stageFailure{s: s, err: err}
			}
			msg := s.warning + ": " + err.Error()
			log.Printf("[deleteUserAccount] uid=%s %s", userId, msg)
			r.AddWarning(msg)
			continue
		}
		if f := m.runStages(ctx, userId, r, s.dependents); f != nil {
			return f
		}
	}
	return nil
}
