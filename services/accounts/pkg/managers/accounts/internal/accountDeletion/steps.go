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
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

func getPostImagesPrefix(userId string) string {
	return "posts/" + userId + "/"
}

func getProfileImagesPrefix(userId string) string {
	return "user_profiles/" + userId
}

// isProfileImageOf matches user_profiles/{uid}, user_profiles/{uid}.ext and
// everything below user_profiles/{uid}/, but not user_profiles/{uid}other.
func isProfileImageOf(key, prefix string) bool {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == '/' || rest[0] == '.'
}

var errDeletionPanicked = errors.New("deletion panicked")

// deleteEach waits for all deletions and returns the first error.
// A failing deletion does not stop its siblings. The first panic of a
// deletion is raised again on the calling goroutine after all settled.
func (m *manager) deleteEach(ctx context.Context, ids []string, fn func(ctx context.Context, id string) error) error {
	var once sync.Once
	var recovered interface{}
	eg := &errgroup.Group{}
	eg.SetLimit(m.parallel)
	for _, id := range ids {
		id := id
		eg.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					once.Do(func() { recovered = p })
					err = errDeletionPanicked
				}
			}()
			return fn(ctx, id)
		})
	}
	err := eg.Wait()
	if recovered != nil {
		panic(recovered)
	}
	return err
}

func (m *manager) deleteBlob(ctx context.Context, key string) error {
	err := m.b.DeleteObject(ctx, key)
	if err != nil && !errors.IsNotFoundError(err) {
		return errors.Tag(err, "delete "+key)
	}
	return nil
}

func (m *manager) deleteBlobs(ctx context.Context, keys []string) error {
	return m.deleteEach(ctx, keys, m.deleteBlob)
}

func (m *manager) deleteUserDoc(ctx context.Context, userId string, r *types.DeletionReport) error {
	if err := m.um.Delete(ctx, userId); err != nil {
		return err
	}
	r.UsersDocDeleted = true
	return nil
}

func (m *manager) deletePosts(ctx context.Context, userId string, r *types.DeletionReport) error {
	ids, err := m.pm.ListIdsByAuthor(ctx, userId)
	if err != nil {
		return err
	}
	r.PostsDeleted = len(ids)
	return m.deleteEach(ctx, ids, m.pm.Delete)
}

func (m *manager) deletePostImages(ctx context.Context, userId string, r *types.DeletionReport) error {
	keys, err := m.b.ListPrefix(ctx, getPostImagesPrefix(userId))
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err = m.deleteBlobs(ctx, keys); err != nil {
		return err
	}
	r.PostImagesDeleted = len(keys)
	return nil
}

func (m *manager) deleteComments(ctx context.Context, userId string, r *types.DeletionReport) error {
	ids, err := m.cm.ListIdsByUser(ctx, userId)
	if err != nil {
		return err
	}
	r.CommentsDeleted = len(ids)
	return m.deleteEach(ctx, ids, m.cm.Delete)
}

func (m *manager) deleteLikes(ctx context.Context, userId string, r *types.DeletionReport) error {
	ids, err := m.lm.ListIdsByUser(ctx, userId)
	if err != nil {
		return err
	}
	r.LikesDeleted = len(ids)
	return m.deleteEach(ctx, ids, m.lm.Delete)
}

func (m *manager) deleteProfileImages(ctx context.Context, userId string, r *types.DeletionReport) error {
	prefix := getProfileImagesPrefix(userId)
	listed, err := m.b.ListPrefix(ctx, prefix)
	if err != nil {
		return err
	}
	keys := listed[:0]
	for _, key := range listed {
		if isProfileImageOf(key, prefix) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	if err = m.deleteBlobs(ctx, keys); err != nil {
		return err
	}
	r.ProfileImagesDeleted = len(keys)
	return nil
}

func (m *manager) deleteIdentity(ctx context.Context, userId string, r *types.DeletionReport) error {
	if err := m.ip.DeleteIdentity(ctx, userId); err != nil {
		return err
	}
	r.AuthDeleted = true
	return nil
}
