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

package like

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Among-Us-KR/flutter-sns/pkg/models/internal/ownedDocs"
)

const Collection = "likes"

type Manager interface {
	ListIdsByUser(ctx context.Context, userId string) ([]string, error)
	Delete(ctx context.Context, likeId string) error
}

func New(db *mongo.Database) Manager {
	return &manager{c: db.Collection(Collection)}
}

type manager struct {
	c *mongo.Collection
}

func (m *manager) ListIdsByUser(ctx context.Context, userId string) ([]string, error) {
	return ownedDocs.ListIds(ctx, m.c, UserIdField{UserId: userId})
}

func (m *manager) Delete(ctx context.Context, likeId string) error {
	return ownedDocs.DeleteById(ctx, m.c, likeId)
}
