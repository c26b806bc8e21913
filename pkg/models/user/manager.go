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

package user

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Among-Us-KR/flutter-sns/pkg/models/internal/ownedDocs"
)

const Collection = "users"

type Manager interface {
	// Delete removes the profile document users/{uid}. Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, userId string) error
}

func New(db *mongo.Database) Manager {
	return &manager{c: db.Collection(Collection)}
}

type manager struct {
	c *mongo.Collection
}

func (m *manager) Delete(ctx context.Context, userId string) error {
	return ownedDocs.DeleteById(ctx, m.c, userId)
}
