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

package ownedDocs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

type IdField struct {
	Id string `json:"_id" bson:"_id"`
}

func RewriteMongoError(err error) error {
	if err == mongo.ErrNoDocuments {
		return &errors.NotFoundError{}
	}
	return err
}

// ListIds returns the ids of all documents in c matching filter, in natural
// order.
func ListIds(ctx context.Context, c *mongo.Collection, filter interface{}) ([]string, error) {
	r, err := c.Find(
		ctx,
		filter,
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, RewriteMongoError(err)
	}
	var docs []IdField
	if err = r.All(ctx, &docs); err != nil {
		return nil, RewriteMongoError(err)
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.Id
	}
	return ids, nil
}

// DeleteById succeeds for documents that do not exist.
func DeleteById(ctx context.Context, c *mongo.Collection, id string) error {
	if _, err := c.DeleteOne(ctx, IdField{Id: id}); err != nil {
		return RewriteMongoError(err)
	}
	return nil
}
