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

package objectStorage

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

func initMinioBackend(o Options) (Backend, error) {
	mc, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.Key, o.Secret, ""),
		Region: o.Region,
		Secure: o.Secure,
	})
	if err != nil {
		return nil, err
	}
	return &minioBackend{
		mc:     mc,
		bucket: o.Bucket,
	}, nil
}

type minioBackend struct {
	mc     *minio.Client
	bucket string
}

func rewriteError(err error) error {
	if err == nil {
		return nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return &errors.NotFoundError{}
	}
	return err
}

func (m *minioBackend) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	c := m.mc.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	var keys []string
	for info := range c {
		if err := info.Err; err != nil {
			return nil, errors.Tag(rewriteError(err), "list "+prefix)
		}
		keys = append(keys, info.Key)
	}
	return keys, nil
}

func (m *minioBackend) DeleteObject(ctx context.Context, key string) error {
	err := m.mc.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	return rewriteError(err)
}
