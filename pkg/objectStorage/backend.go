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
	"fmt"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

type Options struct {
	Provider string `json:"provider"`
	Endpoint string `json:"endpoint"`
	Region   string `json:"region"`
	Secure   bool   `json:"secure"`
	Key      string `json:"key"`
	Secret   string `json:"secret"`
	Bucket   string `json:"bucket"`
}

func (o *Options) Validate() error {
	if o.Provider == "" {
		return &errors.ValidationError{Msg: "missing provider"}
	}
	if o.Endpoint == "" {
		return &errors.ValidationError{Msg: "missing endpoint"}
	}
	if o.Bucket == "" {
		return &errors.ValidationError{Msg: "missing bucket"}
	}
	return nil
}

type Backend interface {
	// ListPrefix returns the keys of all objects below prefix.
	ListPrefix(ctx context.Context, prefix string) ([]string, error)

	// DeleteObject returns errors.NotFoundError for a missing object.
	DeleteObject(ctx context.Context, key string) error
}

func FromOptions(options Options) (Backend, error) {
	if err := options.Validate(); err != nil {
		return nil, errors.Tag(err, "invalid object storage options")
	}
	switch options.Provider {
	case "minio":
		return initMinioBackend(options)
	}
	return nil, fmt.Errorf("unknown provider: %s", options.Provider)
}
