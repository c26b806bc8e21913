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

package types

import (
	"time"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/objectStorage"
)

type Options struct {
	BlobStorage objectStorage.Options `json:"blob_storage"`

	// DeletionTimeout bounds a single account deletion.
	DeletionTimeout time.Duration `json:"deletion_timeout_in_ns"`

	// ParallelDeletion limits concurrent deletions within one step.
	ParallelDeletion int `json:"parallel_deletion"`
}

func (o *Options) FillDefaults() {
	if o.DeletionTimeout == 0 {
		o.DeletionTimeout = time.Minute
	}
	if o.ParallelDeletion == 0 {
		o.ParallelDeletion = 10
	}
}

func (o *Options) Validate() error {
	if err := o.BlobStorage.Validate(); err != nil {
		return errors.Tag(err, "blob_storage")
	}
	if o.DeletionTimeout < 0 {
		return &errors.ValidationError{Msg: "deletion_timeout is negative"}
	}
	if o.ParallelDeletion < 1 {
		return &errors.ValidationError{Msg: "parallel_deletion must be positive"}
	}
	return nil
}
