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

// DeletionReport records what an account deletion attempted. Counts are
// the number of records or objects found, not confirmed deletions.
type DeletionReport struct {
	UsersDocDeleted      bool     `json:"usersDocDeleted"`
	PostsDeleted         int      `json:"postsDeleted"`
	CommentsDeleted      int      `json:"commentsDeleted"`
	LikesDeleted         int      `json:"likesDeleted"`
	PostImagesDeleted    int      `json:"postImagesDeleted"`
	ProfileImagesDeleted int      `json:"profileImagesDeleted"`
	AuthDeleted          bool     `json:"authDeleted"`
	Warnings             []string `json:"warnings"`
}

func NewDeletionReport() *DeletionReport {
	return &DeletionReport{Warnings: make([]string, 0)}
}

func (r *DeletionReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

type DeleteUserAccountResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Report  *DeletionReport `json:"report"`
}

// DeletionFailureDetail is the details payload of a failed deletion.
// Clients branch on Step == StepAuthDelete.
type DeletionFailureDetail struct {
	Step    string          `json:"step,omitempty"`
	Message string          `json:"message"`
	Report  *DeletionReport `json:"report"`
}

const StepAuthDelete = "authDelete"
