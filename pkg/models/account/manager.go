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

package account

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

type Manager interface {
	// Delete removes the account and its login sessions. It returns
	// errors.NotFoundError when no account exists for userId.
	Delete(ctx context.Context, userId string) error
}

func New(db *pgxpool.Pool) Manager {
	return &manager{db: db}
}

type manager struct {
	db *pgxpool.Pool
}

func (m *manager) Delete(ctx context.Context, userId string) error {
	r, err := m.db.Exec(ctx, `
WITH s AS (DELETE FROM account_sessions WHERE account_id = $1)
DELETE
FROM accounts
WHERE id = $1
`, userId)
	if err != nil {
		return err
	}
	if r.RowsAffected() == 0 {
		return &errors.NotFoundError{}
	}
	return nil
}
