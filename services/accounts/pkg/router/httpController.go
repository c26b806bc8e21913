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

package router

import (
	"time"

	"github.com/Among-Us-KR/flutter-sns/pkg/httpUtils"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/managers/accounts"
)

func New(am accounts.Manager, corsOptions httpUtils.CORSOptions, deletionTimeout time.Duration) *httpUtils.Router {
	router := httpUtils.NewRouter(&httpUtils.RouterOptions{
		StatusMessage: "accounts is alive\n",
	})
	Add(router, am, corsOptions, deletionTimeout)
	return router
}

func Add(r *httpUtils.Router, am accounts.Manager, corsOptions httpUtils.CORSOptions, deletionTimeout time.Duration) {
	(&httpController{
		am:              am,
		deletionTimeout: deletionTimeout,
	}).addRoutes(r, corsOptions)
}

type httpController struct {
	am              accounts.Manager
	deletionTimeout time.Duration
}

func (h *httpController) addRoutes(router *httpUtils.Router, corsOptions httpUtils.CORSOptions) {
	r := router.Group("")
	r.Use(httpUtils.CORS(corsOptions))
	r.POST("/deleteUserAccount", h.deleteUserAccount)
}

// deleteUserAccount ignores the {"data": ...} payload of the request, the
// caller is identified by the bearer token alone. A started deletion runs
// to completion or to the deletion timeout, even if the client leaves.
func (h *httpController) deleteUserAccount(c *httpUtils.Context) {
	c, done := c.WithDetachedTimeout(h.deletionTimeout)
	defer done()

	endTimer := httpUtils.TimeStage(c, "deleteUserAccount")
	res, err := h.am.DeleteUserAccount(c, c.BearerToken())
	endTimer()
	httpUtils.RespondCallable(c, res, err)
}
