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
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
	"github.com/Among-Us-KR/flutter-sns/pkg/httpUtils"
	"github.com/Among-Us-KR/flutter-sns/pkg/identity"
	"github.com/Among-Us-KR/flutter-sns/services/accounts/pkg/types"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeManager struct {
	token       string
	hasDeadline bool
	ctxErr      error
	res         *types.DeleteUserAccountResponse
	err         error
}

func (f *fakeManager) DeleteAccount(context.Context, *identity.Identity) (*types.DeleteUserAccountResponse, error) {
	panic("not reachable over http")
}

func (f *fakeManager) DeleteUserAccount(ctx context.Context, token string) (*types.DeleteUserAccountResponse, error) {
	f.token = token
	_, f.hasDeadline = ctx.Deadline()
	f.ctxErr = ctx.Err()
	return f.res, f.err
}

func newDeleteRequest(ctx context.Context, header http.Header) *http.Request {
	req := httptest.NewRequest(
		http.MethodPost, "/deleteUserAccount", strings.NewReader(`{"data":null}`),
	).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	return req
}

func serve(f *fakeManager, req *http.Request) *httptest.ResponseRecorder {
	r := New(f, httpUtils.CORSOptions{
		AllowOrigins: []string{"https://sns.example"},
	}, time.Minute)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doDelete(f *fakeManager, header http.Header) *httptest.ResponseRecorder {
	return serve(f, newDeleteRequest(context.Background(), header))
}

func assertJSON(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	var got, exp interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body %q: %s", w.Body.String(), err)
	}
	if err := json.Unmarshal([]byte(want), &exp); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, exp) {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}

func TestDeleteUserAccountSuccess(t *testing.T) {
	r := types.NewDeletionReport()
	r.UsersDocDeleted = true
	r.PostsDeleted = 2
	r.AuthDeleted = true
	f := &fakeManager{res: &types.DeleteUserAccountResponse{
		Success: true,
		Message: "done",
		Report:  r,
	}}
	w := doDelete(f, http.Header{"Authorization": {"Bearer t1"}})

	if w.Code != http.StatusOK {
		t.Errorf("code = %d, want %d", w.Code, http.StatusOK)
	}
	if f.token != "t1" {
		t.Errorf("token = %q, want t1", f.token)
	}
	if !f.hasDeadline {
		t.Error("deletion runs without deadline")
	}
	assertJSON(t, w, `{"result":{
		"success":true,
		"message":"done",
		"report":{
			"usersDocDeleted":true,
			"postsDeleted":2,
			"commentsDeleted":0,
			"likesDeleted":0,
			"postImagesDeleted":0,
			"profileImagesDeleted":0,
			"authDeleted":true,
			"warnings":[]
		}
	}}`)
}

func TestDeleteUserAccountUnauthenticated(t *testing.T) {
	f := &fakeManager{err: errors.NewCallableError(
		errors.CodeUnauthenticated, "User must be authenticated.", nil, nil,
	)}
	w := doDelete(f, nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if f.token != "" {
		t.Errorf("token = %q, want none", f.token)
	}
	assertJSON(t, w, `{"error":{
		"status":"UNAUTHENTICATED",
		"code":"unauthenticated",
		"message":"User must be authenticated."
	}}`)
}

func TestDeleteUserAccountFailure(t *testing.T) {
	r := types.NewDeletionReport()
	r.AddWarning("likes delete failed: boom")
	f := &fakeManager{err: errors.NewCallableError(
		errors.CodeInternal,
		"failed",
		&types.DeletionFailureDetail{
			Step:    types.StepAuthDelete,
			Message: "identity provider unavailable",
			Report:  r,
		},
		errors.New("identity provider unavailable"),
	)}
	w := doDelete(f, http.Header{"Authorization": {"bearer t1"}})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	assertJSON(t, w, `{"error":{
		"status":"INTERNAL",
		"code":"internal",
		"message":"failed",
		"details":{
			"step":"authDelete",
			"message":"identity provider unavailable",
			"report":{
				"usersDocDeleted":false,
				"postsDeleted":0,
				"commentsDeleted":0,
				"likesDeleted":0,
				"postImagesDeleted":0,
				"profileImagesDeleted":0,
				"authDeleted":false,
				"warnings":["likes delete failed: boom"]
			}
		}
	}}`)
}

func TestDeleteUserAccountForeignOrigin(t *testing.T) {
	f := &fakeManager{}
	w := doDelete(f, http.Header{
		"Authorization": {"Bearer t1"},
		"Origin":        {"https://evil.example"},
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("code = %d, want %d", w.Code, http.StatusForbidden)
	}
	if f.token != "" {
		t.Error("deletion ran for foreign origin")
	}
}

func TestDeleteUserAccountOutlivesClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakeManager{res: &types.DeleteUserAccountResponse{
		Success: true,
		Report:  types.NewDeletionReport(),
	}}
	serve(f, newDeleteRequest(ctx, http.Header{
		"Authorization": {"Bearer t1"},
	}))

	if f.token != "t1" {
		t.Fatalf("token = %q, want t1", f.token)
	}
	if f.ctxErr != nil {
		t.Errorf("deletion context error = %v, want none", f.ctxErr)
	}
	if !f.hasDeadline {
		t.Error("deletion runs without deadline")
	}
}
