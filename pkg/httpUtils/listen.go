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

package httpUtils

import (
	"context"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

func listen(addr string) (net.Listener, error) {
	if strings.HasPrefix(addr, "/") {
		if err := os.Remove(addr); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		return net.Listen("unix", addr)
	}
	return net.Listen("tcp", addr)
}

// ListenAndServeEach serves on every address until ctx is done, then shuts
// the server down gracefully.
func ListenAndServeEach(ctx context.Context, server *http.Server, addrs []string) error {
	eg, pCtx := errgroup.WithContext(ctx)
	for _, addr := range addrs {
		l, err := listen(addr)
		if err != nil {
			_ = server.Close()
			return errors.Tag(err, "listen on "+addr)
		}
		eg.Go(func() error {
			if err2 := server.Serve(l); err2 != http.ErrServerClosed {
				return err2
			}
			return nil
		})
	}
	eg.Go(func() error {
		<-pCtx.Done()
		sCtx, done := context.WithTimeout(context.Background(), 30*time.Second)
		defer done()
		return server.Shutdown(sCtx)
	})
	return eg.Wait()
}
