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

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Among-Us-KR/flutter-sns/cmd/minio-setup/pkg/minioSetup"
	"github.com/Among-Us-KR/flutter-sns/pkg/options/env"
)

func main() {
	ctx, done := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer done()

	o := minioSetup.Options{
		Endpoint:         env.MustGetString("MINIO_ENDPOINT"),
		Secure:           env.GetBool("MINIO_SECURE"),
		Region:           env.GetString("MINIO_REGION", "us-east-1"),
		RootUser:         env.MustGetString("MINIO_ROOT_USER"),
		RootPassword:     env.MustGetString("MINIO_ROOT_PASSWORD"),
		Bucket:           env.GetString("BUCKET", "flutter-sns"),
		AccessKey:        env.MustGetString("ACCESS_KEY"),
		SecretKey:        env.MustGetString("SECRET_KEY"),
		PolicyName:       env.GetString("S3_POLICY_NAME", "accounts"),
		CleanupOtherKeys: env.GetBool("CLEANUP_OTHER_S3_KEYS"),
	}
	if err := minioSetup.Setup(ctx, o); err != nil {
		panic(err)
	}
}
