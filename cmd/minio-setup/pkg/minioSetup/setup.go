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

package minioSetup

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/minio/madmin-go/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Among-Us-KR/flutter-sns/pkg/errors"
)

// Prefixes lists the key prefixes the service user may access.
var Prefixes = []string{"posts/", "user_profiles/"}

type Options struct {
	Endpoint         string
	Secure           bool
	Region           string
	RootUser         string
	RootPassword     string
	Bucket           string
	AccessKey        string
	SecretKey        string
	PolicyName       string
	CleanupOtherKeys bool
}

func (o *Options) Validate() error {
	switch {
	case o.Endpoint == "":
		return &errors.ValidationError{Msg: "missing endpoint"}
	case o.RootUser == "" || o.RootPassword == "":
		return &errors.ValidationError{Msg: "missing root credentials"}
	case o.Bucket == "":
		return &errors.ValidationError{Msg: "missing bucket"}
	case o.AccessKey == "" || o.SecretKey == "":
		return &errors.ValidationError{Msg: "missing service credentials"}
	case o.AccessKey == o.RootUser:
		return &errors.ValidationError{Msg: "service user must not be root"}
	case o.PolicyName == "":
		return &errors.ValidationError{Msg: "missing policy name"}
	}
	return nil
}

type statement struct {
	Effect    string                         `json:"Effect"`
	Action    []string                       `json:"Action"`
	Resource  []string                       `json:"Resource"`
	Condition map[string]map[string][]string `json:"Condition,omitempty"`
}

type policy struct {
	Version   string      `json:"Version"`
	Statement []statement `json:"Statement"`
}

func getPolicy(bucket string) ([]byte, error) {
	arn := "arn:aws:s3:::" + bucket
	listable := make([]string, len(Prefixes))
	objects := make([]string, len(Prefixes))
	for i, prefix := range Prefixes {
		listable[i] = prefix + "*"
		objects[i] = arn + "/" + prefix + "*"
	}
	return json.Marshal(policy{
		Version: "2012-10-17",
		Statement: []statement{
			{
				Effect:   "Allow",
				Action:   []string{"s3:ListBucket"},
				Resource: []string{arn},
				Condition: map[string]map[string][]string{
					"StringLike": {"s3:prefix": listable},
				},
			},
			{
				Effect: "Allow",
				Action: []string{
					"s3:DeleteObject",
					"s3:GetObject",
					"s3:PutObject",
				},
				Resource: objects,
			},
		},
	})
}

func waitForMinio(ctx context.Context, mc *minio.Client, bucket string) error {
	var err error
	for i := 0; i < 10; i++ {
		if _, err = mc.BucketExists(ctx, bucket); err == nil {
			return nil
		}
		log.Printf("minio not ready: %s", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return errors.Tag(err, "minio not ready")
}

func ensureBucket(ctx context.Context, mc *minio.Client, o Options) error {
	log.Printf("Creating bucket %s", o.Bucket)
	err := mc.MakeBucket(ctx, o.Bucket, minio.MakeBucketOptions{
		Region: o.Region,
	})
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return nil
	default:
		return errors.Tag(err, "create bucket")
	}
}

func removeOtherUsers(ctx context.Context, c *madmin.AdminClient, keep string) error {
	log.Println("Listing other users")
	users, err := c.ListUsers(ctx)
	if err != nil {
		return errors.Tag(err, "list other users")
	}
	for s := range users {
		if s == keep {
			continue
		}
		log.Printf("Removing other user %s", s)
		if err = c.RemoveUser(ctx, s); err != nil {
			return errors.Tag(err, "remove other user "+s)
		}
	}
	return nil
}

func Setup(ctx context.Context, o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	p, err := getPolicy(o.Bucket)
	if err != nil {
		return errors.Tag(err, "build policy")
	}

	mc, err := minio.New(o.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.RootUser, o.RootPassword, ""),
		Region: o.Region,
		Secure: o.Secure,
	})
	if err != nil {
		return errors.Tag(err, "create mc client")
	}
	if err = waitForMinio(ctx, mc, o.Bucket); err != nil {
		return err
	}
	if err = ensureBucket(ctx, mc, o); err != nil {
		return err
	}

	c, err := madmin.New(o.Endpoint, o.RootUser, o.RootPassword, o.Secure)
	if err != nil {
		return errors.Tag(err, "create admin client")
	}
	if o.CleanupOtherKeys {
		if err = removeOtherUsers(ctx, c, o.AccessKey); err != nil {
			return err
		}
	}

	log.Printf("Creating user %s", o.AccessKey)
	if err = c.AddUser(ctx, o.AccessKey, o.SecretKey); err != nil {
		return errors.Tag(err, "create user")
	}
	log.Printf("Adding policy %s", o.PolicyName)
	if err = c.AddCannedPolicy(ctx, o.PolicyName, p); err != nil {
		return errors.Tag(err, "add policy")
	}
	log.Println("Setting policy")
	if err = c.SetPolicy(ctx, o.PolicyName, o.AccessKey, false); err != nil {
		return errors.Tag(err, "set policy")
	}
	log.Println("Done.")
	return nil
}
