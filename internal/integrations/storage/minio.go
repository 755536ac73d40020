// Package storage archives uploaded audio and migration backups in a MinIO
// (S3 compatible) bucket.
package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/integrations"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// Skip certificate checks for self-signed deployments.
	Insecure bool
}

type Store struct {
	client *minioSDK.Client
	bucket string
}

// New connects to MinIO and creates the bucket when it does not exist yet.
func New(ctx context.Context, opts Options) (*Store, error) {
	mopts := &minioSDK.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	}
	if opts.Insecure {
		mopts.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	client, err := minioSDK.New(opts.Endpoint, mopts)
	if err != nil {
		return nil, errors.Wrap(err, "connect to minio")
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "create bucket %s", opts.Bucket)
		}
		log.Printf("[Storage] bucket created: %s", opts.Bucket)
	}
	return &Store{client: client, bucket: opts.Bucket}, nil
}

func (s *Store) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "put %s", key)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", key)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return data, nil
}

// AudioKey returns audio/<yyyy>/<mm>/<uuid><ext> for an upload.
func AudioKey(filename string, at time.Time) string {
	ext := strings.ToLower(path.Ext(filename))
	at = at.UTC()
	return fmt.Sprintf("audio/%04d/%02d/%s%s", at.Year(), int(at.Month()), uuid.NewString(), ext)
}

// BackupKey names a migration backup uploaded by catalystctl.
func BackupKey(name string, at time.Time) string {
	return fmt.Sprintf("backups/%s/%s", at.UTC().Format("20060102T150405Z"), path.Base(name))
}

var _ integrations.ObjectStore = (*Store)(nil)
