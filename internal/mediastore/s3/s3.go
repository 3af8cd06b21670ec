package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hvillega/mantenimiento-api/internal/mediastore"
)

// S3MediaStore keeps uploaded files in an S3-compatible bucket, keyed as
// category/filename.
type S3MediaStore struct {
	client *minio.Client
	bucket string
}

// NewS3MediaStore connects to the endpoint and ensures the bucket exists.
func NewS3MediaStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*S3MediaStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init s3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &S3MediaStore{client: client, bucket: bucket}, nil
}

func (s *S3MediaStore) Save(ctx context.Context, category, filename string, r io.Reader) error {
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectKey(category, filename), r, -1,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

func (s *S3MediaStore) Open(ctx context.Context, category, filename string) (io.ReadCloser, error) {
	key := objectKey(category, filename)

	// GetObject defers errors until the first read; stat first so a missing
	// key is reported here.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil, mediastore.ErrNotExist
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return obj, nil
}

func (s *S3MediaStore) Delete(ctx context.Context, category, filename string) error {
	key := objectKey(category, filename)

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return mediastore.ErrNotExist
		}
		return fmt.Errorf("failed to stat object: %w", err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func objectKey(category, filename string) string {
	return path.Join(category, filename)
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	return errors.As(err, &resp) && resp.Code == "NoSuchKey"
}
