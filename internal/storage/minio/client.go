package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/contacts-server/internal/model"
)

const (
	defaultContentType = "application/octet-stream"
	metaFileName       = "Filename"
)

// objectAPI is the subset of *minio.Client used for attachments.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// sdkAPI adapts *minio.Client. GetObject returns *minio.Object, which must
// not reach callers as a typed nil.
type sdkAPI struct{ *minio.Client }

func (a sdkAPI) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := a.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Options configures the connection to an S3-compatible endpoint.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var _ model.Storage = (*AttachmentStore)(nil)

// AttachmentStore keeps contact attachments in a single bucket.
type AttachmentStore struct {
	api    objectAPI
	bucket string
}

// Connect dials the endpoint and makes sure the bucket exists.
func Connect(ctx context.Context, opts Options) (*AttachmentStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return newAttachmentStore(ctx, sdkAPI{client}, opts.Bucket)
}

func newAttachmentStore(ctx context.Context, api objectAPI, bucket string) (*AttachmentStore, error) {
	exists, err := api.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", bucket, err)
		}
	}

	return &AttachmentStore{api: api, bucket: bucket}, nil
}

// Put stores the upload. A non-positive size streams with unknown length.
func (s *AttachmentStore) Put(ctx context.Context, key string, upload model.AttachmentUpload) (int64, error) {
	size := upload.Size
	if size <= 0 {
		size = -1
	}
	contentType := upload.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	info, err := s.api.PutObject(ctx, s.bucket, key, upload.Reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{metaFileName: url.QueryEscape(upload.Name)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to put attachment %q: %w", key, err)
	}
	return info.Size, nil
}

// Open stats the object before reading so a missing key surfaces here
// instead of on the first Read.
func (s *AttachmentStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if _, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("attachment object %q: %w", key, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat attachment %q: %w", key, err)
	}

	obj, err := s.api.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment %q: %w", key, err)
	}
	return obj, nil
}

func (s *AttachmentStore) Remove(ctx context.Context, key string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove attachment %q: %w", key, err)
	}
	return nil
}
