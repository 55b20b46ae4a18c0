// Package storage uploads files to an S3-compatible object store and
// produces public, token-bearing download URLs for them.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/assignhub/internal/common"
	sc "github.com/dmitrijs2005/assignhub/internal/server/config"
	"github.com/google/uuid"
)

const cacheControl = "public, max-age=31536000"

// Seams for tests.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newDownloadToken = func() string {
		return uuid.NewString()
	}
)

// ObjectPutter is the subset of the S3 API used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

// NewS3Storage builds an S3 client from cfg. Credentials come from the shared
// credentials file when S3CredentialsFile is set, otherwise from the static
// access key pair.
func NewS3Storage(ctx context.Context, cfg *sc.Config) (*S3Storage, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.S3Region),
	}
	if cfg.S3CredentialsFile != "" {
		opts = append(opts, config.WithSharedCredentialsFiles([]string{cfg.S3CredentialsFile}))
	} else {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage config error: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return NewS3StorageWithClient(client, cfg.S3Bucket, cfg.S3PublicURL), nil
}

func NewS3StorageWithClient(client ObjectPutter, bucket, publicURL string) *S3Storage {
	return &S3Storage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores data under name, overwriting any object with the same name,
// and returns its public URL. Failures are wrapped in common.ErrUpload.
func (s *S3Storage) Upload(ctx context.Context, data []byte, name, contentType string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty file name", common.ErrUpload)
	}

	token := newDownloadToken()
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String(cacheControl),
		Metadata:      map[string]string{"download-token": token},
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	return s.URL(name, token), nil
}

// URL is the public download link for object name guarded by token.
func (s *S3Storage) URL(name, token string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return fmt.Sprintf("%s/%s/%s?alt=media&token=%s", s.publicURL, s.bucket, escaped, url.QueryEscape(token))
}
