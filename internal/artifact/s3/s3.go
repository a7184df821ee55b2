// Package s3 implements the artifact store on an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/contentforge/server/internal/artifact"
	apperrors "github.com/contentforge/server/internal/shared/errors"
)

// Config holds S3 store configuration.
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// Store persists artifacts as bucket objects keyed by "<kind>/<filename>".
type Store struct {
	client *s3.Client
	bucket string
	region string
}

// New creates an S3 store and verifies the bucket is reachable.
func New(ctx context.Context, cfg Config) (*Store, error) {
	var provider aws.CredentialsProvider
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		provider = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if provider != nil {
		opts = append(opts, awsconfig.WithCredentialsProvider(provider))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	s := &Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}

	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	}); err != nil {
		return nil, fmt.Errorf("s3: head bucket %s: %w", s.bucket, err)
	}
	return s, nil
}

// Save uploads data under the kind's key prefix.
func (s *Store) Save(ctx context.Context, kind artifact.Kind, filename string, data []byte) (string, error) {
	key := s.key(kind, filename)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(filename)),
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", apperrors.Storage("put object", err)
	}
	return s.url(key), nil
}

// List enumerates objects under the kind's key prefix.
func (s *Store) List(ctx context.Context, kind artifact.Kind) ([]artifact.FileInfo, error) {
	prefix := string(kind) + "/"
	files := []artifact.FileInfo{}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.Storage("list objects", err)
		}
		for _, obj := range page.Contents {
			name := path.Base(aws.ToString(obj.Key))
			if !kind.Matches(name) {
				continue
			}
			files = append(files, artifact.FileInfo{
				Filename: name,
				Size:     aws.ToInt64(obj.Size),
				Path:     s.url(aws.ToString(obj.Key)),
			})
		}
	}
	return files, nil
}

// Delete removes a named object. A missing object is a not-found error.
func (s *Store) Delete(ctx context.Context, kind artifact.Kind, filename string) error {
	key := s.key(kind, filename)

	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return apperrors.NotFound("file")
		}
		return apperrors.Storage("head object", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return apperrors.Storage("delete object", err)
	}
	return nil
}

func (s *Store) key(kind artifact.Kind, filename string) string {
	return string(kind) + "/" + filename
}

func (s *Store) url(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func contentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".mp3":
		return "audio/mpeg"
	case ".mp4":
		return "video/mp4"
	case ".avi":
		return "video/x-msvideo"
	case ".mov":
		return "video/quicktime"
	case ".wmv":
		return "video/x-ms-wmv"
	case ".flv":
		return "video/x-flv"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}

var _ artifact.Store = (*Store)(nil)
