package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/config"
	"github.com/MKhiriev/consent-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// expiresAtMetadata is the object metadata key holding the expiry instant.
const expiresAtMetadata = "expires-at"

// s3API is the subset of the S3 client used by [S3KV].
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3KV keeps one object per key. Expiry lives in object metadata and is
// enforced on read; listing cannot see metadata, so List may return keys
// whose Get reports [ErrNotFound]. Physical removal is left to bucket
// lifecycle rules.
type S3KV struct {
	client s3API
	bucket string
	prefix string
	now    func() time.Time
	logger *logger.Logger
}

// NewS3KV builds an S3 client from cfg. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3KV(ctx context.Context, cfg config.S3, log *logger.Logger) (*S3KV, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3KV").Msg("error loading aws config")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 key-value store")
	return newS3KV(client, cfg.Bucket, cfg.Prefix, log), nil
}

func newS3KV(client s3API, bucket, prefix string, log *logger.Logger) *S3KV {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3KV{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
		logger: log,
	}
}

func (s *S3KV) objectKey(key string) string {
	return s.prefix + key
}

func (s *S3KV) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		log.Err(err).Str("func", "*S3KV.Get").Str("key", key).Msg("error getting object")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer out.Body.Close()

	if raw, ok := out.Metadata[expiresAtMetadata]; ok {
		expiresAt, parseErr := time.Parse(time.RFC3339Nano, raw)
		if parseErr == nil && !s.now().Before(expiresAt) {
			return nil, ErrNotFound
		}
	}

	data, err := io.ReadAll(out.Body)
	if err != nil {
		log.Err(err).Str("func", "*S3KV.Get").Str("key", key).Msg("error reading object body")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return data, nil
}

func (s *S3KV) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	}
	if ttl > 0 {
		expiresAt := s.now().Add(ttl).UTC()
		input.Metadata = map[string]string{expiresAtMetadata: expiresAt.Format(time.RFC3339Nano)}
		input.Expires = aws.Time(expiresAt)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*S3KV.Put").Str("key", key).Msg("error putting object")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *S3KV) List(ctx context.Context, opts ListOptions) (ListPage, error) {
	log := logger.FromContext(ctx)
	limit := opts.limit()

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(s.objectKey(opts.Prefix)),
		MaxKeys: aws.Int32(int32(limit)),
	}
	if opts.Cursor != "" {
		input.StartAfter = aws.String(s.objectKey(opts.Cursor))
	}

	out, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "*S3KV.List").Str("prefix", opts.Prefix).Msg("error listing objects")
		return ListPage{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, strings.TrimPrefix(aws.ToString(obj.Key), s.prefix))
	}

	page := ListPage{Keys: keys, Complete: !aws.ToBool(out.IsTruncated)}
	if !page.Complete && len(keys) > 0 {
		page.Cursor = keys[len(keys)-1]
	}
	if !page.Complete && len(keys) == 0 {
		page.Complete = true
	}

	return page, nil
}
