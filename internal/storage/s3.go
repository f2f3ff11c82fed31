package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options configures the S3-compatible backend (AWS S3 or MinIO).
// Credentials fall back to the default AWS chain when the keys are empty.
type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string // optional; enables a custom endpoint
	Prefix          string // object key prefix, e.g. "fete/"
	Extension       string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string

	// HTTPClient overrides the transport; used by tests.
	HTTPClient *http.Client
}

// S3Backend writes each snapshot as one object under a single bucket
type S3Backend struct {
	client *s3.Client
	bucket string
	prefix string
	ext    string
}

// OpenS3 creates an S3 backend from options
func OpenS3(ctx context.Context, opts S3Options) (*S3Backend, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.PathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		if opts.HTTPClient != nil {
			o.HTTPClient = opts.HTTPClient
		}
		// plain bodies keep MinIO and older gateways happy
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	ext := opts.Extension
	if ext == "" {
		ext = ".yaml"
	}
	return &S3Backend{client: client, bucket: opts.Bucket, prefix: opts.Prefix, ext: ext}, nil
}

func (b *S3Backend) Name() string { return BackendS3 }

// ObjectKey returns the object key a snapshot is stored under
func (b *S3Backend) ObjectKey(key string) string {
	return b.prefix + key + b.ext
}

func (b *S3Backend) Load(ctx context.Context, key string) ([]byte, error) {
	objectKey := b.ObjectKey(key)
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &b.bucket, Key: &objectKey})
	if err != nil {
		if isS3NotFound(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("get %s: %w", objectKey, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", objectKey, err)
	}
	return data, nil
}

func (b *S3Backend) Save(ctx context.Context, key string, data []byte) error {
	objectKey := b.ObjectKey(key)
	contentType := "application/yaml"
	if strings.HasSuffix(b.ext, ".json") {
		contentType = "application/json"
	}
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &b.bucket,
		Key:           &objectKey,
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", objectKey, err)
	}
	return nil
}

func (b *S3Backend) Close() error { return nil }

func isS3NotFound(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	// the s3 response error wraps the status but not a typed code when the body is empty
	var respErr interface{ HTTPStatusCode() int }
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == http.StatusNotFound
	}
	return false
}
