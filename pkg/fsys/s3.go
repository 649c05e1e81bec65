package fsys

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// DefaultRegion is used when S3Config.Region is empty.
const DefaultRegion = "us-east-1"

// documentContentType is sent with every uploaded document.
const documentContentType = "application/yaml; charset=utf-8"

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"REGION"`

	// Prefix is prepended to every object key, e.g. "translations/".
	Prefix string `env:"PREFIX"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"PATH_STYLE"`
}

func (c *S3Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Prefix != "" {
		c.Prefix = Clean(c.Prefix)
		if c.Prefix == "." {
			c.Prefix = ""
		}
	}
}

func (c *S3Config) validate() error {
	switch {
	case c.Bucket == "":
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	case c.AccessKey == "":
		return fmt.Errorf("%w: access key is required", ErrInvalidConfig)
	case c.SecretKey == "":
		return fmt.Errorf("%w: secret key is required", ErrInvalidConfig)
	}
	return nil
}

// S3 is an FS backed by an S3-compatible bucket.
// Directories are key prefixes delimited by "/".
type S3 struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3 creates an S3 backend with static credentials.
func NewS3(cfg S3Config) (*S3, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
			// Many S3-compatible services reject the default CRC32 trailers.
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		})
	}

	return &S3{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// ReadFile downloads the object stored for name.
func (s *S3) ReadFile(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, key, ErrReadFailed)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrReadFailed, key, err)
	}
	return data, nil
}

// WriteFile uploads data, replacing any existing object.
func (s *S3) WriteFile(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(documentContentType),
	})
	if err != nil {
		return wrapS3Error(err, key, ErrWriteFailed)
	}
	return nil
}

// ReadDir lists objects and common prefixes directly below dir.
// A prefix with no objects yields an empty list, not an error.
func (s *S3) ReadDir(ctx context.Context, dir string) ([]string, error) {
	prefix := s.dirPrefix(dir)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.cfg.Bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, prefix, ErrListFailed)
		}
		for _, obj := range page.Contents {
			if name := strings.TrimPrefix(aws.ToString(obj.Key), prefix); name != "" {
				names = append(names, name)
			}
		}
		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), prefix), "/")
			if name != "" {
				names = append(names, name)
			}
		}
	}

	return names, nil
}

// Healthcheck verifies the bucket exists and the credentials can reach it.
func (s *S3) Healthcheck(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.cfg.Bucket)})
	if err != nil {
		return wrapS3Error(err, s.cfg.Bucket, ErrReadFailed)
	}
	return nil
}

// key maps a document path to an object key.
func (s *S3) key(name string) string {
	name = Clean(name)
	if s.cfg.Prefix == "" {
		return name
	}
	return s.cfg.Prefix + "/" + name
}

// dirPrefix maps a directory path to a listing prefix ending in "/".
// The bucket root maps to the empty prefix.
func (s *S3) dirPrefix(dir string) string {
	dir = Clean(dir)
	if dir == "." {
		if s.cfg.Prefix == "" {
			return ""
		}
		return s.cfg.Prefix + "/"
	}
	return s.key(dir) + "/"
}

// wrapS3Error wraps S3 errors with appropriate sentinel errors.
// Note: Uses %v (not %w) for the original error to normalize error types -
// callers should use errors.Is() with sentinel errors, not errors.As() for AWS types.
func wrapS3Error(err error, key string, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %q: %v", ErrNotFound, key, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %q: %v", ErrAccessDenied, key, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %q: %v", ErrNotFound, key, err)
	}

	return fmt.Errorf("%w: %q: %v", fallback, key, err)
}
