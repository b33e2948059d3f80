package publish

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of the S3 client the target uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target uploads files to a bucket under a key prefix.
type S3Target struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Target creates a target. prefix, if set, gets a trailing slash.
func NewS3Target(client PutObjectAPI, bucket, prefix string) *S3Target {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Target{client: client, bucket: bucket, prefix: strings.TrimPrefix(prefix, "/")}
}

// WithCacheControl sets the Cache-Control metadata of uploaded objects.
func (t *S3Target) WithCacheControl(v string) *S3Target {
	t.cacheControl = v
	return t
}

// Put uploads one object.
func (t *S3Target) Put(ctx context.Context, name, contentType string, r io.Reader, size int64) error {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(t.bucket),
		Key:           aws.String(t.prefix + name),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}
	if t.cacheControl != "" {
		in.CacheControl = aws.String(t.cacheControl)
	}
	_, err := t.client.PutObject(ctx, in)
	return err
}

func (t *S3Target) String() string {
	return "s3://" + t.bucket + "/" + t.prefix
}

// S3Config describes how to reach the bucket.
type S3Config struct {
	Region string

	// Endpoint overrides the AWS endpoint, e.g. for MinIO or LocalStack.
	Endpoint string

	// UsePathStyle addresses buckets as endpoint/bucket/key.
	UsePathStyle bool
}

// NewS3Client builds a client with the default AWS configuration chain:
// environment variables, shared config and credentials files, then
// instance roles. cfg overrides the region and endpoint.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("publish: load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}
