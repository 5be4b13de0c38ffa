package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ymestates/realty/pkg/config"
)

// S3 stores uploads in an S3 bucket. Static credentials from config win;
// otherwise the default chain applies (env vars, shared config, instance
// role).
type S3 struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3(ctx context.Context, cfg config.UploadConfig) (*S3, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 backend requires a bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &S3{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}, nil
}

func (s *S3) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, name), nil
}
