package filestorage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used for uploads
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config configures the S3 upload driver
type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	BaseURL   string // public base URL (CDN or bucket website); derived from bucket and region when empty
	KeyPrefix string
}

// S3Storage stores uploads in an S3 bucket
type S3Storage struct {
	client  S3API
	bucket  string
	prefix  string
	baseURL string
}

// NewS3Storage builds an S3 client from cfg. Static credentials are used when both
// keys are set, otherwise the default AWS credential chain applies.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3StorageWithClient(s3.NewFromConfig(awsCfg), cfg), nil
}

// NewS3StorageWithClient wraps an existing client
func NewS3StorageWithClient(client S3API, cfg S3Config) *S3Storage {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.KeyPrefix, "/"),
		baseURL: baseURL,
	}
}

func (s *S3Storage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

// Save uploads the object and returns its public URL
func (s *S3Storage) Save(ctx context.Context, obj Object) (string, error) {
	key := s.key(obj.Name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          obj.Body,
		ContentType:   aws.String(obj.ContentType),
		ContentLength: aws.Int64(obj.Size),
	})
	if err != nil {
		return "", fmt.Errorf("S3 upload failed: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes the object behind a URL returned by Save
func (s *S3Storage) Delete(ctx context.Context, fileURL string) error {
	if !strings.HasPrefix(fileURL, s.baseURL+"/") {
		return fmt.Errorf("url %q does not belong to bucket %s", fileURL, s.bucket)
	}
	key := strings.TrimPrefix(fileURL, s.baseURL+"/")
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("S3 delete failed: %w", err)
	}
	return nil
}
