package config

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultImageURLExpiration is how long a presigned recipe image URL stays valid
const DefaultImageURLExpiration = time.Hour

// S3Config holds S3 client and bucket info for recipe images
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Expiration time.Duration
}

// NewS3Config initializes the S3 client from the shared AWS configuration
func NewS3Config(ctx context.Context, bucket, region string) (*S3Config, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: bucket,
		Expiration: DefaultImageURLExpiration,
	}, nil
}

// ResolveImage returns absolute URLs unchanged and presigns anything else as an object
// key in the bucket
func (s *S3Config) ResolveImage(ctx context.Context, ref string) (string, error) {
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref, nil
	}
	return s.GeneratePresignedURL(ctx, strings.TrimPrefix(ref, "/"), s.Expiration)
}

// GeneratePresignedURL generates a presigned URL for the given object key with the specified expiration time
func (s *S3Config) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.Client)
	presignedURL, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
