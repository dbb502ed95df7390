package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shiosai/vodfront/internal/usecase"
)

var _ usecase.URLSigner = (*S3Client)(nil)

type PresignClientInterface interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type PresignClientFactory func(client *s3.Client) PresignClientInterface

func DefaultPresignClientFactory(client *s3.Client) PresignClientInterface {
	return s3.NewPresignClient(client)
}

const (
	DefaultPresignTTL = time.Hour
)

// GenerateGetURL は期限付きのGET用署名付きURLを生成する。
// URLは常に新規に署名され、既存URLの延長は行わない。
func (c *S3Client) GenerateGetURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultPresignTTL
	}

	presignClient := c.presignClientFactory(c.presignClient)
	presignResult, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign get object: %w", NewStorageError(OperationPresign, err))
	}

	return presignResult.URL, nil
}
