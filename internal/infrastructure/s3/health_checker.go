package s3

import (
	"context"
	"fmt"
)

// S3HealthChecker はオブジェクトストアへの疎通確認を行う
type S3HealthChecker struct {
	client *S3Client
}

// NewS3HealthChecker はS3HealthCheckerを生成する
func NewS3HealthChecker(client *S3Client) *S3HealthChecker {
	return &S3HealthChecker{
		client: client,
	}
}

// Name はチェッカーの名前を返す
func (c *S3HealthChecker) Name() string {
	return "s3"
}

// Check はVODバケットへのHeadBucketで疎通を確認する
func (c *S3HealthChecker) Check(ctx context.Context) error {
	if err := c.client.HeadBucket(ctx); err != nil {
		return fmt.Errorf("s3 health check failed: %w", err)
	}
	return nil
}
